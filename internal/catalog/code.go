package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Code is a command code written as hex ("0xD4") in catalog files. Plain
// decimal is accepted on input.
type Code uint8

func (c Code) String() string {
	return fmt.Sprintf("0x%02X", uint8(c))
}

// UnmarshalYAML implements yaml.Unmarshaler for Code.
func (c *Code) UnmarshalYAML(value *yaml.Node) error {
	v, err := parseHexUint8(value.Value)
	if err != nil {
		return fmt.Errorf("code: %w", err)
	}
	*c = Code(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler for Code.
func (c Code) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalTOML accepts both TOML strings and integers.
func (c *Code) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		n, err := parseHexUint8(x)
		if err != nil {
			return fmt.Errorf("code: %w", err)
		}
		*c = Code(n)
	case int64:
		if x < 0 || x > 0xff {
			return fmt.Errorf("code: %d out of range", x)
		}
		*c = Code(x)
	default:
		return fmt.Errorf("code: unexpected %T", v)
	}
	return nil
}

// MarshalText is used by the TOML encoder.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func parseHexUint8(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return uint8(v), nil
}
