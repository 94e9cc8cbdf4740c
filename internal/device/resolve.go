package device

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tturner/pmbus/internal/pmbus"
)

// Resolver maps command codes to definitions. Device implements it, as do
// catalogs loaded at runtime.
type Resolver interface {
	Lookup(code uint8) *pmbus.Command
	Command(code uint8) pmbus.Info
}

func resolve(r Resolver, code uint8) (*pmbus.Command, error) {
	c := r.Lookup(code)
	if c == nil {
		return nil, fmt.Errorf("%v: %s: %w", r, r.Command(code).Name, pmbus.ErrInvalidCode)
	}
	return c, nil
}

// Fields calls fn for each field of code, most significant first.
func Fields(r Resolver, code uint8, fn func(f *pmbus.Field)) error {
	c, err := resolve(r, code)
	if err != nil {
		return err
	}
	for i := range c.Fields {
		fn(&c.Fields[i])
	}
	return nil
}

// Sentinels calls fn for each named value of the field of code at pos.
func Sentinels(r Resolver, code uint8, pos pmbus.Bitpos, fn func(s pmbus.Sentinel)) error {
	c, err := resolve(r, code)
	if err != nil {
		return err
	}
	return c.Sentinels(pos, fn)
}

// Interpret decodes payload as code. The payload must be exactly the
// resolved command's width.
func Interpret(r Resolver, code uint8, payload []byte, p pmbus.Provider, fn func(f *pmbus.Field, v pmbus.Value)) error {
	c, err := resolve(r, code)
	if err != nil {
		return err
	}
	d, err := pmbus.FromSlice(c, payload)
	if err != nil {
		return err
	}
	return d.Interpret(p, fn)
}

// Mutate applies fn's replacements to payload in place. As with
// pmbus.Data.Mutate, replacements made before a failing field are kept and
// written back to payload.
func Mutate(r Resolver, code uint8, payload []byte, p pmbus.Provider, fn func(f *pmbus.Field, v pmbus.Value) (pmbus.Replacement, bool)) error {
	c, err := resolve(r, code)
	if err != nil {
		return err
	}
	d, err := pmbus.FromSlice(c, payload)
	if err != nil {
		return err
	}
	err = d.Mutate(p, fn)
	copy(payload, d.Bytes())
	return err
}

// ParseCode resolves a command given as hex ("0xD4"), decimal or a name
// known to r ("PMON_CONFIG"). Names are matched without regard to case.
func ParseCode(r Resolver, s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty command")
	}
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return uint8(n), nil
	}
	for code := 0; code <= 0xff; code++ {
		if strings.EqualFold(r.Command(uint8(code)).Name, s) {
			return uint8(code), nil
		}
	}
	return 0, fmt.Errorf("%v: unknown command %q", r, s)
}
