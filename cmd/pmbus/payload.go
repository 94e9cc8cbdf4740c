package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/tturner/pmbus/internal/pmbus"
)

// parsePayload reads bytes in bus order. Bytes may run together ("6302") or
// be separated by spaces, commas or colons, each with an optional 0x prefix.
func parsePayload(args []string) ([]byte, error) {
	s := strings.Join(args, " ")
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == ':' || r == '\t'
	})
	var out []byte
	for _, tok := range tokens {
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		if len(tok)%2 == 1 {
			tok = "0" + tok
		}
		b, err := hex.DecodeString(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid payload %q: %w", s, err)
		}
		out = append(out, b...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	return out, nil
}

type assignment struct {
	field string
	value string
}

func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	seen := map[string]bool{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !ok || name == "" || value == "" {
			return nil, fmt.Errorf("invalid assignment %q (want field=value)", arg)
		}
		if seen[strings.ToLower(name)] {
			return nil, fmt.Errorf("field %s assigned more than once", name)
		}
		seen[strings.ToLower(name)] = true
		out = append(out, assignment{field: name, value: value})
	}
	return out, nil
}

// replacement converts a command line value for field f. Sentinel names
// are accepted for enumerated fields, true/false for booleans, and numbers
// everywhere; numbers with a fraction or exponent become floats.
func replacement(f *pmbus.Field, s string) (pmbus.Replacement, error) {
	if s, ok := f.SentinelByName(s); ok {
		return pmbus.Integer(int64(s.Raw)), nil
	}
	switch strings.ToLower(s) {
	case "true", "on", "yes":
		return pmbus.Boolean(true), nil
	case "false", "off", "no":
		return pmbus.Boolean(false), nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return pmbus.Integer(i), nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return pmbus.Integer(int64(u)), nil
	}
	if x, err := strconv.ParseFloat(s, 32); err == nil {
		return pmbus.Float(float32(x)), nil
	}
	if f.Kind == pmbus.KindSentinel {
		names := make([]string, 0, len(f.Sentinels))
		for _, s := range f.Sentinels {
			names = append(names, s.Name)
		}
		return pmbus.Replacement{}, fmt.Errorf("%s: %q is not one of %s", f.Name, s, strings.Join(names, ", "))
	}
	return pmbus.Replacement{}, fmt.Errorf("%s: cannot use %q as a value", f.Name, s)
}
