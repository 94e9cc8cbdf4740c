package pmbus

import (
	"fmt"
	"strconv"

	"github.com/tturner/pmbus/internal/units"
)

// ValueKind is the shape of a decoded value.
type ValueKind uint8

const (
	ValueBoolean ValueKind = iota
	ValueInteger
	ValueFloat
	ValueSentinel
)

func (k ValueKind) String() string {
	switch k {
	case ValueBoolean:
		return "boolean"
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueSentinel:
		return "sentinel"
	default:
		return fmt.Sprintf("value(%d)", uint8(k))
	}
}

// Value is a field decoded from a payload. Values are only produced by
// decoding; the zero Value is an unset boolean.
type Value struct {
	kind   ValueKind
	signed bool
	raw    uint64
	i      int64
	f      float32
	unit   units.Unit
	name   string
}

func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean, or whether the raw bits are non-zero.
func (v Value) Bool() bool { return v.raw != 0 }

// Int returns the integer value. Signed fields are sign extended.
func (v Value) Int() int64 { return v.i }

// Float returns the physical value, or the integer as a float.
func (v Value) Float() float32 {
	if v.kind == ValueFloat {
		return v.f
	}
	return float32(v.i)
}

func (v Value) Unit() units.Unit { return v.unit }

// Name returns the sentinel name, or "" for unnamed values.
func (v Value) Name() string { return v.name }

// Raw returns the field's bits as stored in the payload.
func (v Value) Raw() uint64 { return v.raw }

func (v Value) String() string {
	switch v.kind {
	case ValueBoolean:
		return strconv.FormatBool(v.raw != 0)
	case ValueSentinel:
		return v.name
	case ValueFloat:
		return v.unit.Format(v.f)
	default:
		if v.signed {
			return strconv.FormatInt(v.i, 10)
		}
		return fmt.Sprintf("0x%x", v.raw)
	}
}

func boolValue(raw uint64) Value {
	return Value{kind: ValueBoolean, raw: raw, i: int64(raw)}
}

func intValue(raw uint64) Value {
	return Value{kind: ValueInteger, raw: raw, i: int64(raw)}
}

func signedValue(raw uint64, width Bitwidth) Value {
	i := int64(raw)
	if width < 64 && raw&(1<<(width-1)) != 0 {
		i -= 1 << width
	}
	return Value{kind: ValueInteger, signed: true, raw: raw, i: i}
}

func sentinelValue(raw uint64, name string) Value {
	return Value{kind: ValueSentinel, raw: raw, i: int64(raw), name: name}
}

func floatValue(raw uint64, f float32, u units.Unit) Value {
	return Value{kind: ValueFloat, raw: raw, i: int64(raw), f: f, unit: u}
}

// ReplacementKind tags a Replacement.
type ReplacementKind uint8

const (
	ReplaceBoolean ReplacementKind = iota
	ReplaceInteger
	ReplaceFloat
)

func (k ReplacementKind) String() string {
	switch k {
	case ReplaceBoolean:
		return "Boolean"
	case ReplaceInteger:
		return "Integer"
	default:
		return "Float"
	}
}

// Replacement is a new value proposed for a field during Mutate.
type Replacement struct {
	kind ReplacementKind
	b    bool
	i    int64
	f    float32
}

// Boolean proposes a boolean value.
func Boolean(b bool) Replacement { return Replacement{kind: ReplaceBoolean, b: b} }

// Integer proposes a raw integer, or a whole physical value for physical
// fields.
func Integer(i int64) Replacement { return Replacement{kind: ReplaceInteger, i: i} }

// Float proposes a physical value.
func Float(f float32) Replacement { return Replacement{kind: ReplaceFloat, f: f} }

func (r Replacement) Kind() ReplacementKind { return r.kind }

func (r Replacement) String() string {
	switch r.kind {
	case ReplaceBoolean:
		return fmt.Sprintf("Boolean(%t)", r.b)
	case ReplaceInteger:
		return fmt.Sprintf("Integer(%d)", r.i)
	default:
		return fmt.Sprintf("Float(%g)", r.f)
	}
}

func (r Replacement) real() float32 {
	if r.kind == ReplaceInteger {
		return float32(r.i)
	}
	return r.f
}
