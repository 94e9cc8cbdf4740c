package pmbus

import (
	"fmt"
	"strings"

	"github.com/tturner/pmbus/internal/units"
)

// Bitpos is the position of a field's least significant bit.
type Bitpos uint8

// Bitwidth is the number of bits a field occupies.
type Bitwidth uint8

// Kind is the semantic type of a field.
type Kind uint8

const (
	KindBoolean Kind = iota
	KindSentinel
	KindInteger
	KindSigned
	KindDirect
	KindLinear11
	KindVOut
	KindScaled
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindSentinel:
		return "sentinel"
	case KindInteger:
		return "integer"
	case KindSigned:
		return "signed"
	case KindDirect:
		return "direct"
	case KindLinear11:
		return "linear11"
	case KindVOut:
		return "vout"
	case KindScaled:
		return "scaled"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a kind name back to its value.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindBoolean; k <= KindScaled; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	switch s {
	case "bool":
		return KindBoolean, nil
	case "enum", "enumeration":
		return KindSentinel, nil
	case "unsigned", "uint":
		return KindInteger, nil
	case "linear16", "ulinear16":
		return KindVOut, nil
	}
	return KindBoolean, fmt.Errorf("unknown field kind %q", s)
}

// Physical reports whether the kind decodes to a real-valued quantity.
func (k Kind) Physical() bool {
	switch k {
	case KindDirect, KindLinear11, KindVOut, KindScaled:
		return true
	}
	return false
}

// Sentinel is a named value of an enumerated field.
type Sentinel struct {
	Name string
	Raw  uint64
}

// Field describes one bit range of a command's payload.
type Field struct {
	Name      string
	Desc      string
	Pos       Bitpos
	Width     Bitwidth
	Kind      Kind
	Unit      units.Unit
	Scale     float32
	Sentinels []Sentinel
}

// Bits returns the field's position and width.
func (f *Field) Bits() (Bitpos, Bitwidth) {
	return f.Pos, f.Width
}

// Bitfield reports whether the field is a boolean or enumeration rather
// than a full-width scalar.
func (f *Field) Bitfield() bool {
	return f.Kind == KindBoolean || f.Kind == KindSentinel
}

// Mask returns the largest raw value the field can hold.
func (f *Field) Mask() uint64 {
	if f.Width >= 64 {
		return ^uint64(0)
	}
	return 1<<f.Width - 1
}

// Describe returns Desc, or Name when there is no description.
func (f *Field) Describe() string {
	if f.Desc != "" {
		return f.Desc
	}
	return f.Name
}

// Sentinel looks up the named value for a raw code.
func (f *Field) Sentinel(raw uint64) (Sentinel, bool) {
	for _, s := range f.Sentinels {
		if s.Raw == raw {
			return s, true
		}
	}
	return Sentinel{}, false
}

// SentinelByName looks up a named value (case-insensitive).
func (f *Field) SentinelByName(name string) (Sentinel, bool) {
	for _, s := range f.Sentinels {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Sentinel{}, false
}

func (f *Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("%s[%d]", f.Name, f.Pos)
	}
	return fmt.Sprintf("%s[%d:%d]", f.Name, int(f.Pos)+int(f.Width)-1, f.Pos)
}

// validate checks the field against a payload of the given bit width.
func (f *Field) validate(bits int) error {
	if f.Name == "" {
		return fmt.Errorf("field at bit %d has no name", f.Pos)
	}
	if f.Width == 0 || f.Width > 64 {
		return fmt.Errorf("field %s: width %d out of range 1..64", f.Name, f.Width)
	}
	if int(f.Pos)+int(f.Width) > bits {
		return fmt.Errorf("field %s: bits %d..%d exceed payload width %d", f.Name, f.Pos, int(f.Pos)+int(f.Width)-1, bits)
	}
	switch f.Kind {
	case KindBoolean:
		if len(f.Sentinels) > 0 {
			return fmt.Errorf("field %s: boolean fields take no sentinels", f.Name)
		}
	case KindDirect, KindLinear11, KindVOut:
		if f.Width > 16 {
			return fmt.Errorf("field %s: %s fields are at most 16 bits", f.Name, f.Kind)
		}
	case KindScaled:
		if f.Scale == 0 {
			return fmt.Errorf("field %s: scaled field needs a non-zero scale", f.Name)
		}
	}
	seen := make(map[uint64]string, len(f.Sentinels))
	for _, s := range f.Sentinels {
		if s.Raw > f.Mask() {
			return fmt.Errorf("field %s: sentinel %s value 0x%X exceeds width %d", f.Name, s.Name, s.Raw, f.Width)
		}
		if prev, ok := seen[s.Raw]; ok {
			return fmt.Errorf("field %s: sentinels %s and %s share value 0x%X", f.Name, prev, s.Name, s.Raw)
		}
		seen[s.Raw] = s.Name
	}
	return nil
}
