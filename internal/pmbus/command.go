package pmbus

import (
	"fmt"
	"sort"
	"strings"
)

// MaxWidth is the largest payload, in bytes, a Command may declare.
const MaxWidth = 32

// Command is the data definition of one command code: its identity, the
// byte width of its payload and the fields packed into it. Fields are kept
// in descending bit position order.
type Command struct {
	Code   uint8
	Name   string
	Read   Operation
	Write  Operation
	Width  int
	Fields []Field
}

// Define builds the definition of a standard command, taking its name and
// operations from the command table.
func Define(code CommandCode, width int, fields ...Field) *Command {
	return NewCommand(code.Info(), width, fields...)
}

// NewCommand builds a definition for an arbitrary command identity, such as
// a device-specific register.
func NewCommand(info Info, width int, fields ...Field) *Command {
	cmd := &Command{
		Code:   info.Code,
		Name:   info.Name,
		Read:   info.Read,
		Write:  info.Write,
		Width:  width,
		Fields: fields,
	}
	cmd.sortFields()
	return cmd
}

func (c *Command) sortFields() {
	sort.SliceStable(c.Fields, func(i, j int) bool {
		return c.Fields[i].Pos > c.Fields[j].Pos
	})
}

// Info returns the command's identity.
func (c *Command) Info() Info {
	return Info{Code: c.Code, Name: c.Name, Read: c.Read, Write: c.Write}
}

// Bits returns the payload width in bits.
func (c *Command) Bits() int { return c.Width * 8 }

// Field looks up a field by name (case-insensitive).
func (c *Command) Field(name string) (*Field, bool) {
	for i := range c.Fields {
		if strings.EqualFold(c.Fields[i].Name, name) {
			return &c.Fields[i], true
		}
	}
	return nil, false
}

// FieldAt returns the field whose least significant bit is pos.
func (c *Command) FieldAt(pos Bitpos) (*Field, bool) {
	for i := range c.Fields {
		if c.Fields[i].Pos == pos {
			return &c.Fields[i], true
		}
	}
	return nil, false
}

func (c *Command) String() string {
	return fmt.Sprintf("%s (0x%02X)", c.Name, c.Code)
}

// Validate checks the definition: width in range, fields inside the payload,
// no overlapping fields and unique sentinel values.
func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command 0x%02X has no name", c.Code)
	}
	if c.Width <= 0 || c.Width > MaxWidth {
		return fmt.Errorf("%s: width %d out of range 1..%d", c.Name, c.Width, MaxWidth)
	}
	names := make(map[string]bool, len(c.Fields))
	var used [MaxWidth * 8]string
	for i := range c.Fields {
		f := &c.Fields[i]
		if err := f.validate(c.Bits()); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		key := strings.ToLower(f.Name)
		if names[key] {
			return fmt.Errorf("%s: duplicate field %s", c.Name, f.Name)
		}
		names[key] = true
		for b := int(f.Pos); b < int(f.Pos)+int(f.Width); b++ {
			if used[b] != "" {
				return fmt.Errorf("%s: fields %s and %s overlap at bit %d", c.Name, used[b], f.Name, b)
			}
			used[b] = f.Name
		}
		if i > 0 && c.Fields[i-1].Pos < f.Pos {
			return fmt.Errorf("%s: field %s out of order", c.Name, f.Name)
		}
	}
	return nil
}

// Table maps command codes to definitions. A nil entry means the code has
// no data definition.
type Table [256]*Command

// Lookup returns the definition for code, or nil.
func (t *Table) Lookup(code uint8) *Command {
	return t[code]
}

// Register adds definitions to the table, replacing existing entries.
func (t *Table) Register(cmds ...*Command) {
	for _, c := range cmds {
		t[c.Code] = c
	}
}

// Each calls fn for every defined command in code order.
func (t *Table) Each(fn func(c *Command)) {
	for _, c := range t {
		if c != nil {
			fn(c)
		}
	}
}
