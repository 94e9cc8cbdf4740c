// Package catalog loads device command catalogs from YAML or TOML files and
// exports the built-in device tables in the same format.
package catalog

import (
	"fmt"

	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// Version is the only catalog file version understood.
const Version = 1

// File is a catalog as stored on disk.
type File struct {
	Version  int      `yaml:"version" toml:"version"`
	Name     string   `yaml:"name" toml:"name"`
	Base     string   `yaml:"base,omitempty" toml:"base,omitempty"`
	Commands []*Entry `yaml:"commands" toml:"commands"`
}

// Entry describes one command.
type Entry struct {
	Code   Code         `yaml:"code" toml:"code"`
	Name   string       `yaml:"name" toml:"name"`
	Read   string       `yaml:"read,omitempty" toml:"read,omitempty"`
	Write  string       `yaml:"write,omitempty" toml:"write,omitempty"`
	Width  int          `yaml:"width" toml:"width"`
	Fields []FieldEntry `yaml:"fields" toml:"fields"`
}

// FieldEntry describes one field of a command. Pos is the field's least
// significant bit.
type FieldEntry struct {
	Name      string          `yaml:"name" toml:"name"`
	Desc      string          `yaml:"desc,omitempty" toml:"desc,omitempty"`
	Pos       int             `yaml:"pos" toml:"pos"`
	Width     int             `yaml:"width" toml:"width"`
	Kind      string          `yaml:"kind" toml:"kind"`
	Unit      string          `yaml:"unit,omitempty" toml:"unit,omitempty"`
	Scale     float32         `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Sentinels []SentinelEntry `yaml:"sentinels,omitempty" toml:"sentinels,omitempty"`
}

type SentinelEntry struct {
	Name string `yaml:"name" toml:"name"`
	Raw  uint64 `yaml:"raw" toml:"raw"`
}

// Validate checks the file's structure. Field layouts are checked when the
// file is compiled into a Catalog.
func (f *File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("unsupported catalog version: %d", f.Version)
	}
	if f.Name == "" {
		return fmt.Errorf("missing name")
	}
	if f.Base != "" {
		if _, err := device.ParseDevice(f.Base); err != nil {
			return fmt.Errorf("base: %w", err)
		}
	}

	codes := make(map[Code]bool)
	for i, e := range f.Commands {
		if e.Name == "" {
			return fmt.Errorf("command %d: missing name", i)
		}
		if codes[e.Code] {
			return fmt.Errorf("command %q: duplicate code %s", e.Name, e.Code)
		}
		codes[e.Code] = true

		if e.Width <= 0 || e.Width > pmbus.MaxWidth {
			return fmt.Errorf("command %q: width %d out of range 1..%d", e.Name, e.Width, pmbus.MaxWidth)
		}
		if len(e.Fields) == 0 {
			return fmt.Errorf("command %q: no fields", e.Name)
		}
		for _, fe := range e.Fields {
			if fe.Name == "" {
				return fmt.Errorf("command %q: field with no name", e.Name)
			}
			if fe.Kind == "" {
				return fmt.Errorf("command %q: field %q: missing kind", e.Name, fe.Name)
			}
		}
	}
	return nil
}

// Command converts the entry into an engine command. Operations left out
// of the entry are taken from the standard code table.
func (e *Entry) Command() (*pmbus.Command, error) {
	std := pmbus.CommandCode(e.Code)
	info := pmbus.Info{Code: uint8(e.Code), Name: e.Name, Read: std.ReadOp(), Write: std.WriteOp()}
	if e.Read != "" {
		op, ok := pmbus.ParseOperation(e.Read)
		if !ok {
			return nil, fmt.Errorf("read: unknown operation %q", e.Read)
		}
		info.Read = op
	}
	if e.Write != "" {
		op, ok := pmbus.ParseOperation(e.Write)
		if !ok {
			return nil, fmt.Errorf("write: unknown operation %q", e.Write)
		}
		info.Write = op
	}

	fields := make([]pmbus.Field, 0, len(e.Fields))
	for _, fe := range e.Fields {
		f, err := fe.field()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fe.Name, err)
		}
		fields = append(fields, f)
	}

	cmd := pmbus.NewCommand(info, e.Width, fields...)
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (fe *FieldEntry) field() (pmbus.Field, error) {
	kind, err := pmbus.ParseKind(fe.Kind)
	if err != nil {
		return pmbus.Field{}, err
	}
	unit, err := units.Parse(fe.Unit)
	if err != nil {
		return pmbus.Field{}, err
	}
	if fe.Pos < 0 || fe.Pos >= pmbus.MaxWidth*8 {
		return pmbus.Field{}, fmt.Errorf("pos %d out of range", fe.Pos)
	}
	if fe.Width <= 0 || fe.Width > 64 {
		return pmbus.Field{}, fmt.Errorf("width %d out of range", fe.Width)
	}

	f := pmbus.Field{
		Name:  fe.Name,
		Desc:  fe.Desc,
		Pos:   pmbus.Bitpos(fe.Pos),
		Width: pmbus.Bitwidth(fe.Width),
		Kind:  kind,
		Unit:  unit,
		Scale: fe.Scale,
	}
	for _, s := range fe.Sentinels {
		f.Sentinels = append(f.Sentinels, pmbus.Sentinel{Name: s.Name, Raw: s.Raw})
	}
	return f, nil
}

func entryFrom(c *pmbus.Command) *Entry {
	e := &Entry{
		Code:  Code(c.Code),
		Name:  c.Name,
		Width: c.Width,
	}
	std := pmbus.CommandCode(c.Code)
	if c.Read != std.ReadOp() {
		e.Read = c.Read.String()
	}
	if c.Write != std.WriteOp() {
		e.Write = c.Write.String()
	}
	for _, f := range c.Fields {
		fe := FieldEntry{
			Name:  f.Name,
			Desc:  f.Desc,
			Pos:   int(f.Pos),
			Width: int(f.Width),
			Kind:  f.Kind.String(),
			Scale: f.Scale,
		}
		if f.Unit != units.None {
			fe.Unit = f.Unit.String()
		}
		for _, s := range f.Sentinels {
			fe.Sentinels = append(fe.Sentinels, SentinelEntry{Name: s.Name, Raw: s.Raw})
		}
		e.Fields = append(e.Fields, fe)
	}
	return e
}
