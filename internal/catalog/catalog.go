package catalog

import (
	"fmt"

	"github.com/tturner/pmbus/internal/commands"
	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/pmbus"
)

// Catalog is a compiled catalog file. Its commands take precedence over
// those of its base device.
type Catalog struct {
	name  string
	base  device.Device
	table pmbus.Table
	file  *File
}

var _ device.Resolver = (*Catalog)(nil)

// New validates and compiles a catalog file.
func New(file *File) (*Catalog, error) {
	if err := file.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{name: file.Name, file: file}
	if file.Base != "" {
		// Validate has already checked the name
		c.base, _ = device.ParseDevice(file.Base)
	}

	for _, e := range file.Commands {
		cmd, err := e.Command()
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", e.Name, err)
		}
		c.table.Register(cmd)
	}
	return c, nil
}

func (c *Catalog) String() string { return c.name }

// Base returns the device the catalog overlays.
func (c *Catalog) Base() device.Device { return c.base }

// File returns the source file.
func (c *Catalog) File() *File { return c.file }

// Lookup returns the catalog's definition of code, falling back to the base
// device.
func (c *Catalog) Lookup(code uint8) *pmbus.Command {
	if cmd := c.table.Lookup(code); cmd != nil {
		return cmd
	}
	return c.base.Lookup(code)
}

// Command reports the name and operations of code.
func (c *Catalog) Command(code uint8) pmbus.Info {
	if cmd := c.table.Lookup(code); cmd != nil {
		return cmd.Info()
	}
	return c.base.Command(code)
}

// Each calls fn for every command the catalog itself defines.
func (c *Catalog) Each(fn func(cmd *pmbus.Command)) {
	c.table.Each(fn)
}

// Export renders a built-in device as a catalog file. For Common this is
// the full standard table. For other devices it holds only their own
// definitions, so loading it over Common reproduces the device.
func Export(d device.Device) *File {
	file := &File{Version: Version, Name: d.String()}
	add := func(cmd *pmbus.Command) {
		file.Commands = append(file.Commands, entryFrom(cmd))
	}
	if d == device.Common {
		commands.Common.Each(add)
	} else {
		d.Overrides(add)
	}
	return file
}
