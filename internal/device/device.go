// Package device resolves command codes against a device. Every device falls
// back to the standard definitions for codes it does not redefine.
package device

import (
	"fmt"
	"strings"

	"github.com/tturner/pmbus/internal/commands"
	"github.com/tturner/pmbus/internal/commands/adm1272"
	"github.com/tturner/pmbus/internal/commands/bmr480"
	"github.com/tturner/pmbus/internal/commands/bmr491"
	"github.com/tturner/pmbus/internal/commands/isl68224"
	"github.com/tturner/pmbus/internal/commands/tps546b24a"
	"github.com/tturner/pmbus/internal/pmbus"
)

// Device is a supported part, or Common for the bare standard.
type Device uint8

const (
	Common Device = iota
	ADM1272
	BMR480
	BMR491
	ISL68224
	TPS546B24A

	numDevices
)

var names = [numDevices]string{
	Common:     "Common",
	ADM1272:    "ADM1272",
	BMR480:     "BMR480",
	BMR491:     "BMR491",
	ISL68224:   "ISL68224",
	TPS546B24A: "TPS546B24A",
}

var overrides = [numDevices]*pmbus.Table{
	Common:     {},
	ADM1272:    adm1272.Table,
	BMR480:     bmr480.Table,
	BMR491:     bmr491.Table,
	ISL68224:   isl68224.Table,
	TPS546B24A: tps546b24a.Table,
}

func (d Device) String() string {
	if d < numDevices {
		return names[d]
	}
	return fmt.Sprintf("Device(%d)", uint8(d))
}

// Devices calls fn for every known device, Common first.
func Devices(fn func(d Device)) {
	for d := Common; d < numDevices; d++ {
		fn(d)
	}
}

// ParseDevice maps a device name (case-insensitive) to a Device.
func ParseDevice(s string) (Device, error) {
	s = strings.TrimSpace(s)
	for d := Common; d < numDevices; d++ {
		if strings.EqualFold(names[d], s) {
			return d, nil
		}
	}
	return Common, fmt.Errorf("unknown device %q", s)
}

func (d Device) table() *pmbus.Table {
	if d < numDevices {
		return overrides[d]
	}
	return overrides[Common]
}

// Override returns the device's own definition of code, or nil when the
// device uses the standard one.
func (d Device) Override(code uint8) *pmbus.Command {
	return d.table().Lookup(code)
}

// Lookup returns the definition used for code: the device's when it has
// one, the standard one otherwise. It returns nil when neither defines the
// code.
func (d Device) Lookup(code uint8) *pmbus.Command {
	if c := d.Override(code); c != nil {
		return c
	}
	return commands.Common.Lookup(code)
}

// Command reports the name and bus operations of code on this device.
// Device-specific names take precedence over the standard table.
func (d Device) Command(code uint8) pmbus.Info {
	if c := d.Lookup(code); c != nil {
		return c.Info()
	}
	return pmbus.CommandCode(code).Info()
}

// Overrides calls fn for every command the device redefines.
func (d Device) Overrides(fn func(c *pmbus.Command)) {
	d.table().Each(fn)
}

// Context returns the decode context the device fixes by itself: the
// ISL68224's DIRECT coefficients and VOUT_MODE, or the ADM1272's default
// strapping. Other devices need the caller to supply context.
func (d Device) Context() pmbus.Params {
	switch d {
	case ISL68224:
		return isl68224.Context
	case ADM1272:
		return pmbus.Params{Direct: adm1272.DefaultConfig.Coefficients}
	default:
		return pmbus.Params{}
	}
}

func (d Device) Fields(code uint8, fn func(f *pmbus.Field)) error {
	return Fields(d, code, fn)
}

func (d Device) Sentinels(code uint8, pos pmbus.Bitpos, fn func(s pmbus.Sentinel)) error {
	return Sentinels(d, code, pos, fn)
}

// Interpret decodes payload as command code on this device.
func (d Device) Interpret(code uint8, payload []byte, p pmbus.Provider, fn func(f *pmbus.Field, v pmbus.Value)) error {
	return Interpret(d, code, payload, p, fn)
}

// Mutate applies fn's replacements to payload in place.
func (d Device) Mutate(code uint8, payload []byte, p pmbus.Provider, fn func(f *pmbus.Field, v pmbus.Value) (pmbus.Replacement, bool)) error {
	return Mutate(d, code, payload, p, fn)
}
