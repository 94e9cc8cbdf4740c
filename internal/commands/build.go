package commands

import (
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// Quantity returns the default field name for a single-value command.
func Quantity(u units.Unit) string {
	switch u {
	case units.UnitVolts:
		return "Voltage"
	case units.UnitAmperes:
		return "Current"
	case units.UnitWatts:
		return "Power"
	case units.UnitCelsius:
		return "Temperature"
	case units.UnitMilliseconds, units.UnitMicroseconds:
		return "Time"
	case units.UnitKilohertz:
		return "Frequency"
	case units.UnitPercent:
		return "DutyCycle"
	case units.UnitRPM:
		return "Speed"
	default:
		return "Value"
	}
}

// Scalar is a full-width field of the given kind.
func Scalar(kind pmbus.Kind, width pmbus.Bitwidth, u units.Unit) pmbus.Field {
	return pmbus.Field{Name: Quantity(u), Pos: 0, Width: width, Kind: kind, Unit: u}
}

// Flags builds one-bit boolean fields named most significant bit first,
// starting at bit msb. Empty names leave the bit undeclared.
func Flags(msb int, names ...string) []pmbus.Field {
	fields := make([]pmbus.Field, 0, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		fields = append(fields, pmbus.Field{
			Name:  name,
			Pos:   pmbus.Bitpos(msb - i),
			Width: 1,
			Kind:  pmbus.KindBoolean,
		})
	}
	return fields
}

// Enum builds a sentinel field.
func Enum(name string, pos pmbus.Bitpos, width pmbus.Bitwidth, sentinels ...pmbus.Sentinel) pmbus.Field {
	return pmbus.Field{Name: name, Pos: pos, Width: width, Kind: pmbus.KindSentinel, Sentinels: sentinels}
}

// Named is shorthand for a sentinel.
func Named(name string, raw uint64) pmbus.Sentinel {
	return pmbus.Sentinel{Name: name, Raw: raw}
}

func linear(code pmbus.CommandCode, u units.Unit) *pmbus.Command {
	return pmbus.Define(code, 2, Scalar(pmbus.KindLinear11, 16, u))
}

func vout(code pmbus.CommandCode) *pmbus.Command {
	return pmbus.Define(code, 2, Scalar(pmbus.KindVOut, 16, units.UnitVolts))
}

func status(code pmbus.CommandCode, names ...string) *pmbus.Command {
	return pmbus.Define(code, 1, Flags(7, names...)...)
}

// faultResponse is the layout shared by the *_FAULT_RESPONSE commands
// (PMBus Part II, Sec. 10.5).
func faultResponse(code pmbus.CommandCode) *pmbus.Command {
	return pmbus.Define(code, 1,
		Enum("ResponseBehavior", 6, 2,
			Named("IgnoreFault", 0),
			Named("DelayThenRetry", 1),
			Named("DisableThenRetry", 2),
			Named("DisableUntilCleared", 3),
		),
		Enum("RetrySetting", 3, 3,
			Named("NoRetry", 0),
			Named("RetryForever", 7),
		),
		pmbus.Field{Name: "DelayTime", Pos: 0, Width: 3, Kind: pmbus.KindInteger},
	)
}

func integer(code pmbus.CommandCode, width int) *pmbus.Command {
	return pmbus.Define(code, width, pmbus.Field{
		Name:  "Value",
		Width: pmbus.Bitwidth(width * 8),
		Kind:  pmbus.KindInteger,
	})
}
