package units

// Physical quantities carried by PMBus data words.

import (
	"fmt"
	"strings"
)

// Unit identifies the physical quantity a field decodes to.
type Unit uint8

const (
	None Unit = iota
	UnitVolts
	UnitAmperes
	UnitWatts
	UnitCelsius
	UnitMilliseconds
	UnitMicroseconds
	UnitKilohertz
	UnitPercent
	UnitRPM
)

// Volts is an electrical potential.
type Volts float32

// Amperes is an electrical current.
type Amperes float32

// Watts is a power.
type Watts float32

// Celsius is a temperature.
type Celsius float32

// Milliseconds is a duration.
type Milliseconds float32

// Microseconds is a duration.
type Microseconds float32

// Kilohertz is a switching frequency.
type Kilohertz float32

// Percent is a ratio such as a duty cycle.
type Percent float32

// RPM is a fan speed.
type RPM float32

func (v Volts) String() string        { return format(float32(v), UnitVolts) }
func (a Amperes) String() string      { return format(float32(a), UnitAmperes) }
func (w Watts) String() string        { return format(float32(w), UnitWatts) }
func (c Celsius) String() string      { return format(float32(c), UnitCelsius) }
func (m Milliseconds) String() string { return format(float32(m), UnitMilliseconds) }
func (m Microseconds) String() string { return format(float32(m), UnitMicroseconds) }
func (k Kilohertz) String() string    { return format(float32(k), UnitKilohertz) }
func (p Percent) String() string      { return format(float32(p), UnitPercent) }
func (r RPM) String() string          { return format(float32(r), UnitRPM) }

// Symbol returns the display suffix for the unit.
func (u Unit) Symbol() string {
	switch u {
	case UnitVolts:
		return "V"
	case UnitAmperes:
		return "A"
	case UnitWatts:
		return "W"
	case UnitCelsius:
		return "°C"
	case UnitMilliseconds:
		return "ms"
	case UnitMicroseconds:
		return "µs"
	case UnitKilohertz:
		return "kHz"
	case UnitPercent:
		return "%"
	case UnitRPM:
		return "RPM"
	default:
		return ""
	}
}

// String returns the lower-case unit name used in catalog files.
func (u Unit) String() string {
	switch u {
	case UnitVolts:
		return "volts"
	case UnitAmperes:
		return "amperes"
	case UnitWatts:
		return "watts"
	case UnitCelsius:
		return "celsius"
	case UnitMilliseconds:
		return "milliseconds"
	case UnitMicroseconds:
		return "microseconds"
	case UnitKilohertz:
		return "kilohertz"
	case UnitPercent:
		return "percent"
	case UnitRPM:
		return "rpm"
	default:
		return "none"
	}
}

// Parse maps a catalog unit name (or symbol) back to a Unit.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "volts", "v":
		return UnitVolts, nil
	case "amperes", "amps", "a":
		return UnitAmperes, nil
	case "watts", "w":
		return UnitWatts, nil
	case "celsius", "c", "°c":
		return UnitCelsius, nil
	case "milliseconds", "ms":
		return UnitMilliseconds, nil
	case "microseconds", "us", "µs":
		return UnitMicroseconds, nil
	case "kilohertz", "khz":
		return UnitKilohertz, nil
	case "percent", "%":
		return UnitPercent, nil
	case "rpm":
		return UnitRPM, nil
	default:
		return None, fmt.Errorf("unknown unit %q", s)
	}
}

// Format renders a value with the unit's symbol.
func (u Unit) Format(v float32) string {
	return format(v, u)
}

func format(v float32, u Unit) string {
	sym := u.Symbol()
	if sym == "" {
		return fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%g%s", v, sym)
}
