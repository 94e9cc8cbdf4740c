// Package bmr480 defines the Flex BMR480 intermediate bus converter's
// manufacturer registers. Telemetry follows the standard LINEAR11 and
// ULINEAR16 formats.
package bmr480

import (
	"github.com/tturner/pmbus/internal/commands"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

const (
	MfrFastOCPCfg      uint8 = 0xE6
	MfrResponseUnitCfg uint8 = 0xE7
	MfrIShareThreshold uint8 = 0xE8
)

func responseUnit(name string, pos pmbus.Bitpos) pmbus.Field {
	return commands.Enum(name, pos, 2,
		commands.Named("Unit10us", 0),
		commands.Named("Unit100us", 1),
		commands.Named("Unit1ms", 2),
		commands.Named("Unit10ms", 3),
	)
}

var (
	FastOCPCfg = pmbus.NewCommand(pmbus.Info{
		Code: MfrFastOCPCfg, Name: "MFR_FAST_OCP_CFG", Read: pmbus.OpReadWord, Write: pmbus.OpWriteWord,
	}, 2,
		pmbus.Field{Name: "Enable", Pos: 15, Width: 1, Kind: pmbus.KindBoolean},
		pmbus.Field{Name: "ResponseDelay", Pos: 10, Width: 3, Kind: pmbus.KindInteger},
		pmbus.Field{Name: "CurrentLimit", Pos: 0, Width: 10, Kind: pmbus.KindScaled, Scale: 0.125, Unit: units.UnitAmperes},
	)

	ResponseUnitCfg = pmbus.NewCommand(pmbus.Info{
		Code: MfrResponseUnitCfg, Name: "MFR_RESPONSE_UNIT_CFG", Read: pmbus.OpReadByte, Write: pmbus.OpWriteByte,
	}, 1,
		responseUnit("VInResponseUnit", 6),
		responseUnit("VOutResponseUnit", 4),
		responseUnit("TemperatureResponseUnit", 2),
		responseUnit("IOutResponseUnit", 0),
	)

	IShareThreshold = pmbus.NewCommand(pmbus.Info{
		Code: MfrIShareThreshold, Name: "MFR_ISHARE_THRESHOLD", Read: pmbus.OpReadBlock, Write: pmbus.OpWriteBlock,
	}, 8,
		pmbus.Field{Name: "IShareEnable", Pos: 56, Width: 1, Kind: pmbus.KindBoolean},
		pmbus.Field{Name: "TrimLimit", Pos: 24, Width: 8, Kind: pmbus.KindScaled, Scale: 0.0017, Unit: units.UnitVolts},
		pmbus.Field{Name: "TrimDelay", Pos: 16, Width: 8, Kind: pmbus.KindInteger},
		pmbus.Field{Name: "ThresholdHigh", Pos: 8, Width: 8, Kind: pmbus.KindInteger},
		pmbus.Field{Name: "ThresholdLow", Pos: 0, Width: 8, Kind: pmbus.KindInteger},
	)
)

// Table holds the BMR480 definitions that differ from the standard.
var Table = Build()

// Build returns a fresh table with the BMR480 registers, for parts in the
// same family to extend.
func Build() *pmbus.Table {
	t := &pmbus.Table{}
	t.Register(FastOCPCfg, ResponseUnitCfg, IShareThreshold)
	return t
}
