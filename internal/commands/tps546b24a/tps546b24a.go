// Package tps546b24a defines the TI TPS546B24A buck converter. Apart from
// READ_ALL it follows the standard definitions.
package tps546b24a

import (
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

const MfrReadAll uint8 = 0xDA

// ReadAll returns the main telemetry in one block read.
var ReadAll = pmbus.NewCommand(pmbus.Info{
	Code: MfrReadAll, Name: "READ_ALL", Read: pmbus.OpReadBlock, Write: pmbus.OpIllegal,
}, 14,
	pmbus.Field{Name: "ReadPOut", Pos: 96, Width: 16, Kind: pmbus.KindLinear11, Unit: units.UnitWatts},
	pmbus.Field{Name: "ReadIIn", Pos: 80, Width: 16, Kind: pmbus.KindLinear11, Unit: units.UnitAmperes},
	pmbus.Field{Name: "ReadVIn", Pos: 64, Width: 16, Kind: pmbus.KindLinear11, Unit: units.UnitVolts},
	pmbus.Field{Name: "ReadTemperature1", Pos: 48, Width: 16, Kind: pmbus.KindLinear11, Unit: units.UnitCelsius},
	pmbus.Field{Name: "ReadIOut", Pos: 32, Width: 16, Kind: pmbus.KindLinear11, Unit: units.UnitAmperes},
	pmbus.Field{Name: "ReadVOut", Pos: 16, Width: 16, Kind: pmbus.KindVOut, Unit: units.UnitVolts},
	pmbus.Field{Name: "StatusWord", Pos: 0, Width: 16, Kind: pmbus.KindInteger},
)

// Table holds the TPS546B24A definitions that differ from the standard.
var Table = build()

func build() *pmbus.Table {
	t := &pmbus.Table{}
	t.Register(ReadAll)
	return t
}
