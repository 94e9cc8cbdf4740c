// Package bmr491 defines the Flex BMR491. It shares the BMR480 register set
// and adds the ripple-control and kick-start registers.
package bmr491

import (
	"github.com/tturner/pmbus/internal/commands/bmr480"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

const (
	MfrRCLevel   uint8 = 0xEB
	MfrKSPretrig uint8 = 0xEC
)

var (
	RCLevel = pmbus.NewCommand(pmbus.Info{
		Code: MfrRCLevel, Name: "MFR_RC_LEVEL", Read: pmbus.OpReadByte, Write: pmbus.OpWriteByte,
	}, 1,
		pmbus.Field{Name: "Level", Width: 8, Kind: pmbus.KindScaled, Scale: 0.1, Unit: units.UnitVolts},
	)

	KSPretrig = pmbus.NewCommand(pmbus.Info{
		Code: MfrKSPretrig, Name: "MFR_KS_PRETRIG", Read: pmbus.OpReadByte, Write: pmbus.OpWriteByte,
	}, 1,
		pmbus.Field{Name: "Pretrigger", Width: 8, Kind: pmbus.KindScaled, Scale: 0.45, Unit: units.UnitMicroseconds},
	)
)

// Table holds the BMR491 definitions that differ from the standard.
var Table = build()

func build() *pmbus.Table {
	t := bmr480.Build()
	t.Register(RCLevel, KSPretrig)
	return t
}
