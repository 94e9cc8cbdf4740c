// Package isl68224 defines the Renesas ISL68224 digital multiphase
// controller. The part reports in DIRECT format with fixed coefficients, so
// unlike most DIRECT devices it needs no COEFFICIENTS read.
package isl68224

import (
	"fmt"

	"github.com/tturner/pmbus/internal/codec"
	"github.com/tturner/pmbus/internal/commands"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// DMA window used to reach internal registers.
const (
	DMAData uint8 = 0xC5
	DMAFix  uint8 = 0xC6
	DMAAddr uint8 = 0xC7
	DMASeq  uint8 = 0xC8
)

// VOutMode is the part's fixed VOUT_MODE: DIRECT, absolute.
const VOutMode pmbus.VOutMode = 0x40

var (
	// VOUT-family words are in millivolts.
	voltsMilli = codec.Coefficients{M: 1, B: 0, R: 3}
	// Input voltage is in units of 10 mV.
	voltsCenti = codec.Coefficients{M: 1, B: 0, R: 2}
	amps       = codec.Coefficients{M: 1, B: 0, R: 1}
	whole      = codec.Coefficients{M: 1, B: 0, R: 0}
	millis     = codec.Coefficients{M: 1, B: 0, R: 3}
)

var coefficients = map[uint8]codec.Coefficients{
	uint8(pmbus.CmdVInOVFaultLimit):  voltsCenti,
	uint8(pmbus.CmdVInUVFaultLimit):  voltsCenti,
	uint8(pmbus.CmdReadVIn):          voltsCenti,
	uint8(pmbus.CmdReadIIn):          voltsCenti,
	uint8(pmbus.CmdReadIOut):         amps,
	uint8(pmbus.CmdIOutOCFaultLimit): amps,
	uint8(pmbus.CmdReadTemperature1): whole,
	uint8(pmbus.CmdReadTemperature2): whole,
	uint8(pmbus.CmdReadTemperature3): whole,
	uint8(pmbus.CmdOTFaultLimit):     whole,
	uint8(pmbus.CmdOTWarnLimit):      whole,
	uint8(pmbus.CmdReadPOut):         whole,
	uint8(pmbus.CmdReadPIn):          whole,
	uint8(pmbus.CmdTOnDelay):         millis,
	uint8(pmbus.CmdTOnRise):          millis,
	uint8(pmbus.CmdTOffDelay):        millis,
	uint8(pmbus.CmdTOffFall):         millis,
}

// Coefficients returns the fixed DIRECT coefficients for a command. It
// satisfies pmbus.CoefficientsFunc.
func Coefficients(code uint8, f *pmbus.Field) (codec.Coefficients, error) {
	if f.Kind == pmbus.KindVOut {
		return voltsMilli, nil
	}
	if c, ok := coefficients[code]; ok {
		return c, nil
	}
	return codec.Coefficients{}, fmt.Errorf("isl68224: no coefficients for 0x%02X: %w", code, pmbus.ErrNoContext)
}

// Context supplies everything an ISL68224 payload needs to decode.
var Context = pmbus.Params{VOut: pmbus.Mode(VOutMode), Direct: Coefficients}

func direct(code pmbus.CommandCode, u units.Unit) *pmbus.Command {
	return pmbus.Define(code, 2, commands.Scalar(pmbus.KindDirect, 16, u))
}

func dma(code uint8, name string, width int) *pmbus.Command {
	read, write := pmbus.OpReadWord32, pmbus.OpWriteWord32
	if width == 2 {
		read, write = pmbus.OpReadWord, pmbus.OpWriteWord
	}
	return pmbus.NewCommand(pmbus.Info{Code: code, Name: name, Read: read, Write: write}, width,
		pmbus.Field{Name: "Value", Width: pmbus.Bitwidth(width * 8), Kind: pmbus.KindInteger})
}

// Table holds the ISL68224 definitions that differ from the standard.
var Table = build()

func build() *pmbus.Table {
	t := &pmbus.Table{}
	t.Register(
		direct(pmbus.CmdVInOVFaultLimit, units.UnitVolts),
		direct(pmbus.CmdVInUVFaultLimit, units.UnitVolts),
		direct(pmbus.CmdReadVIn, units.UnitVolts),
		direct(pmbus.CmdReadIIn, units.UnitAmperes),
		direct(pmbus.CmdReadIOut, units.UnitAmperes),
		direct(pmbus.CmdIOutOCFaultLimit, units.UnitAmperes),
		direct(pmbus.CmdReadTemperature1, units.UnitCelsius),
		direct(pmbus.CmdReadTemperature2, units.UnitCelsius),
		direct(pmbus.CmdReadTemperature3, units.UnitCelsius),
		direct(pmbus.CmdOTFaultLimit, units.UnitCelsius),
		direct(pmbus.CmdOTWarnLimit, units.UnitCelsius),
		direct(pmbus.CmdReadPOut, units.UnitWatts),
		direct(pmbus.CmdReadPIn, units.UnitWatts),
		direct(pmbus.CmdTOnDelay, units.UnitMilliseconds),
		direct(pmbus.CmdTOnRise, units.UnitMilliseconds),
		direct(pmbus.CmdTOffDelay, units.UnitMilliseconds),
		direct(pmbus.CmdTOffFall, units.UnitMilliseconds),
		dma(DMAData, "DMADATA", 4),
		dma(DMAFix, "DMAFIX", 4),
		dma(DMAAddr, "DMAADDR", 2),
		dma(DMASeq, "DMASEQ", 4),
	)
	return t
}
