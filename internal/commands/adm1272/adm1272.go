// Package adm1272 defines the ADM1272 hot-swap controller's registers.
// All telemetry is in DIRECT format; the coefficients depend on the
// voltage range, the current sense range and the sense resistor.
package adm1272

import (
	"fmt"

	"github.com/tturner/pmbus/internal/codec"
	"github.com/tturner/pmbus/internal/commands"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// Manufacturer-specific command codes.
const (
	PeakIOut          uint8 = 0xD0
	PeakVIn           uint8 = 0xD1
	PeakVOut          uint8 = 0xD2
	PMONControl       uint8 = 0xD3
	PMONConfig        uint8 = 0xD4
	AlertConfig       uint8 = 0xD5
	PeakPIn           uint8 = 0xDA
	ReadPInExt        uint8 = 0xDC
	ReadEInExt        uint8 = 0xDD
	HysteresisLow     uint8 = 0xF2
	HysteresisHigh    uint8 = 0xF3
	StartupIOutLimit  uint8 = 0xF6
)

func mfr(code uint8, name string, read, write pmbus.Operation) pmbus.Info {
	return pmbus.Info{Code: code, Name: name, Read: read, Write: write}
}

func direct(code pmbus.CommandCode, u units.Unit) *pmbus.Command {
	return pmbus.Define(code, 2, commands.Scalar(pmbus.KindDirect, 16, u))
}

func peak(code uint8, name string, u units.Unit) *pmbus.Command {
	return pmbus.NewCommand(mfr(code, name, pmbus.OpReadWord, pmbus.OpWriteWord), 2,
		commands.Scalar(pmbus.KindDirect, 16, u))
}

// Averaging sample counts shared by the PMON_CONFIG averaging fields.
func averaging() []pmbus.Sentinel {
	return []pmbus.Sentinel{
		commands.Named("Disabled", 0),
		commands.Named("Samples2", 1),
		commands.Named("Samples4", 2),
		commands.Named("Samples8", 3),
		commands.Named("Samples16", 4),
		commands.Named("Samples32", 5),
		commands.Named("Samples64", 6),
		commands.Named("Samples128", 7),
	}
}

var (
	PMONConfigCommand = pmbus.NewCommand(mfr(PMONConfig, "PMON_CONFIG", pmbus.OpReadWord, pmbus.OpWriteWord), 2,
		commands.Enum("TempFilter", 15, 1,
			commands.Named("Disabled", 0),
			commands.Named("Enabled", 1),
		),
		commands.Enum("SimultaneousSampling", 14, 1,
			commands.Named("Disabled", 0),
			commands.Named("Enabled", 1),
		),
		commands.Enum("PowerAveraging", 11, 3, averaging()...),
		commands.Enum("VIAveraging", 8, 3, averaging()...),
		commands.Enum("VoltageRange", 5, 1,
			commands.Named("Range60V", 0),
			commands.Named("Range100V", 1),
		),
		pmbus.Field{Name: "TemperatureEnable", Pos: 4, Width: 1, Kind: pmbus.KindBoolean},
		pmbus.Field{Name: "VInEnable", Pos: 3, Width: 1, Kind: pmbus.KindBoolean},
		pmbus.Field{Name: "VOutEnable", Pos: 2, Width: 1, Kind: pmbus.KindBoolean},
		commands.Enum("Mode", 1, 1,
			commands.Named("SingleShot", 0),
			commands.Named("Continuous", 1),
		),
	)

	PMONControlCommand = pmbus.NewCommand(mfr(PMONControl, "PMON_CONTROL", pmbus.OpReadByte, pmbus.OpWriteByte), 1,
		pmbus.Field{Name: "Convert", Pos: 0, Width: 1, Kind: pmbus.KindBoolean},
	)
)

// Table holds the ADM1272 definitions that differ from the standard.
var Table = build()

func build() *pmbus.Table {
	t := &pmbus.Table{}
	t.Register(
		direct(pmbus.CmdReadVIn, units.UnitVolts),
		direct(pmbus.CmdReadVOut, units.UnitVolts),
		direct(pmbus.CmdReadIOut, units.UnitAmperes),
		direct(pmbus.CmdReadPIn, units.UnitWatts),
		direct(pmbus.CmdReadTemperature1, units.UnitCelsius),
		direct(pmbus.CmdVOutOVWarnLimit, units.UnitVolts),
		direct(pmbus.CmdVOutUVWarnLimit, units.UnitVolts),
		direct(pmbus.CmdIOutOCWarnLimit, units.UnitAmperes),
		direct(pmbus.CmdOTFaultLimit, units.UnitCelsius),
		direct(pmbus.CmdOTWarnLimit, units.UnitCelsius),
		direct(pmbus.CmdVInOVWarnLimit, units.UnitVolts),
		direct(pmbus.CmdVInUVWarnLimit, units.UnitVolts),
		direct(pmbus.CmdPInOPWarnLimit, units.UnitWatts),
		pmbus.Define(pmbus.CmdStatusMfrSpecific, 1, commands.Flags(7,
			"HotSwapCurrentLimit", "HotSwapShutdown", "FETHealthFault", "",
			"UVCompareOut", "OVCompareOut", "HysteresisHigh", "HysteresisLow")...),
		peak(PeakIOut, "PEAK_IOUT", units.UnitAmperes),
		peak(PeakVIn, "PEAK_VIN", units.UnitVolts),
		peak(PeakVOut, "PEAK_VOUT", units.UnitVolts),
		PMONControlCommand,
		PMONConfigCommand,
		pmbus.NewCommand(mfr(AlertConfig, "ALERT1_CONFIG", pmbus.OpReadWord, pmbus.OpWriteWord), 2,
			commands.Flags(15,
				"", "", "", "",
				"HysteresisHigh", "HysteresisLow", "", "",
				"VInOVWarning", "VInUVWarning", "VOutOVWarning", "VOutUVWarning",
				"IOutOCWarning", "OTWarning", "PInOPWarning", "FETHealth")...),
		peak(PeakPIn, "PEAK_PIN", units.UnitWatts),
		pmbus.NewCommand(mfr(ReadPInExt, "READ_PIN_EXT", pmbus.OpReadBlock, pmbus.OpIllegal), 3,
			pmbus.Field{Name: "Power", Width: 24, Kind: pmbus.KindInteger}),
		pmbus.NewCommand(mfr(ReadEInExt, "READ_EIN_EXT", pmbus.OpReadBlock, pmbus.OpIllegal), 8,
			pmbus.Field{Name: "SampleCount", Pos: 40, Width: 24, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "Rollover", Pos: 24, Width: 16, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "Energy", Pos: 0, Width: 24, Kind: pmbus.KindInteger},
		),
		pmbus.NewCommand(mfr(HysteresisLow, "HYSTERESIS_LOW", pmbus.OpReadWord, pmbus.OpWriteWord), 2,
			pmbus.Field{Name: "Threshold", Width: 16, Kind: pmbus.KindInteger}),
		pmbus.NewCommand(mfr(HysteresisHigh, "HYSTERESIS_HIGH", pmbus.OpReadWord, pmbus.OpWriteWord), 2,
			pmbus.Field{Name: "Threshold", Width: 16, Kind: pmbus.KindInteger}),
		pmbus.NewCommand(mfr(StartupIOutLimit, "STRT_UP_IOUT_LIM", pmbus.OpReadWord, pmbus.OpWriteWord), 2,
			pmbus.Field{Name: "Limit", Width: 10, Kind: pmbus.KindInteger}),
	)
	return t
}

// VoltageRange selects the input voltage scale (PMON_CONFIG bit 5).
type VoltageRange uint8

const (
	Range60V VoltageRange = iota
	Range100V
)

// SenseRange selects the full-scale current sense voltage.
type SenseRange uint8

const (
	Sense30mV SenseRange = iota
	Sense15mV
)

// Config describes how a particular ADM1272 is strapped.
type Config struct {
	Voltage VoltageRange
	Sense   SenseRange
	// RSense is the sense resistor in milliohms.
	RSense float64
}

// DefaultConfig is the 100 V, 30 mV range with a 1 mOhm sense resistor.
var DefaultConfig = Config{Voltage: Range100V, Sense: Sense30mV, RSense: 1}

// ConfigFromPMON derives the voltage range from a PMON_CONFIG word.
func ConfigFromPMON(pmon uint16, sense SenseRange, rsense float64) Config {
	c := Config{Voltage: Range60V, Sense: sense, RSense: rsense}
	if pmon&(1<<5) != 0 {
		c.Voltage = Range100V
	}
	return c
}

// Coefficients returns DIRECT coefficients for a field, chosen by its unit.
// It satisfies pmbus.CoefficientsFunc.
func (c Config) Coefficients(code uint8, f *pmbus.Field) (codec.Coefficients, error) {
	vscale := 1.0
	if c.Voltage == Range60V {
		vscale = 6770.0 / 4062.0
	}
	iscale := 1.0
	if c.Sense == Sense15mV {
		iscale = 2
	}
	rsense := c.RSense
	if rsense <= 0 {
		rsense = 1
	}

	switch f.Unit {
	case units.UnitVolts:
		return codec.Coefficients{M: int32(4062*vscale + 0.5), B: 0, R: -2}, nil
	case units.UnitAmperes:
		return codec.Coefficients{M: int32(663*iscale*rsense + 0.5), B: 20480, R: -1}, nil
	case units.UnitWatts:
		return codec.Coefficients{M: int32(10535*vscale*iscale*rsense + 0.5), B: 0, R: -3}, nil
	case units.UnitCelsius:
		return codec.Coefficients{M: 42, B: 31871, R: -1}, nil
	}
	return codec.Coefficients{}, fmt.Errorf("adm1272: no coefficients for 0x%02X field %s: %w",
		code, f.Name, pmbus.ErrNoContext)
}
