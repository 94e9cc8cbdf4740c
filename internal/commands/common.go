// Package commands holds the data definitions of the standard PMBus
// commands. Device packages under this directory override or extend them.
package commands

import (
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// Common is the standard definition of every command with a fixed-size
// payload. Block commands and send-byte commands have no entry.
var Common = buildCommon()

// Standard definitions referenced directly by typed views and devices.
var (
	Operation = pmbus.Define(pmbus.CmdOperation, 1,
		Enum("OnOffState", 7, 1,
			Named("Off", 0),
			Named("On", 1),
		),
		Enum("TurnOffBehavior", 6, 1,
			Named("UseTOffDelay", 0),
			Named("TurnOffImmediately", 1),
		),
		Enum("VoltageCommandSource", 4, 2,
			Named("VOUT_COMMAND", 0),
			Named("VOUT_MARGIN_LOW", 1),
			Named("VOUT_MARGIN_HIGH", 2),
			Named("AVS_VOUT_COMMAND", 3),
		),
		Enum("MarginFaultResponse", 2, 2,
			Named("IgnoreFault", 1),
			Named("ActOnFault", 2),
		),
		Enum("TransitionControl", 1, 1,
			Named("Immediate", 0),
			Named("UseTransitionRate", 1),
		),
	)

	VOutMode = pmbus.Define(pmbus.CmdVOutMode, 1,
		pmbus.Field{Name: "Relative", Pos: 7, Width: 1, Kind: pmbus.KindBoolean},
		Enum("Mode", 5, 2,
			Named("ULINEAR16", 0),
			Named("VID", 1),
			Named("Direct", 2),
			Named("IEEE754Half", 3),
		),
		pmbus.Field{Name: "Parameter", Pos: 0, Width: 5, Kind: pmbus.KindSigned},
	)

	VOutCommand = vout(pmbus.CmdVOutCommand)

	StatusWord = pmbus.Define(pmbus.CmdStatusWord, 2, append(
		Flags(15,
			"VOut", "IOutPOut", "Input", "MfrSpecific",
			"PowerGoodNegated", "Fans", "Other", "Unknown"),
		statusByteFlags()...,
	)...)

	Capability = pmbus.Define(pmbus.CmdCapability, 1,
		pmbus.Field{Name: "PacketErrorChecking", Pos: 7, Width: 1, Kind: pmbus.KindBoolean},
		Enum("MaximumBusSpeed", 5, 2,
			Named("Max100KHz", 0),
			Named("Max400KHz", 1),
			Named("Max1MHz", 2),
		),
		pmbus.Field{Name: "SMBAlert", Pos: 4, Width: 1, Kind: pmbus.KindBoolean},
		Enum("NumericFormat", 3, 1,
			Named("LinearOrDirect", 0),
			Named("IEEE754Half", 1),
		),
		pmbus.Field{Name: "AVSBus", Pos: 2, Width: 1, Kind: pmbus.KindBoolean},
	)
)

func statusByteFlags() []pmbus.Field {
	return Flags(7,
		"Busy", "Off", "VOutOVFault", "IOutOCFault",
		"VInUVFault", "TemperatureFault", "CMLFault", "NoneOfTheAbove")
}

func buildCommon() *pmbus.Table {
	t := &pmbus.Table{}

	t.Register(
		pmbus.Define(pmbus.CmdPage, 1, pmbus.Field{Name: "Page", Width: 8, Kind: pmbus.KindInteger}),
		Operation,
		pmbus.Define(pmbus.CmdOnOffConfig, 1,
			Enum("PowerUp", 4, 1,
				Named("AlwaysRun", 0),
				Named("RequireControl", 1),
			),
			pmbus.Field{Name: "OperationControl", Pos: 3, Width: 1, Kind: pmbus.KindBoolean},
			pmbus.Field{Name: "ControlPinEnable", Pos: 2, Width: 1, Kind: pmbus.KindBoolean},
			Enum("ControlPinPolarity", 1, 1,
				Named("ActiveLow", 0),
				Named("ActiveHigh", 1),
			),
			Enum("TurnOffAction", 0, 1,
				Named("UseTOffDelay", 0),
				Named("TurnOffImmediately", 1),
			),
		),
		pmbus.Define(pmbus.CmdPhase, 1, pmbus.Field{Name: "Phase", Width: 8, Kind: pmbus.KindInteger}),
		pmbus.Define(pmbus.CmdZoneConfig, 2,
			pmbus.Field{Name: "ReadZone", Pos: 8, Width: 8, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "WriteZone", Pos: 0, Width: 8, Kind: pmbus.KindInteger},
		),
		pmbus.Define(pmbus.CmdZoneActive, 2,
			pmbus.Field{Name: "ActiveReadZone", Pos: 8, Width: 8, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "ActiveWriteZone", Pos: 0, Width: 8, Kind: pmbus.KindInteger},
		),
		pmbus.Define(pmbus.CmdWriteProtect, 1,
			Enum("WriteProtect", 0, 8,
				Named("EnableAllWrites", 0x00),
				Named("DisableAllButWriteProtectOperationPageOnOff", 0x20),
				Named("DisableAllButWriteProtectOperationPage", 0x40),
				Named("DisableAllButWriteProtect", 0x80),
			),
		),
		pmbus.Define(pmbus.CmdStoreDefaultCode, 1, pmbus.Field{Name: "Code", Width: 8, Kind: pmbus.KindInteger}),
		pmbus.Define(pmbus.CmdRestoreDefaultCode, 1, pmbus.Field{Name: "Code", Width: 8, Kind: pmbus.KindInteger}),
		pmbus.Define(pmbus.CmdStoreUserCode, 1, pmbus.Field{Name: "Code", Width: 8, Kind: pmbus.KindInteger}),
		pmbus.Define(pmbus.CmdRestoreUserCode, 1, pmbus.Field{Name: "Code", Width: 8, Kind: pmbus.KindInteger}),
		Capability,
		VOutMode,
		VOutCommand,
		vout(pmbus.CmdVOutTrim),
		vout(pmbus.CmdVOutCalOffset),
		vout(pmbus.CmdVOutMax),
		vout(pmbus.CmdVOutMarginHigh),
		vout(pmbus.CmdVOutMarginLow),
		linear(pmbus.CmdVOutTransitionRate, units.None),
		linear(pmbus.CmdVOutDroop, units.None),
		linear(pmbus.CmdVOutScaleLoop, units.None),
		linear(pmbus.CmdVOutScaleMonitor, units.None),
		vout(pmbus.CmdVOutMin),
		linear(pmbus.CmdPOutMax, units.UnitWatts),
		linear(pmbus.CmdMaxDuty, units.UnitPercent),
		linear(pmbus.CmdFrequencySwitch, units.UnitKilohertz),
		pmbus.Define(pmbus.CmdPowerMode, 1, pmbus.Field{Name: "Mode", Width: 8, Kind: pmbus.KindInteger}),
		linear(pmbus.CmdVInOn, units.UnitVolts),
		linear(pmbus.CmdVInOff, units.UnitVolts),
		pmbus.Define(pmbus.CmdInterleave, 2,
			pmbus.Field{Name: "GroupID", Pos: 8, Width: 4, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "NumberInGroup", Pos: 4, Width: 4, Kind: pmbus.KindInteger},
			pmbus.Field{Name: "InterleaveOrder", Pos: 0, Width: 4, Kind: pmbus.KindInteger},
		),
		linear(pmbus.CmdIOutCalGain, units.None),
		linear(pmbus.CmdIOutCalOffset, units.UnitAmperes),
		fanConfig(pmbus.CmdFanConfig12, "Fan1", "Fan2"),
		linear(pmbus.CmdFanCommand1, units.None),
		linear(pmbus.CmdFanCommand2, units.None),
		fanConfig(pmbus.CmdFanConfig34, "Fan3", "Fan4"),
		linear(pmbus.CmdFanCommand3, units.None),
		linear(pmbus.CmdFanCommand4, units.None),

		vout(pmbus.CmdVOutOVFaultLimit),
		faultResponse(pmbus.CmdVOutOVFaultResponse),
		vout(pmbus.CmdVOutOVWarnLimit),
		vout(pmbus.CmdVOutUVWarnLimit),
		vout(pmbus.CmdVOutUVFaultLimit),
		faultResponse(pmbus.CmdVOutUVFaultResponse),
		linear(pmbus.CmdIOutOCFaultLimit, units.UnitAmperes),
		faultResponse(pmbus.CmdIOutOCFaultResponse),
		linear(pmbus.CmdIOutOCLVFaultLimit, units.UnitVolts),
		faultResponse(pmbus.CmdIOutOCLVFaultResponse),
		linear(pmbus.CmdIOutOCWarnLimit, units.UnitAmperes),
		linear(pmbus.CmdIOutUCFaultLimit, units.UnitAmperes),
		faultResponse(pmbus.CmdIOutUCFaultResponse),
		linear(pmbus.CmdOTFaultLimit, units.UnitCelsius),
		faultResponse(pmbus.CmdOTFaultResponse),
		linear(pmbus.CmdOTWarnLimit, units.UnitCelsius),
		linear(pmbus.CmdUTWarnLimit, units.UnitCelsius),
		linear(pmbus.CmdUTFaultLimit, units.UnitCelsius),
		faultResponse(pmbus.CmdUTFaultResponse),
		linear(pmbus.CmdVInOVFaultLimit, units.UnitVolts),
		faultResponse(pmbus.CmdVInOVFaultResponse),
		linear(pmbus.CmdVInOVWarnLimit, units.UnitVolts),
		linear(pmbus.CmdVInUVWarnLimit, units.UnitVolts),
		linear(pmbus.CmdVInUVFaultLimit, units.UnitVolts),
		faultResponse(pmbus.CmdVInUVFaultResponse),
		linear(pmbus.CmdIInOCFaultLimit, units.UnitAmperes),
		faultResponse(pmbus.CmdIInOCFaultResponse),
		linear(pmbus.CmdIInOCWarnLimit, units.UnitAmperes),
		vout(pmbus.CmdPowerGoodOn),
		vout(pmbus.CmdPowerGoodOff),
		linear(pmbus.CmdTOnDelay, units.UnitMilliseconds),
		linear(pmbus.CmdTOnRise, units.UnitMilliseconds),
		linear(pmbus.CmdTOnMaxFaultLimit, units.UnitMilliseconds),
		faultResponse(pmbus.CmdTOnMaxFaultResponse),
		linear(pmbus.CmdTOffDelay, units.UnitMilliseconds),
		linear(pmbus.CmdTOffFall, units.UnitMilliseconds),
		linear(pmbus.CmdTOffMaxWarnLimit, units.UnitMilliseconds),
		linear(pmbus.CmdPOutOPFaultLimit, units.UnitWatts),
		faultResponse(pmbus.CmdPOutOPFaultResponse),
		linear(pmbus.CmdPOutOPWarnLimit, units.UnitWatts),
		linear(pmbus.CmdPInOPWarnLimit, units.UnitWatts),

		pmbus.Define(pmbus.CmdStatusByte, 1, statusByteFlags()...),
		StatusWord,
		status(pmbus.CmdStatusVOut,
			"VOutOVFault", "VOutOVWarning", "VOutUVWarning", "VOutUVFault",
			"VOutMaxMinWarning", "TOnMaxFault", "TOffMaxWarning", "VOutTrackingError"),
		status(pmbus.CmdStatusIOut,
			"IOutOCFault", "IOutOCLVFault", "IOutOCWarning", "IOutUCFault",
			"CurrentShareFault", "PowerLimitMode", "POutOPFault", "POutOPWarning"),
		status(pmbus.CmdStatusInput,
			"VInOVFault", "VInOVWarning", "VInUVWarning", "VInUVFault",
			"UnitOffLowVIn", "IInOCFault", "IInOCWarning", "PInOPWarning"),
		status(pmbus.CmdStatusTemperature,
			"OTFault", "OTWarning", "UTWarning", "UTFault"),
		status(pmbus.CmdStatusCml,
			"InvalidCommand", "InvalidData", "PECFailed", "MemoryFault",
			"ProcessorFault", "", "OtherCommunicationFault", "OtherMemoryFault"),
		status(pmbus.CmdStatusOther,
			"", "", "InputAFuseFault", "InputBFuseFault",
			"InputAORingFault", "InputBORingFault", "OutputORingFault", "FirstToAssertSMBAlert"),
		integer(pmbus.CmdStatusMfrSpecific, 1),
		status(pmbus.CmdStatusFans12,
			"Fan1Fault", "Fan2Fault", "Fan1Warning", "Fan2Warning",
			"Fan1SpeedOverridden", "Fan2SpeedOverridden", "AirflowFault", "AirflowWarning"),
		status(pmbus.CmdStatusFans34,
			"Fan3Fault", "Fan4Fault", "Fan3Warning", "Fan4Warning",
			"Fan3SpeedOverridden", "Fan4SpeedOverridden"),

		integer(pmbus.CmdReadKWhIn, 4),
		integer(pmbus.CmdReadKWhOut, 4),
		integer(pmbus.CmdReadKWhConfig, 2),
		linear(pmbus.CmdReadVIn, units.UnitVolts),
		linear(pmbus.CmdReadIIn, units.UnitAmperes),
		linear(pmbus.CmdReadVCap, units.UnitVolts),
		vout(pmbus.CmdReadVOut),
		linear(pmbus.CmdReadIOut, units.UnitAmperes),
		linear(pmbus.CmdReadTemperature1, units.UnitCelsius),
		linear(pmbus.CmdReadTemperature2, units.UnitCelsius),
		linear(pmbus.CmdReadTemperature3, units.UnitCelsius),
		linear(pmbus.CmdReadFanSpeed1, units.UnitRPM),
		linear(pmbus.CmdReadFanSpeed2, units.UnitRPM),
		linear(pmbus.CmdReadFanSpeed3, units.UnitRPM),
		linear(pmbus.CmdReadFanSpeed4, units.UnitRPM),
		linear(pmbus.CmdReadDutyCycle, units.UnitPercent),
		linear(pmbus.CmdReadFrequency, units.UnitKilohertz),
		linear(pmbus.CmdReadPOut, units.UnitWatts),
		linear(pmbus.CmdReadPIn, units.UnitWatts),
		pmbus.Define(pmbus.CmdPMBusRevision, 1,
			Enum("Part1Revision", 4, 4, revisions()...),
			Enum("Part2Revision", 0, 4, revisions()...),
		),

		linear(pmbus.CmdMfrVInMin, units.UnitVolts),
		linear(pmbus.CmdMfrVInMax, units.UnitVolts),
		linear(pmbus.CmdMfrIInMax, units.UnitAmperes),
		linear(pmbus.CmdMfrPInMax, units.UnitWatts),
		vout(pmbus.CmdMfrVOutMin),
		vout(pmbus.CmdMfrVOutMax),
		linear(pmbus.CmdMfrIOutMax, units.UnitAmperes),
		linear(pmbus.CmdMfrPOutMax, units.UnitWatts),
		linear(pmbus.CmdMfrTambientMax, units.UnitCelsius),
		linear(pmbus.CmdMfrTambientMin, units.UnitCelsius),
		pmbus.Define(pmbus.CmdMfrPInAccuracy, 1,
			pmbus.Field{Name: "Accuracy", Width: 8, Kind: pmbus.KindScaled, Scale: 0.1, Unit: units.UnitPercent},
		),
		linear(pmbus.CmdMfrMaxTemp1, units.UnitCelsius),
		linear(pmbus.CmdMfrMaxTemp2, units.UnitCelsius),
		linear(pmbus.CmdMfrMaxTemp3, units.UnitCelsius),
	)

	return t
}

func fanConfig(code pmbus.CommandCode, a, b string) *pmbus.Command {
	fan := func(name string, msb pmbus.Bitpos) []pmbus.Field {
		return []pmbus.Field{
			{Name: name + "Installed", Pos: msb, Width: 1, Kind: pmbus.KindBoolean},
			Enum(name+"Units", msb-1, 1,
				Named("DutyCycle", 0),
				Named("RPM", 1),
			),
			Enum(name+"PulsesPerRevolution", msb-3, 2,
				Named("One", 0),
				Named("Two", 1),
				Named("Three", 2),
				Named("Four", 3),
			),
		}
	}
	return pmbus.Define(code, 1, append(fan(a, 7), fan(b, 3)...)...)
}

func revisions() []pmbus.Sentinel {
	return []pmbus.Sentinel{
		Named("Revision_1_0", 0),
		Named("Revision_1_1", 1),
		Named("Revision_1_2", 2),
		Named("Revision_1_3", 3),
		Named("Revision_1_4", 4),
	}
}
