package pmbus

// PMBus command codes (PMBus 1.3.1 Part II, Table 31).

import (
	"fmt"
	"strings"
)

// CommandCode is a one-byte PMBus command code.
type CommandCode uint8

const (
	CmdPage                  CommandCode = 0x00
	CmdOperation             CommandCode = 0x01
	CmdOnOffConfig           CommandCode = 0x02
	CmdClearFaults           CommandCode = 0x03
	CmdPhase                 CommandCode = 0x04
	CmdPagePlusWrite         CommandCode = 0x05
	CmdPagePlusRead          CommandCode = 0x06
	CmdZoneConfig            CommandCode = 0x07
	CmdZoneActive            CommandCode = 0x08
	CmdWriteProtect          CommandCode = 0x10
	CmdStoreDefaultAll       CommandCode = 0x11
	CmdRestoreDefaultAll     CommandCode = 0x12
	CmdStoreDefaultCode      CommandCode = 0x13
	CmdRestoreDefaultCode    CommandCode = 0x14
	CmdStoreUserAll          CommandCode = 0x15
	CmdRestoreUserAll        CommandCode = 0x16
	CmdStoreUserCode         CommandCode = 0x17
	CmdRestoreUserCode       CommandCode = 0x18
	CmdCapability            CommandCode = 0x19
	CmdQuery                 CommandCode = 0x1A
	CmdSMBAlertMask          CommandCode = 0x1B
	CmdVOutMode              CommandCode = 0x20
	CmdVOutCommand           CommandCode = 0x21
	CmdVOutTrim              CommandCode = 0x22
	CmdVOutCalOffset         CommandCode = 0x23
	CmdVOutMax               CommandCode = 0x24
	CmdVOutMarginHigh        CommandCode = 0x25
	CmdVOutMarginLow         CommandCode = 0x26
	CmdVOutTransitionRate    CommandCode = 0x27
	CmdVOutDroop             CommandCode = 0x28
	CmdVOutScaleLoop         CommandCode = 0x29
	CmdVOutScaleMonitor      CommandCode = 0x2A
	CmdVOutMin               CommandCode = 0x2B
	CmdCoefficients          CommandCode = 0x30
	CmdPOutMax               CommandCode = 0x31
	CmdMaxDuty               CommandCode = 0x32
	CmdFrequencySwitch       CommandCode = 0x33
	CmdPowerMode             CommandCode = 0x34
	CmdVInOn                 CommandCode = 0x35
	CmdVInOff                CommandCode = 0x36
	CmdInterleave            CommandCode = 0x37
	CmdIOutCalGain           CommandCode = 0x38
	CmdIOutCalOffset         CommandCode = 0x39
	CmdFanConfig12           CommandCode = 0x3A
	CmdFanCommand1           CommandCode = 0x3B
	CmdFanCommand2           CommandCode = 0x3C
	CmdFanConfig34           CommandCode = 0x3D
	CmdFanCommand3           CommandCode = 0x3E
	CmdFanCommand4           CommandCode = 0x3F
	CmdVOutOVFaultLimit      CommandCode = 0x40
	CmdVOutOVFaultResponse   CommandCode = 0x41
	CmdVOutOVWarnLimit       CommandCode = 0x42
	CmdVOutUVWarnLimit       CommandCode = 0x43
	CmdVOutUVFaultLimit      CommandCode = 0x44
	CmdVOutUVFaultResponse   CommandCode = 0x45
	CmdIOutOCFaultLimit      CommandCode = 0x46
	CmdIOutOCFaultResponse   CommandCode = 0x47
	CmdIOutOCLVFaultLimit    CommandCode = 0x48
	CmdIOutOCLVFaultResponse CommandCode = 0x49
	CmdIOutOCWarnLimit       CommandCode = 0x4A
	CmdIOutUCFaultLimit      CommandCode = 0x4B
	CmdIOutUCFaultResponse   CommandCode = 0x4C
	CmdOTFaultLimit          CommandCode = 0x4F
	CmdOTFaultResponse       CommandCode = 0x50
	CmdOTWarnLimit           CommandCode = 0x51
	CmdUTWarnLimit           CommandCode = 0x52
	CmdUTFaultLimit          CommandCode = 0x53
	CmdUTFaultResponse       CommandCode = 0x54
	CmdVInOVFaultLimit       CommandCode = 0x55
	CmdVInOVFaultResponse    CommandCode = 0x56
	CmdVInOVWarnLimit        CommandCode = 0x57
	CmdVInUVWarnLimit        CommandCode = 0x58
	CmdVInUVFaultLimit       CommandCode = 0x59
	CmdVInUVFaultResponse    CommandCode = 0x5A
	CmdIInOCFaultLimit       CommandCode = 0x5B
	CmdIInOCFaultResponse    CommandCode = 0x5C
	CmdIInOCWarnLimit        CommandCode = 0x5D
	CmdPowerGoodOn           CommandCode = 0x5E
	CmdPowerGoodOff          CommandCode = 0x5F
	CmdTOnDelay              CommandCode = 0x60
	CmdTOnRise               CommandCode = 0x61
	CmdTOnMaxFaultLimit      CommandCode = 0x62
	CmdTOnMaxFaultResponse   CommandCode = 0x63
	CmdTOffDelay             CommandCode = 0x64
	CmdTOffFall              CommandCode = 0x65
	CmdTOffMaxWarnLimit      CommandCode = 0x66
	CmdDeprecated            CommandCode = 0x67
	CmdPOutOPFaultLimit      CommandCode = 0x68
	CmdPOutOPFaultResponse   CommandCode = 0x69
	CmdPOutOPWarnLimit       CommandCode = 0x6A
	CmdPInOPWarnLimit        CommandCode = 0x6B
	CmdStatusByte            CommandCode = 0x78
	CmdStatusWord            CommandCode = 0x79
	CmdStatusVOut            CommandCode = 0x7A
	CmdStatusIOut            CommandCode = 0x7B
	CmdStatusInput           CommandCode = 0x7C
	CmdStatusTemperature     CommandCode = 0x7D
	CmdStatusCml             CommandCode = 0x7E
	CmdStatusOther           CommandCode = 0x7F
	CmdStatusMfrSpecific     CommandCode = 0x80
	CmdStatusFans12          CommandCode = 0x81
	CmdStatusFans34          CommandCode = 0x82
	CmdReadKWhIn             CommandCode = 0x83
	CmdReadKWhOut            CommandCode = 0x84
	CmdReadKWhConfig         CommandCode = 0x85
	CmdReadEIn               CommandCode = 0x86
	CmdReadEOut              CommandCode = 0x87
	CmdReadVIn               CommandCode = 0x88
	CmdReadIIn               CommandCode = 0x89
	CmdReadVCap              CommandCode = 0x8A
	CmdReadVOut              CommandCode = 0x8B
	CmdReadIOut              CommandCode = 0x8C
	CmdReadTemperature1      CommandCode = 0x8D
	CmdReadTemperature2      CommandCode = 0x8E
	CmdReadTemperature3      CommandCode = 0x8F
	CmdReadFanSpeed1         CommandCode = 0x90
	CmdReadFanSpeed2         CommandCode = 0x91
	CmdReadFanSpeed3         CommandCode = 0x92
	CmdReadFanSpeed4         CommandCode = 0x93
	CmdReadDutyCycle         CommandCode = 0x94
	CmdReadFrequency         CommandCode = 0x95
	CmdReadPOut              CommandCode = 0x96
	CmdReadPIn               CommandCode = 0x97
	CmdPMBusRevision         CommandCode = 0x98
	CmdMfrID                 CommandCode = 0x99
	CmdMfrModel              CommandCode = 0x9A
	CmdMfrRevision           CommandCode = 0x9B
	CmdMfrLocation           CommandCode = 0x9C
	CmdMfrDate               CommandCode = 0x9D
	CmdMfrSerial             CommandCode = 0x9E
	CmdAppProfileSupport     CommandCode = 0x9F
	CmdMfrVInMin             CommandCode = 0xA0
	CmdMfrVInMax             CommandCode = 0xA1
	CmdMfrIInMax             CommandCode = 0xA2
	CmdMfrPInMax             CommandCode = 0xA3
	CmdMfrVOutMin            CommandCode = 0xA4
	CmdMfrVOutMax            CommandCode = 0xA5
	CmdMfrIOutMax            CommandCode = 0xA6
	CmdMfrPOutMax            CommandCode = 0xA7
	CmdMfrTambientMax        CommandCode = 0xA8
	CmdMfrTambientMin        CommandCode = 0xA9
	CmdMfrEfficiencyLL       CommandCode = 0xAA
	CmdMfrEfficiencyHL       CommandCode = 0xAB
	CmdMfrPInAccuracy        CommandCode = 0xAC
	CmdICDeviceID            CommandCode = 0xAD
	CmdICDeviceRev           CommandCode = 0xAE
	CmdUserData00            CommandCode = 0xB0
	CmdUserData01            CommandCode = 0xB1
	CmdUserData02            CommandCode = 0xB2
	CmdUserData03            CommandCode = 0xB3
	CmdUserData04            CommandCode = 0xB4
	CmdUserData05            CommandCode = 0xB5
	CmdUserData06            CommandCode = 0xB6
	CmdUserData07            CommandCode = 0xB7
	CmdUserData08            CommandCode = 0xB8
	CmdUserData09            CommandCode = 0xB9
	CmdUserData10            CommandCode = 0xBA
	CmdUserData11            CommandCode = 0xBB
	CmdUserData12            CommandCode = 0xBC
	CmdUserData13            CommandCode = 0xBD
	CmdUserData14            CommandCode = 0xBE
	CmdUserData15            CommandCode = 0xBF
	CmdMfrMaxTemp1           CommandCode = 0xC0
	CmdMfrMaxTemp2           CommandCode = 0xC1
	CmdMfrMaxTemp3           CommandCode = 0xC2
	CmdMfrSpecificC4         CommandCode = 0xC4
	CmdMfrSpecificC5         CommandCode = 0xC5
	CmdMfrSpecificC6         CommandCode = 0xC6
	CmdMfrSpecificC7         CommandCode = 0xC7
	CmdMfrSpecificC8         CommandCode = 0xC8
	CmdMfrSpecificC9         CommandCode = 0xC9
	CmdMfrSpecificCA         CommandCode = 0xCA
	CmdMfrSpecificCB         CommandCode = 0xCB
	CmdMfrSpecificCC         CommandCode = 0xCC
	CmdMfrSpecificCD         CommandCode = 0xCD
	CmdMfrSpecificCE         CommandCode = 0xCE
	CmdMfrSpecificCF         CommandCode = 0xCF
	CmdMfrSpecificD0         CommandCode = 0xD0
	CmdMfrSpecificD1         CommandCode = 0xD1
	CmdMfrSpecificD2         CommandCode = 0xD2
	CmdMfrSpecificD3         CommandCode = 0xD3
	CmdMfrSpecificD4         CommandCode = 0xD4
	CmdMfrSpecificD5         CommandCode = 0xD5
	CmdMfrSpecificD6         CommandCode = 0xD6
	CmdMfrSpecificD7         CommandCode = 0xD7
	CmdMfrSpecificD8         CommandCode = 0xD8
	CmdMfrSpecificD9         CommandCode = 0xD9
	CmdMfrSpecificDA         CommandCode = 0xDA
	CmdMfrSpecificDB         CommandCode = 0xDB
	CmdMfrSpecificDC         CommandCode = 0xDC
	CmdMfrSpecificDD         CommandCode = 0xDD
	CmdMfrSpecificDE         CommandCode = 0xDE
	CmdMfrSpecificDF         CommandCode = 0xDF
	CmdMfrSpecificE0         CommandCode = 0xE0
	CmdMfrSpecificE1         CommandCode = 0xE1
	CmdMfrSpecificE2         CommandCode = 0xE2
	CmdMfrSpecificE3         CommandCode = 0xE3
	CmdMfrSpecificE4         CommandCode = 0xE4
	CmdMfrSpecificE5         CommandCode = 0xE5
	CmdMfrSpecificE6         CommandCode = 0xE6
	CmdMfrSpecificE7         CommandCode = 0xE7
	CmdMfrSpecificE8         CommandCode = 0xE8
	CmdMfrSpecificE9         CommandCode = 0xE9
	CmdMfrSpecificEA         CommandCode = 0xEA
	CmdMfrSpecificEB         CommandCode = 0xEB
	CmdMfrSpecificEC         CommandCode = 0xEC
	CmdMfrSpecificED         CommandCode = 0xED
	CmdMfrSpecificEE         CommandCode = 0xEE
	CmdMfrSpecificEF         CommandCode = 0xEF
	CmdMfrSpecificF0         CommandCode = 0xF0
	CmdMfrSpecificF1         CommandCode = 0xF1
	CmdMfrSpecificF2         CommandCode = 0xF2
	CmdMfrSpecificF3         CommandCode = 0xF3
	CmdMfrSpecificF4         CommandCode = 0xF4
	CmdMfrSpecificF5         CommandCode = 0xF5
	CmdMfrSpecificF6         CommandCode = 0xF6
	CmdMfrSpecificF7         CommandCode = 0xF7
	CmdMfrSpecificF8         CommandCode = 0xF8
	CmdMfrSpecificF9         CommandCode = 0xF9
	CmdMfrSpecificFA         CommandCode = 0xFA
	CmdMfrSpecificFB         CommandCode = 0xFB
	CmdMfrSpecificFC         CommandCode = 0xFC
	CmdMfrSpecificFD         CommandCode = 0xFD
	CmdMfrSpecificCommandExt CommandCode = 0xFE
	CmdPMBusCommandExt       CommandCode = 0xFF
)

type codeInfo struct {
	name  string
	write Operation
	read  Operation
}

// codeTable is indexed by command code. Codes the standard leaves unassigned
// have a zero entry and report as RESERVED with unknown operations.
var codeTable = [256]codeInfo{
	0x00: {"PAGE", OpWriteByte, OpReadByte},
	0x01: {"OPERATION", OpWriteByte, OpReadByte},
	0x02: {"ON_OFF_CONFIG", OpWriteByte, OpReadByte},
	0x03: {"CLEAR_FAULTS", OpSendByte, OpIllegal},
	0x04: {"PHASE", OpWriteByte, OpReadByte},
	0x05: {"PAGE_PLUS_WRITE", OpWriteBlock, OpIllegal},
	0x06: {"PAGE_PLUS_READ", OpIllegal, OpProcessCall},
	0x07: {"ZONE_CONFIG", OpWriteWord, OpReadWord},
	0x08: {"ZONE_ACTIVE", OpWriteWord, OpReadWord},
	0x10: {"WRITE_PROTECT", OpWriteByte, OpReadByte},
	0x11: {"STORE_DEFAULT_ALL", OpSendByte, OpIllegal},
	0x12: {"RESTORE_DEFAULT_ALL", OpSendByte, OpIllegal},
	0x13: {"STORE_DEFAULT_CODE", OpWriteByte, OpIllegal},
	0x14: {"RESTORE_DEFAULT_CODE", OpWriteByte, OpIllegal},
	0x15: {"STORE_USER_ALL", OpSendByte, OpIllegal},
	0x16: {"RESTORE_USER_ALL", OpSendByte, OpIllegal},
	0x17: {"STORE_USER_CODE", OpWriteByte, OpIllegal},
	0x18: {"RESTORE_USER_CODE", OpWriteByte, OpIllegal},
	0x19: {"CAPABILITY", OpIllegal, OpReadByte},
	0x1A: {"QUERY", OpIllegal, OpProcessCall},
	0x1B: {"SMBALERT_MASK", OpWriteWord, OpProcessCall},
	0x20: {"VOUT_MODE", OpWriteByte, OpReadByte},
	0x21: {"VOUT_COMMAND", OpWriteWord, OpReadWord},
	0x22: {"VOUT_TRIM", OpWriteWord, OpReadWord},
	0x23: {"VOUT_CAL_OFFSET", OpWriteWord, OpReadWord},
	0x24: {"VOUT_MAX", OpWriteWord, OpReadWord},
	0x25: {"VOUT_MARGIN_HIGH", OpWriteWord, OpReadWord},
	0x26: {"VOUT_MARGIN_LOW", OpWriteWord, OpReadWord},
	0x27: {"VOUT_TRANSITION_RATE", OpWriteWord, OpReadWord},
	0x28: {"VOUT_DROOP", OpWriteWord, OpReadWord},
	0x29: {"VOUT_SCALE_LOOP", OpWriteWord, OpReadWord},
	0x2A: {"VOUT_SCALE_MONITOR", OpWriteWord, OpReadWord},
	0x2B: {"VOUT_MIN", OpWriteWord, OpReadWord},
	0x30: {"COEFFICIENTS", OpIllegal, OpProcessCall},
	0x31: {"POUT_MAX", OpWriteWord, OpReadWord},
	0x32: {"MAX_DUTY", OpWriteWord, OpReadWord},
	0x33: {"FREQUENCY_SWITCH", OpWriteWord, OpReadWord},
	0x34: {"POWER_MODE", OpWriteByte, OpReadByte},
	0x35: {"VIN_ON", OpWriteWord, OpReadWord},
	0x36: {"VIN_OFF", OpWriteWord, OpReadWord},
	0x37: {"INTERLEAVE", OpWriteWord, OpReadWord},
	0x38: {"IOUT_CAL_GAIN", OpWriteWord, OpReadWord},
	0x39: {"IOUT_CAL_OFFSET", OpWriteWord, OpReadWord},
	0x3A: {"FAN_CONFIG_1_2", OpWriteByte, OpReadByte},
	0x3B: {"FAN_COMMAND_1", OpWriteWord, OpReadWord},
	0x3C: {"FAN_COMMAND_2", OpWriteWord, OpReadWord},
	0x3D: {"FAN_CONFIG_3_4", OpWriteByte, OpReadByte},
	0x3E: {"FAN_COMMAND_3", OpWriteWord, OpReadWord},
	0x3F: {"FAN_COMMAND_4", OpWriteWord, OpReadWord},
	0x40: {"VOUT_OV_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x41: {"VOUT_OV_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x42: {"VOUT_OV_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x43: {"VOUT_UV_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x44: {"VOUT_UV_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x45: {"VOUT_UV_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x46: {"IOUT_OC_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x47: {"IOUT_OC_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x48: {"IOUT_OC_LV_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x49: {"IOUT_OC_LV_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x4A: {"IOUT_OC_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x4B: {"IOUT_UC_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x4C: {"IOUT_UC_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x4F: {"OT_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x50: {"OT_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x51: {"OT_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x52: {"UT_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x53: {"UT_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x54: {"UT_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x55: {"VIN_OV_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x56: {"VIN_OV_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x57: {"VIN_OV_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x58: {"VIN_UV_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x59: {"VIN_UV_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x5A: {"VIN_UV_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x5B: {"IIN_OC_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x5C: {"IIN_OC_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x5D: {"IIN_OC_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x5E: {"POWER_GOOD_ON", OpWriteWord, OpReadWord},
	0x5F: {"POWER_GOOD_OFF", OpWriteWord, OpReadWord},
	0x60: {"TON_DELAY", OpWriteWord, OpReadWord},
	0x61: {"TON_RISE", OpWriteWord, OpReadWord},
	0x62: {"TON_MAX_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x63: {"TON_MAX_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x64: {"TOFF_DELAY", OpWriteWord, OpReadWord},
	0x65: {"TOFF_FALL", OpWriteWord, OpReadWord},
	0x66: {"TOFF_MAX_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x67: {"DEPRECATED", OpUnknown, OpUnknown},
	0x68: {"POUT_OP_FAULT_LIMIT", OpWriteWord, OpReadWord},
	0x69: {"POUT_OP_FAULT_RESPONSE", OpWriteByte, OpReadByte},
	0x6A: {"POUT_OP_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x6B: {"PIN_OP_WARN_LIMIT", OpWriteWord, OpReadWord},
	0x78: {"STATUS_BYTE", OpWriteByte, OpReadByte},
	0x79: {"STATUS_WORD", OpWriteWord, OpReadWord},
	0x7A: {"STATUS_VOUT", OpWriteByte, OpReadByte},
	0x7B: {"STATUS_IOUT", OpWriteByte, OpReadByte},
	0x7C: {"STATUS_INPUT", OpWriteByte, OpReadByte},
	0x7D: {"STATUS_TEMPERATURE", OpWriteByte, OpReadByte},
	0x7E: {"STATUS_CML", OpWriteByte, OpReadByte},
	0x7F: {"STATUS_OTHER", OpWriteByte, OpReadByte},
	0x80: {"STATUS_MFR_SPECIFIC", OpWriteByte, OpReadByte},
	0x81: {"STATUS_FANS_1_2", OpWriteByte, OpReadByte},
	0x82: {"STATUS_FANS_3_4", OpWriteByte, OpReadByte},
	0x83: {"READ_KWH_IN", OpIllegal, OpReadWord32},
	0x84: {"READ_KWH_OUT", OpIllegal, OpReadWord32},
	0x85: {"READ_KWH_CONFIG", OpWriteWord, OpReadWord},
	0x86: {"READ_EIN", OpIllegal, OpReadBlock},
	0x87: {"READ_EOUT", OpIllegal, OpReadBlock},
	0x88: {"READ_VIN", OpIllegal, OpReadWord},
	0x89: {"READ_IIN", OpIllegal, OpReadWord},
	0x8A: {"READ_VCAP", OpIllegal, OpReadWord},
	0x8B: {"READ_VOUT", OpIllegal, OpReadWord},
	0x8C: {"READ_IOUT", OpIllegal, OpReadWord},
	0x8D: {"READ_TEMPERATURE_1", OpIllegal, OpReadWord},
	0x8E: {"READ_TEMPERATURE_2", OpIllegal, OpReadWord},
	0x8F: {"READ_TEMPERATURE_3", OpIllegal, OpReadWord},
	0x90: {"READ_FAN_SPEED_1", OpIllegal, OpReadWord},
	0x91: {"READ_FAN_SPEED_2", OpIllegal, OpReadWord},
	0x92: {"READ_FAN_SPEED_3", OpIllegal, OpReadWord},
	0x93: {"READ_FAN_SPEED_4", OpIllegal, OpReadWord},
	0x94: {"READ_DUTY_CYCLE", OpIllegal, OpReadWord},
	0x95: {"READ_FREQUENCY", OpIllegal, OpReadWord},
	0x96: {"READ_POUT", OpIllegal, OpReadWord},
	0x97: {"READ_PIN", OpIllegal, OpReadWord},
	0x98: {"PMBUS_REVISION", OpIllegal, OpReadByte},
	0x99: {"MFR_ID", OpWriteBlock, OpReadBlock},
	0x9A: {"MFR_MODEL", OpWriteBlock, OpReadBlock},
	0x9B: {"MFR_REVISION", OpWriteBlock, OpReadBlock},
	0x9C: {"MFR_LOCATION", OpWriteBlock, OpReadBlock},
	0x9D: {"MFR_DATE", OpWriteBlock, OpReadBlock},
	0x9E: {"MFR_SERIAL", OpWriteBlock, OpReadBlock},
	0x9F: {"APP_PROFILE_SUPPORT", OpIllegal, OpReadBlock},
	0xA0: {"MFR_VIN_MIN", OpIllegal, OpReadWord},
	0xA1: {"MFR_VIN_MAX", OpIllegal, OpReadWord},
	0xA2: {"MFR_IIN_MAX", OpIllegal, OpReadWord},
	0xA3: {"MFR_PIN_MAX", OpIllegal, OpReadWord},
	0xA4: {"MFR_VOUT_MIN", OpIllegal, OpReadWord},
	0xA5: {"MFR_VOUT_MAX", OpIllegal, OpReadWord},
	0xA6: {"MFR_IOUT_MAX", OpIllegal, OpReadWord},
	0xA7: {"MFR_POUT_MAX", OpIllegal, OpReadWord},
	0xA8: {"MFR_TAMBIENT_MAX", OpIllegal, OpReadWord},
	0xA9: {"MFR_TAMBIENT_MIN", OpIllegal, OpReadWord},
	0xAA: {"MFR_EFFICIENCY_LL", OpIllegal, OpReadBlock},
	0xAB: {"MFR_EFFICIENCY_HL", OpIllegal, OpReadBlock},
	0xAC: {"MFR_PIN_ACCURACY", OpIllegal, OpReadByte},
	0xAD: {"IC_DEVICE_ID", OpIllegal, OpReadBlock},
	0xAE: {"IC_DEVICE_REV", OpIllegal, OpReadBlock},
	0xB0: {"USER_DATA_00", OpWriteBlock, OpReadBlock},
	0xB1: {"USER_DATA_01", OpWriteBlock, OpReadBlock},
	0xB2: {"USER_DATA_02", OpWriteBlock, OpReadBlock},
	0xB3: {"USER_DATA_03", OpWriteBlock, OpReadBlock},
	0xB4: {"USER_DATA_04", OpWriteBlock, OpReadBlock},
	0xB5: {"USER_DATA_05", OpWriteBlock, OpReadBlock},
	0xB6: {"USER_DATA_06", OpWriteBlock, OpReadBlock},
	0xB7: {"USER_DATA_07", OpWriteBlock, OpReadBlock},
	0xB8: {"USER_DATA_08", OpWriteBlock, OpReadBlock},
	0xB9: {"USER_DATA_09", OpWriteBlock, OpReadBlock},
	0xBA: {"USER_DATA_10", OpWriteBlock, OpReadBlock},
	0xBB: {"USER_DATA_11", OpWriteBlock, OpReadBlock},
	0xBC: {"USER_DATA_12", OpWriteBlock, OpReadBlock},
	0xBD: {"USER_DATA_13", OpWriteBlock, OpReadBlock},
	0xBE: {"USER_DATA_14", OpWriteBlock, OpReadBlock},
	0xBF: {"USER_DATA_15", OpWriteBlock, OpReadBlock},
	0xC0: {"MFR_MAX_TEMP_1", OpWriteWord, OpReadWord},
	0xC1: {"MFR_MAX_TEMP_2", OpWriteWord, OpReadWord},
	0xC2: {"MFR_MAX_TEMP_3", OpWriteWord, OpReadWord},
	0xC4: {"MFR_SPECIFIC_C4", OpMfrDefined, OpMfrDefined},
	0xC5: {"MFR_SPECIFIC_C5", OpMfrDefined, OpMfrDefined},
	0xC6: {"MFR_SPECIFIC_C6", OpMfrDefined, OpMfrDefined},
	0xC7: {"MFR_SPECIFIC_C7", OpMfrDefined, OpMfrDefined},
	0xC8: {"MFR_SPECIFIC_C8", OpMfrDefined, OpMfrDefined},
	0xC9: {"MFR_SPECIFIC_C9", OpMfrDefined, OpMfrDefined},
	0xCA: {"MFR_SPECIFIC_CA", OpMfrDefined, OpMfrDefined},
	0xCB: {"MFR_SPECIFIC_CB", OpMfrDefined, OpMfrDefined},
	0xCC: {"MFR_SPECIFIC_CC", OpMfrDefined, OpMfrDefined},
	0xCD: {"MFR_SPECIFIC_CD", OpMfrDefined, OpMfrDefined},
	0xCE: {"MFR_SPECIFIC_CE", OpMfrDefined, OpMfrDefined},
	0xCF: {"MFR_SPECIFIC_CF", OpMfrDefined, OpMfrDefined},
	0xD0: {"MFR_SPECIFIC_D0", OpMfrDefined, OpMfrDefined},
	0xD1: {"MFR_SPECIFIC_D1", OpMfrDefined, OpMfrDefined},
	0xD2: {"MFR_SPECIFIC_D2", OpMfrDefined, OpMfrDefined},
	0xD3: {"MFR_SPECIFIC_D3", OpMfrDefined, OpMfrDefined},
	0xD4: {"MFR_SPECIFIC_D4", OpMfrDefined, OpMfrDefined},
	0xD5: {"MFR_SPECIFIC_D5", OpMfrDefined, OpMfrDefined},
	0xD6: {"MFR_SPECIFIC_D6", OpMfrDefined, OpMfrDefined},
	0xD7: {"MFR_SPECIFIC_D7", OpMfrDefined, OpMfrDefined},
	0xD8: {"MFR_SPECIFIC_D8", OpMfrDefined, OpMfrDefined},
	0xD9: {"MFR_SPECIFIC_D9", OpMfrDefined, OpMfrDefined},
	0xDA: {"MFR_SPECIFIC_DA", OpMfrDefined, OpMfrDefined},
	0xDB: {"MFR_SPECIFIC_DB", OpMfrDefined, OpMfrDefined},
	0xDC: {"MFR_SPECIFIC_DC", OpMfrDefined, OpMfrDefined},
	0xDD: {"MFR_SPECIFIC_DD", OpMfrDefined, OpMfrDefined},
	0xDE: {"MFR_SPECIFIC_DE", OpMfrDefined, OpMfrDefined},
	0xDF: {"MFR_SPECIFIC_DF", OpMfrDefined, OpMfrDefined},
	0xE0: {"MFR_SPECIFIC_E0", OpMfrDefined, OpMfrDefined},
	0xE1: {"MFR_SPECIFIC_E1", OpMfrDefined, OpMfrDefined},
	0xE2: {"MFR_SPECIFIC_E2", OpMfrDefined, OpMfrDefined},
	0xE3: {"MFR_SPECIFIC_E3", OpMfrDefined, OpMfrDefined},
	0xE4: {"MFR_SPECIFIC_E4", OpMfrDefined, OpMfrDefined},
	0xE5: {"MFR_SPECIFIC_E5", OpMfrDefined, OpMfrDefined},
	0xE6: {"MFR_SPECIFIC_E6", OpMfrDefined, OpMfrDefined},
	0xE7: {"MFR_SPECIFIC_E7", OpMfrDefined, OpMfrDefined},
	0xE8: {"MFR_SPECIFIC_E8", OpMfrDefined, OpMfrDefined},
	0xE9: {"MFR_SPECIFIC_E9", OpMfrDefined, OpMfrDefined},
	0xEA: {"MFR_SPECIFIC_EA", OpMfrDefined, OpMfrDefined},
	0xEB: {"MFR_SPECIFIC_EB", OpMfrDefined, OpMfrDefined},
	0xEC: {"MFR_SPECIFIC_EC", OpMfrDefined, OpMfrDefined},
	0xED: {"MFR_SPECIFIC_ED", OpMfrDefined, OpMfrDefined},
	0xEE: {"MFR_SPECIFIC_EE", OpMfrDefined, OpMfrDefined},
	0xEF: {"MFR_SPECIFIC_EF", OpMfrDefined, OpMfrDefined},
	0xF0: {"MFR_SPECIFIC_F0", OpMfrDefined, OpMfrDefined},
	0xF1: {"MFR_SPECIFIC_F1", OpMfrDefined, OpMfrDefined},
	0xF2: {"MFR_SPECIFIC_F2", OpMfrDefined, OpMfrDefined},
	0xF3: {"MFR_SPECIFIC_F3", OpMfrDefined, OpMfrDefined},
	0xF4: {"MFR_SPECIFIC_F4", OpMfrDefined, OpMfrDefined},
	0xF5: {"MFR_SPECIFIC_F5", OpMfrDefined, OpMfrDefined},
	0xF6: {"MFR_SPECIFIC_F6", OpMfrDefined, OpMfrDefined},
	0xF7: {"MFR_SPECIFIC_F7", OpMfrDefined, OpMfrDefined},
	0xF8: {"MFR_SPECIFIC_F8", OpMfrDefined, OpMfrDefined},
	0xF9: {"MFR_SPECIFIC_F9", OpMfrDefined, OpMfrDefined},
	0xFA: {"MFR_SPECIFIC_FA", OpMfrDefined, OpMfrDefined},
	0xFB: {"MFR_SPECIFIC_FB", OpMfrDefined, OpMfrDefined},
	0xFC: {"MFR_SPECIFIC_FC", OpMfrDefined, OpMfrDefined},
	0xFD: {"MFR_SPECIFIC_FD", OpMfrDefined, OpMfrDefined},
	0xFE: {"MFR_SPECIFIC_COMMAND_EXT", OpExtended, OpExtended},
	0xFF: {"PMBUS_COMMAND_EXT", OpExtended, OpExtended},
}

// Name returns the canonical PMBus name for the code.
func (c CommandCode) Name() string {
	if n := codeTable[c].name; n != "" {
		return n
	}
	return "RESERVED"
}

// String returns the name, with the code appended for reserved codes.
func (c CommandCode) String() string {
	if codeTable[c].name == "" {
		return fmt.Sprintf("RESERVED(0x%02X)", uint8(c))
	}
	return codeTable[c].name
}

// ReadOp returns the bus operation used to read the command.
func (c CommandCode) ReadOp() Operation {
	if codeTable[c].name == "" {
		return OpUnknown
	}
	return codeTable[c].read
}

// WriteOp returns the bus operation used to write the command.
func (c CommandCode) WriteOp() Operation {
	if codeTable[c].name == "" {
		return OpUnknown
	}
	return codeTable[c].write
}

// IsReserved returns true for codes the standard leaves unassigned.
func (c CommandCode) IsReserved() bool {
	return codeTable[c].name == ""
}

// Info returns the identity of the standard command at this code.
func (c CommandCode) Info() Info {
	return Info{Code: uint8(c), Name: c.Name(), Read: c.ReadOp(), Write: c.WriteOp()}
}

// ParseCommandCode resolves a standard command name (case-insensitive).
func ParseCommandCode(name string) (CommandCode, bool) {
	for i := range codeTable {
		if codeTable[i].name != "" && strings.EqualFold(codeTable[i].name, name) {
			return CommandCode(i), true
		}
	}
	return 0, false
}
