package pmbus

import "strings"

// Operation is the bus transaction used to read or write a command.
type Operation uint8

const (
	OpUnknown Operation = iota
	OpIllegal
	OpSendByte
	OpWriteByte
	OpReadByte
	OpWriteWord
	OpReadWord
	OpWriteWord32
	OpReadWord32
	OpWriteBlock
	OpReadBlock
	OpProcessCall
	OpMfrDefined
	OpExtended
)

func (o Operation) String() string {
	switch o {
	case OpIllegal:
		return "Illegal"
	case OpSendByte:
		return "SendByte"
	case OpWriteByte:
		return "WriteByte"
	case OpReadByte:
		return "ReadByte"
	case OpWriteWord:
		return "WriteWord"
	case OpReadWord:
		return "ReadWord"
	case OpWriteWord32:
		return "WriteWord32"
	case OpReadWord32:
		return "ReadWord32"
	case OpWriteBlock:
		return "WriteBlock"
	case OpReadBlock:
		return "ReadBlock"
	case OpProcessCall:
		return "ProcessCall"
	case OpMfrDefined:
		return "MfrDefined"
	case OpExtended:
		return "Extended"
	default:
		return "Unknown"
	}
}

// ParseOperation maps an operation name back to its value.
func ParseOperation(s string) (Operation, bool) {
	for o := OpUnknown; o <= OpExtended; o++ {
		if strings.EqualFold(o.String(), s) {
			return o, true
		}
	}
	return OpUnknown, false
}

// PayloadSize returns the number of data bytes the operation moves, or 0 when
// the size is variable or not defined by the operation.
func (o Operation) PayloadSize() int {
	switch o {
	case OpWriteByte, OpReadByte:
		return 1
	case OpWriteWord, OpReadWord:
		return 2
	case OpWriteWord32, OpReadWord32:
		return 4
	default:
		return 0
	}
}

// Info is the identity of a command as seen on the bus.
type Info struct {
	Code  uint8
	Name  string
	Read  Operation
	Write Operation
}

func (i Info) String() string {
	return i.Name
}
