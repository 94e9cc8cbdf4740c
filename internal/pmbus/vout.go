package pmbus

import "fmt"

// VOutModeKind selects the data format of VOUT-family commands.
type VOutModeKind uint8

const (
	VOutLinear VOutModeKind = iota
	VOutVID
	VOutDirect
	VOutIEEEHalf
)

func (k VOutModeKind) String() string {
	switch k {
	case VOutLinear:
		return "Linear"
	case VOutVID:
		return "VID"
	case VOutDirect:
		return "Direct"
	default:
		return "IEEEHalf"
	}
}

// VOutMode is the VOUT_MODE byte:
//
//	bit 7     relative
//	bits 6:5  mode
//	bits 4:0  parameter (exponent in Linear mode)
type VOutMode uint8

const (
	vOutRelativeBit = 0x80
	vOutModeShift   = 5
	vOutModeMask    = 0x60
	vOutParamMask   = 0x1f

	// VOutParameterMin and VOutParameterMax bound the signed 5-bit
	// parameter.
	VOutParameterMin = -16
	VOutParameterMax = 15
)

// NewVOutMode builds a VOUT_MODE byte.
func NewVOutMode(kind VOutModeKind, param int8) (VOutMode, error) {
	var m VOutMode
	m.SetMode(kind)
	if err := m.SetParameter(param); err != nil {
		return 0, err
	}
	return m, nil
}

// Relative reports whether VOUT values are relative to the nominal output.
func (m VOutMode) Relative() bool { return m&vOutRelativeBit != 0 }

func (m VOutMode) Mode() VOutModeKind {
	return VOutModeKind((m & vOutModeMask) >> vOutModeShift)
}

// Parameter returns bits 4:0 sign extended. In Linear mode this is the
// ULINEAR16 exponent.
func (m VOutMode) Parameter() int8 {
	return int8(uint8(m)<<3) >> 3
}

func (m *VOutMode) SetRelative(rel bool) {
	if rel {
		*m |= vOutRelativeBit
	} else {
		*m &^= vOutRelativeBit
	}
}

func (m *VOutMode) SetMode(kind VOutModeKind) {
	*m = *m&^vOutModeMask | VOutMode(kind&3)<<vOutModeShift
}

// SetParameter stores the parameter, failing with ErrValueOutOfRange when
// it does not fit in five signed bits.
func (m *VOutMode) SetParameter(p int8) error {
	if p < VOutParameterMin || p > VOutParameterMax {
		return fmt.Errorf("VOUT_MODE parameter %d: %w", p, ErrValueOutOfRange)
	}
	*m = *m&^vOutParamMask | VOutMode(uint8(p)&vOutParamMask)
	return nil
}

func (m VOutMode) String() string {
	rel := ""
	if m.Relative() {
		rel = ",relative"
	}
	return fmt.Sprintf("%s(%d)%s", m.Mode(), m.Parameter(), rel)
}
