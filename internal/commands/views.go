package commands

import (
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// OnOffState is the OPERATION on/off bit.
type OnOffState uint8

const (
	Off OnOffState = iota
	On
)

func (s OnOffState) String() string {
	if s == On {
		return "On"
	}
	return "Off"
}

// VoltageCommandSource selects which VOUT command sets the output.
type VoltageCommandSource uint8

const (
	SourceVOutCommand VoltageCommandSource = iota
	SourceVOutMarginLow
	SourceVOutMarginHigh
	SourceAVSVOutCommand
)

func (s VoltageCommandSource) String() string {
	switch s {
	case SourceVOutCommand:
		return "VOUT_COMMAND"
	case SourceVOutMarginLow:
		return "VOUT_MARGIN_LOW"
	case SourceVOutMarginHigh:
		return "VOUT_MARGIN_HIGH"
	default:
		return "AVS_VOUT_COMMAND"
	}
}

// MarginFaultResponse is OPERATION bits 3:2. Only IgnoreFault and
// ActOnFault are named by the standard.
type MarginFaultResponse uint8

const (
	IgnoreFault MarginFaultResponse = 1
	ActOnFault  MarginFaultResponse = 2
)

// OperationData is a typed view of the OPERATION byte.
type OperationData struct {
	data pmbus.Data
}

// NewOperationData wraps a raw OPERATION byte.
func NewOperationData(raw uint8) OperationData {
	return OperationData{data: pmbus.FromRaw(Operation, uint64(raw))}
}

// Data returns the underlying payload for use with Interpret and Mutate.
func (o *OperationData) Data() *pmbus.Data { return &o.data }

// Raw returns the OPERATION byte.
func (o *OperationData) Raw() uint8 {
	v, _ := o.data.Raw()
	return uint8(v)
}

func (o *OperationData) field(name string) uint64 {
	v, err := o.data.Get(pmbus.NoContext, name)
	if err != nil {
		return 0
	}
	return v.Raw()
}

func (o *OperationData) set(name string, v uint64) error {
	return o.data.Set(pmbus.NoContext, name, pmbus.Integer(int64(v)))
}

func (o *OperationData) OnOffState() OnOffState {
	return OnOffState(o.field("OnOffState"))
}

func (o *OperationData) SetOnOffState(s OnOffState) error {
	return o.set("OnOffState", uint64(s&1))
}

// TurnOffImmediately reports OPERATION bit 6.
func (o *OperationData) TurnOffImmediately() bool {
	return o.field("TurnOffBehavior") != 0
}

func (o *OperationData) SetTurnOffImmediately(b bool) error {
	return o.set("TurnOffBehavior", boolBit(b))
}

func (o *OperationData) VoltageCommandSource() VoltageCommandSource {
	return VoltageCommandSource(o.field("VoltageCommandSource"))
}

func (o *OperationData) SetVoltageCommandSource(s VoltageCommandSource) error {
	return o.set("VoltageCommandSource", uint64(s&3))
}

// MarginFaultResponse returns the response and whether it is one of the
// named values.
func (o *OperationData) MarginFaultResponse() (MarginFaultResponse, bool) {
	r := MarginFaultResponse(o.field("MarginFaultResponse"))
	return r, r == IgnoreFault || r == ActOnFault
}

func (o *OperationData) SetMarginFaultResponse(r MarginFaultResponse) error {
	return o.set("MarginFaultResponse", uint64(r&3))
}

// UseTransitionRate reports OPERATION bit 1.
func (o *OperationData) UseTransitionRate() bool {
	return o.field("TransitionControl") != 0
}

func (o *OperationData) SetUseTransitionRate(b bool) error {
	return o.set("TransitionControl", boolBit(b))
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// VOutCommandData is a typed view of VOUT_COMMAND.
type VOutCommandData struct {
	data pmbus.Data
}

// NewVOutCommandData wraps a raw VOUT_COMMAND word.
func NewVOutCommandData(raw uint16) VOutCommandData {
	return VOutCommandData{data: pmbus.FromRaw(VOutCommand, uint64(raw))}
}

func (v *VOutCommandData) Data() *pmbus.Data { return &v.data }

func (v *VOutCommandData) Raw() uint16 {
	r, _ := v.data.Raw()
	return uint16(r)
}

// Get decodes the commanded voltage under mode.
func (v *VOutCommandData) Get(mode pmbus.VOutMode) (units.Volts, error) {
	val, err := v.data.Get(pmbus.Params{VOut: pmbus.Mode(mode)}, "Voltage")
	if err != nil {
		return 0, err
	}
	return units.Volts(val.Float()), nil
}

// Set encodes volts under mode. It fails with pmbus.ErrValueOutOfRange when
// the mode cannot represent the value.
func (v *VOutCommandData) Set(mode pmbus.VOutMode, volts units.Volts) error {
	return v.data.Set(pmbus.Params{VOut: pmbus.Mode(mode)}, "Voltage", pmbus.Float(float32(volts)))
}

// StatusWordData is a typed view of STATUS_WORD.
type StatusWordData struct {
	data pmbus.Data
}

func NewStatusWordData(raw uint16) StatusWordData {
	return StatusWordData{data: pmbus.FromRaw(StatusWord, uint64(raw))}
}

func (s *StatusWordData) Data() *pmbus.Data { return &s.data }

// Has reports whether the named status bit is set. Unknown names report
// false.
func (s *StatusWordData) Has(flag string) bool {
	v, err := s.data.Get(pmbus.NoContext, flag)
	return err == nil && v.Bool()
}

// Active calls fn with the name of every set bit, most significant first.
func (s *StatusWordData) Active(fn func(name string)) error {
	return s.data.Interpret(pmbus.NoContext, func(f *pmbus.Field, v pmbus.Value) {
		if v.Bool() {
			fn(f.Name)
		}
	})
}

func (s *StatusWordData) Off() bool  { return s.Has("Off") }
func (s *StatusWordData) Busy() bool { return s.Has("Busy") }

// Faulted reports whether any fault or warning summary bit is set.
func (s *StatusWordData) Faulted() bool {
	r, _ := s.data.Raw()
	return r&^statusOffMask != 0
}

// Off and PowerGoodNegated describe state rather than faults.
const statusOffMask = 1<<6 | 1<<11
