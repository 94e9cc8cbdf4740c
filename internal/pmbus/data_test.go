package pmbus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tturner/pmbus/internal/codec"
	"github.com/tturner/pmbus/internal/units"
)

var testOperation = Define(CmdOperation, 1,
	Field{Name: "OnOffState", Pos: 7, Width: 1, Kind: KindSentinel, Sentinels: []Sentinel{
		{"Off", 0}, {"On", 1},
	}},
	Field{Name: "TurnOffBehavior", Pos: 6, Width: 1, Kind: KindSentinel, Sentinels: []Sentinel{
		{"UseTOffDelay", 0}, {"Immediate", 1},
	}},
	Field{Name: "VoltageCommandSource", Pos: 4, Width: 2, Kind: KindSentinel, Sentinels: []Sentinel{
		{"VOUT_COMMAND", 0}, {"VOUT_MARGIN_LOW", 1}, {"VOUT_MARGIN_HIGH", 2}, {"AVS_VOUT_COMMAND", 3},
	}},
	Field{Name: "MarginFaultResponse", Pos: 2, Width: 2, Kind: KindSentinel, Sentinels: []Sentinel{
		{"IgnoreFault", 1}, {"ActOnFault", 2},
	}},
	Field{Name: "TransitionControl", Pos: 1, Width: 1, Kind: KindBoolean},
)

var testVOutCommand = Define(CmdVOutCommand, 2,
	Field{Name: "Voltage", Pos: 0, Width: 16, Kind: KindVOut, Unit: units.UnitVolts},
)

var testReadVIn = Define(CmdReadVIn, 2,
	Field{Name: "Voltage", Pos: 0, Width: 16, Kind: KindDirect, Unit: units.UnitVolts},
)

var testReadIOut = Define(CmdReadIOut, 2,
	Field{Name: "Current", Pos: 0, Width: 16, Kind: KindLinear11, Unit: units.UnitAmperes},
)

var testMixed = NewCommand(Info{Code: 0xD0, Name: "MIXED", Read: OpReadWord, Write: OpWriteWord}, 2,
	Field{Name: "Enable", Pos: 15, Width: 1, Kind: KindBoolean},
	Field{Name: "Offset", Pos: 8, Width: 4, Kind: KindSigned},
	Field{Name: "Level", Pos: 0, Width: 8, Kind: KindScaled, Scale: 0.1, Unit: units.UnitVolts},
)

// countingProvider records how often each accessor is used.
type countingProvider struct {
	mode   VOutMode
	coeffs codec.Coefficients
	modes  int
	direct int
}

func (p *countingProvider) VOutMode() (VOutMode, error) {
	p.modes++
	return p.mode, nil
}

func (p *countingProvider) Coefficients(uint8, *Field) (codec.Coefficients, error) {
	p.direct++
	return p.coeffs, nil
}

// panicProvider fails the test if any context is requested.
type panicProvider struct{ t *testing.T }

func (p panicProvider) VOutMode() (VOutMode, error) {
	p.t.Fatal("unexpected call to VOutMode")
	return 0, nil
}

func (p panicProvider) Coefficients(uint8, *Field) (codec.Coefficients, error) {
	p.t.Fatal("unexpected call to Coefficients")
	return codec.Coefficients{}, nil
}

func linearMode(t *testing.T, exp int8) Params {
	t.Helper()
	m, err := NewVOutMode(VOutLinear, exp)
	require.NoError(t, err)
	return Params{VOut: Mode(m)}
}

func collect(t *testing.T, d *Data, p Provider) map[string]Value {
	t.Helper()
	got := map[string]Value{}
	require.NoError(t, d.Interpret(p, func(f *Field, v Value) {
		got[f.Name] = v
	}))
	return got
}

func TestDefineTakesIdentityFromTable(t *testing.T) {
	assert.Equal(t, "OPERATION", testOperation.Name)
	assert.Equal(t, uint8(0x01), testOperation.Code)
	assert.Equal(t, OpReadByte, testOperation.Read)
	assert.Equal(t, OpWriteByte, testOperation.Write)
	require.NoError(t, testOperation.Validate())
	require.NoError(t, testMixed.Validate())
}

func TestInterpretOperation(t *testing.T) {
	d := FromRaw(testOperation, 0x04)
	got := collect(t, &d, panicProvider{t})

	assert.Equal(t, "Off", got["OnOffState"].Name())
	assert.Equal(t, ValueSentinel, got["OnOffState"].Kind())
	assert.Equal(t, "VOUT_COMMAND", got["VoltageCommandSource"].String())
	assert.Equal(t, "IgnoreFault", got["MarginFaultResponse"].String())
	assert.False(t, got["TransitionControl"].Bool())
	assert.Equal(t, "false", got["TransitionControl"].String())
}

func TestInterpretOrder(t *testing.T) {
	d := FromRaw(testOperation, 0)
	var order []Bitpos
	require.NoError(t, d.Interpret(NoContext, func(f *Field, _ Value) {
		order = append(order, f.Pos)
	}))
	assert.Equal(t, []Bitpos{7, 6, 4, 2, 1}, order)

	// declaration order does not matter
	cmd := NewCommand(Info{Code: 0xD1, Name: "UNORDERED"}, 1,
		Field{Name: "Low", Pos: 0, Width: 1, Kind: KindBoolean},
		Field{Name: "High", Pos: 7, Width: 1, Kind: KindBoolean},
		Field{Name: "Mid", Pos: 3, Width: 2, Kind: KindInteger},
	)
	d = FromRaw(cmd, 0)
	order = order[:0]
	require.NoError(t, d.Interpret(NoContext, func(f *Field, _ Value) {
		order = append(order, f.Pos)
	}))
	assert.Equal(t, []Bitpos{7, 3, 0}, order)
}

func TestUnnamedSentinelIsInteger(t *testing.T) {
	// MarginFaultResponse has no name for 0 or 3
	d := FromRaw(testOperation, 0x0c)
	v, err := d.Get(NoContext, "MarginFaultResponse")
	require.NoError(t, err)
	assert.Equal(t, ValueInteger, v.Kind())
	assert.Equal(t, int64(3), v.Int())
	assert.Equal(t, "0x3", v.String())
}

func TestMutateOnOffState(t *testing.T) {
	d := FromRaw(testOperation, 0x04)
	err := d.Mutate(NoContext, func(f *Field, v Value) (Replacement, bool) {
		if f.Name == "OnOffState" {
			return Boolean(true), true
		}
		return Replacement{}, false
	})
	require.NoError(t, err)

	raw, width := d.Raw()
	assert.Equal(t, uint64(0x84), raw)
	assert.Equal(t, 8, width)

	v, err := d.Get(NoContext, "OnOffState")
	require.NoError(t, err)
	assert.Equal(t, "On", v.Name())
}

func TestMutateErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		repl  Replacement
		want  error
	}{
		{"integer overflows 1-bit field", "OnOffState", Integer(3), ErrOverflowReplacement},
		{"negative integer", "VoltageCommandSource", Integer(-1), ErrOverflowReplacement},
		{"float on bitfield", "OnOffState", Float(1.0), ErrInvalidReplacement},
		{"boolean on 2-bit sentinel", "VoltageCommandSource", Boolean(true), ErrInvalidReplacement},
		{"float on boolean", "TransitionControl", Float(0), ErrInvalidReplacement},
		{"integer overflows boolean", "TransitionControl", Integer(2), ErrOverflowReplacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromRaw(testOperation, 0x04)
			err := d.Mutate(NoContext, func(f *Field, _ Value) (Replacement, bool) {
				return tt.repl, f.Name == tt.field
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, "OPERATION", fe.Command)
			require.NotNil(t, fe.Replacement)
			assert.Equal(t, tt.repl, *fe.Replacement)

			raw, _ := d.Raw()
			assert.Equal(t, uint64(0x04), raw)
		})
	}
}

func TestMutateSetsVoltageCommandSource(t *testing.T) {
	d := FromRaw(testOperation, 0x04)
	require.NoError(t, d.Set(NoContext, "VoltageCommandSource", Integer(2)))

	v, err := d.Get(NoContext, "VoltageCommandSource")
	require.NoError(t, err)
	assert.Equal(t, "VOUT_MARGIN_HIGH", v.Name())

	raw, _ := d.Raw()
	assert.Equal(t, uint64(0x24), raw)
}

func TestMutatePartialApplication(t *testing.T) {
	d := FromRaw(testOperation, 0x04)
	err := d.Mutate(NoContext, func(f *Field, _ Value) (Replacement, bool) {
		switch f.Name {
		case "OnOffState":
			return Boolean(true), true
		case "VoltageCommandSource":
			return Integer(7), true
		case "TransitionControl":
			return Boolean(true), true
		}
		return Replacement{}, false
	})
	require.ErrorIs(t, err, ErrOverflowReplacement)

	// OnOffState was applied before the failure, TransitionControl comes
	// after it and was never reached.
	raw, _ := d.Raw()
	assert.Equal(t, uint64(0x84), raw)
}

func TestMutateIndependentFields(t *testing.T) {
	d := FromRaw(testMixed, 0)
	require.NoError(t, d.Set(NoContext, "Enable", Boolean(true)))
	require.Error(t, d.Set(NoContext, "Offset", Integer(8)))
	require.NoError(t, d.Set(NoContext, "Offset", Integer(-3)))
	require.NoError(t, d.Set(NoContext, "Level", Float(12.5)))

	got := collect(t, &d, NoContext)
	assert.True(t, got["Enable"].Bool())
	assert.Equal(t, int64(-3), got["Offset"].Int())
	assert.Equal(t, "-3", got["Offset"].String())
	assert.InDelta(t, 12.5, got["Level"].Float(), 1e-5)
	assert.Equal(t, units.UnitVolts, got["Level"].Unit())

	assert.ErrorIs(t, d.Set(NoContext, "Level", Float(30)), ErrValueOutOfRange)
	assert.ErrorIs(t, d.Set(NoContext, "Level", Float(-1)), ErrValueOutOfRange)
	assert.ErrorIs(t, d.Set(NoContext, "Missing", Integer(1)), ErrInvalidField)
}

func TestVOutLinear(t *testing.T) {
	mode := VOutMode(0x97)
	assert.Equal(t, int8(-9), mode.Parameter())
	assert.Equal(t, VOutLinear, mode.Mode())

	d, err := FromSlice(testVOutCommand, []byte{0x63, 0x02})
	require.NoError(t, err)

	p := Params{VOut: Mode(mode)}
	v, err := d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.Equal(t, float32(1.1933594), v.Float())
	assert.Equal(t, "1.1933594V", v.String())

	require.NoError(t, d.Set(p, "Voltage", Float(1.20)))
	assert.Equal(t, []byte{0x66, 0x02}, d.Bytes())

	v, err = d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.Equal(t, float32(1.1992188), v.Float())
}

func TestVOutMutate(t *testing.T) {
	p := linearMode(t, -9)
	d, err := FromSlice(testVOutCommand, []byte{0x63, 0x02})
	require.NoError(t, err)

	require.NoError(t, d.Set(p, "Voltage", Integer(3)))
	v, err := d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.Equal(t, float32(3.0), v.Float())

	assert.ErrorIs(t, d.Set(p, "Voltage", Boolean(true)), ErrInvalidReplacement)
	assert.ErrorIs(t, d.Set(p, "Voltage", Float(150)), ErrValueOutOfRange)
	assert.ErrorIs(t, d.Set(p, "Voltage", Float(-1)), ErrValueOutOfRange)
}

func TestVOutOtherModes(t *testing.T) {
	d, err := FromSlice(testVOutCommand, []byte{0x00, 0x3c})
	require.NoError(t, err)

	half, err := NewVOutMode(VOutIEEEHalf, 0)
	require.NoError(t, err)
	v, err := d.Get(Params{VOut: Mode(half)}, "Voltage")
	require.NoError(t, err)
	assert.Equal(t, float32(1.0), v.Float())

	vid, err := NewVOutMode(VOutVID, 1)
	require.NoError(t, err)
	p := Params{VOut: Mode(vid)}
	v, err = d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.Equal(t, ValueInteger, v.Kind())
	assert.Equal(t, uint64(0x3c00), v.Raw())
	assert.ErrorIs(t, d.Set(p, "Voltage", Float(1.1)), ErrInvalidReplacement)
	require.NoError(t, d.Set(p, "Voltage", Integer(0x7f)))
	assert.Equal(t, []byte{0x7f, 0x00}, d.Bytes())

	direct, err := NewVOutMode(VOutDirect, 0)
	require.NoError(t, err)
	p = Params{VOut: Mode(direct), Direct: Fixed(codec.Coefficients{M: 1, R: 3})}
	require.NoError(t, d.Set(p, "Voltage", Float(0.75)))
	v, err = d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.InDelta(t, 0.75, v.Float(), 1e-6)
}

func TestDirectField(t *testing.T) {
	d, err := FromSlice(testReadVIn, []byte{0x6d, 0x07})
	require.NoError(t, err)

	p := Params{Direct: Fixed(codec.Coefficients{M: 4062, B: 0, R: -2})}
	v, err := d.Get(p, "Voltage")
	require.NoError(t, err)
	assert.InDelta(t, 46.799606, v.Float(), 1e-4)

	_, err = d.Get(NoContext, "Voltage")
	assert.ErrorIs(t, err, ErrNoContext)
}

func TestLinear11Field(t *testing.T) {
	d, err := FromSlice(testReadIOut, []byte{0xa1, 0xe9})
	require.NoError(t, err)
	v, err := d.Get(panicProvider{t}, "Current")
	require.NoError(t, err)
	assert.Equal(t, float32(52.125), v.Float())
	assert.Equal(t, "52.125A", v.String())

	require.NoError(t, d.Set(NoContext, "Current", Float(10)))
	assert.Equal(t, []byte{0x80, 0xd2}, d.Bytes())
	assert.ErrorIs(t, d.Set(NoContext, "Current", Float(1e8)), ErrValueOutOfRange)

	// zero and values below the finest step have no exponent
	for _, x := range []float32{0, 1e-7, -1e-7} {
		assert.ErrorIs(t, d.Set(NoContext, "Current", Float(x)), ErrValueOutOfRange, "%v", x)
	}
	assert.Equal(t, []byte{0x80, 0xd2}, d.Bytes())
}

func TestProviderCalledLazily(t *testing.T) {
	p := &countingProvider{mode: VOutMode(0x17)}

	d := FromRaw(testOperation, 0x80)
	collect(t, &d, p)
	assert.Zero(t, p.modes)
	assert.Zero(t, p.direct)

	vd, err := FromSlice(testVOutCommand, []byte{0x63, 0x02})
	require.NoError(t, err)
	collect(t, &vd, p)
	assert.Equal(t, 1, p.modes)
	assert.Zero(t, p.direct)

	// decode and encode share one lookup
	p.modes = 0
	require.NoError(t, vd.Mutate(p, func(*Field, Value) (Replacement, bool) {
		return Float(1.0), true
	}))
	assert.Equal(t, 1, p.modes)

	// each call asks again
	collect(t, &vd, p)
	assert.Equal(t, 2, p.modes)
}

func TestProviderErrorPropagates(t *testing.T) {
	boom := errors.New("VOUT_MODE read failed")
	p := Params{VOut: func() (VOutMode, error) { return 0, boom }}

	d, err := FromSlice(testVOutCommand, []byte{0x63, 0x02})
	require.NoError(t, err)

	err = d.Interpret(p, func(*Field, Value) {})
	assert.Equal(t, boom, err)

	err = d.Mutate(p, func(*Field, Value) (Replacement, bool) {
		t.Fatal("visitor called after provider failure")
		return Replacement{}, false
	})
	assert.Equal(t, boom, err)
}

func TestFromSliceLength(t *testing.T) {
	_, err := FromSlice(testOperation, []byte{0x04, 0x00})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)

	var le *LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Got)
	assert.Equal(t, 1, le.Want)

	_, err = FromSlice(testVOutCommand, []byte{0x63})
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestFromRawMasksWidth(t *testing.T) {
	d := FromRaw(testOperation, 0x1ff)
	raw, width := d.Raw()
	assert.Equal(t, uint64(0xff), raw)
	assert.Equal(t, 8, width)

	var buf [4]byte
	n, err := d.CopyTo(buf[:])
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, byte(0xff), buf[0])

	_, err = d.CopyTo(nil)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestWidthInvariant(t *testing.T) {
	d := FromRaw(testMixed, 0)
	for i := int64(0); i < 256; i++ {
		_ = d.Mutate(NoContext, func(f *Field, _ Value) (Replacement, bool) {
			switch f.Kind {
			case KindBoolean:
				return Boolean(i%2 == 0), true
			case KindSigned:
				return Integer(i%16 - 8), true
			default:
				return Float(float32(i) / 10), true
			}
		})
		raw, width := d.Raw()
		assert.LessOrEqual(t, raw, uint64(1)<<width-1)
	}
}

func TestZeroData(t *testing.T) {
	var d Data
	raw, width := d.Raw()
	assert.Zero(t, raw)
	assert.Zero(t, width)
	assert.Empty(t, d.Bytes())

	assert.ErrorIs(t, d.Interpret(NoContext, func(*Field, Value) {}), ErrInvalidCode)
	assert.ErrorIs(t, d.Mutate(NoContext, func(*Field, Value) (Replacement, bool) { return Integer(1), true }), ErrInvalidCode)
	_, err := d.Get(NoContext, "OnOffState")
	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.ErrorIs(t, d.Set(NoContext, "OnOffState", Boolean(true)), ErrInvalidCode)
	assert.ErrorIs(t, d.Sentinels(0, func(Sentinel) {}), ErrInvalidCode)
	_, err = d.CopyTo(make([]byte, 4))
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestSentinels(t *testing.T) {
	d := FromRaw(testOperation, 0)
	var names []string
	var raws []uint64
	require.NoError(t, d.Sentinels(4, func(s Sentinel) {
		names = append(names, s.Name)
		raws = append(raws, s.Raw)
	}))
	assert.Equal(t, []string{"VOUT_COMMAND", "VOUT_MARGIN_LOW", "VOUT_MARGIN_HIGH", "AVS_VOUT_COMMAND"}, names)
	assert.Equal(t, []uint64{0, 1, 2, 3}, raws)

	// bit 5 is inside VoltageCommandSource, not the start of a field
	assert.ErrorIs(t, d.Sentinels(5, func(Sentinel) {}), ErrInvalidField)
	// TransitionControl is boolean
	assert.ErrorIs(t, d.Sentinels(1, func(Sentinel) {}), ErrInvalidField)
}

func TestGetUnknownField(t *testing.T) {
	d := FromRaw(testOperation, 0)
	_, err := d.Get(NoContext, "Nope")
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cmd  *Command
	}{
		{"overlap", &Command{Name: "X", Width: 1, Fields: []Field{
			{Name: "A", Pos: 4, Width: 4, Kind: KindInteger},
			{Name: "B", Pos: 2, Width: 3, Kind: KindInteger},
		}}},
		{"outside payload", &Command{Name: "X", Width: 1, Fields: []Field{
			{Name: "A", Pos: 6, Width: 4, Kind: KindInteger},
		}}},
		{"duplicate sentinel", &Command{Name: "X", Width: 1, Fields: []Field{
			{Name: "A", Pos: 0, Width: 2, Kind: KindSentinel, Sentinels: []Sentinel{{"P", 1}, {"Q", 1}}},
		}}},
		{"sentinel too wide", &Command{Name: "X", Width: 1, Fields: []Field{
			{Name: "A", Pos: 0, Width: 1, Kind: KindSentinel, Sentinels: []Sentinel{{"P", 2}}},
		}}},
		{"duplicate name", &Command{Name: "X", Width: 1, Fields: []Field{
			{Name: "A", Pos: 4, Width: 1, Kind: KindBoolean},
			{Name: "a", Pos: 0, Width: 1, Kind: KindBoolean},
		}}},
		{"wide linear11", &Command{Name: "X", Width: 4, Fields: []Field{
			{Name: "A", Pos: 0, Width: 32, Kind: KindLinear11},
		}}},
		{"zero width", &Command{Name: "X", Width: 0}},
		{"no name", &Command{Width: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cmd.Validate())
		})
	}
}

func TestVOutModeParameter(t *testing.T) {
	var m VOutMode
	require.NoError(t, m.SetParameter(-16))
	assert.Equal(t, int8(-16), m.Parameter())
	require.NoError(t, m.SetParameter(15))
	assert.Equal(t, int8(15), m.Parameter())
	assert.ErrorIs(t, m.SetParameter(16), ErrValueOutOfRange)
	assert.ErrorIs(t, m.SetParameter(-17), ErrValueOutOfRange)

	m.SetRelative(true)
	m.SetMode(VOutDirect)
	assert.True(t, m.Relative())
	assert.Equal(t, VOutDirect, m.Mode())
	assert.Equal(t, int8(15), m.Parameter())
	assert.Equal(t, "Direct(15),relative", m.String())
}
