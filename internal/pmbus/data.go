package pmbus

import (
	"math"
	"strconv"

	"github.com/tturner/pmbus/internal/codec"
)

// Data is the payload of one command. It owns a fixed-size buffer so that
// decoding and mutation never allocate. Multi-byte payloads are little
// endian, as on the bus.
//
// A Data is made by FromSlice or FromRaw. The zero Data has no command:
// Raw and Bytes report an empty payload and the other methods fail with
// ErrInvalidCode.
type Data struct {
	cmd *Command
	raw [MaxWidth]byte
}

// FromSlice copies a payload. The slice must be exactly the command's width.
func FromSlice(cmd *Command, b []byte) (Data, error) {
	if len(b) != cmd.Width {
		return Data{}, &LengthError{Command: cmd.Name, Got: len(b), Want: cmd.Width}
	}
	d := Data{cmd: cmd}
	copy(d.raw[:], b)
	return d, nil
}

// FromRaw builds a payload from an integer, masked to the command's width.
// Payloads wider than eight bytes take the low 64 bits from v.
func FromRaw(cmd *Command, v uint64) Data {
	d := Data{cmd: cmd}
	for i := 0; i < cmd.Width && i < 8; i++ {
		d.raw[i] = byte(v >> (8 * i))
	}
	return d
}

// Command returns the definition the payload is decoded against.
func (d *Data) Command() *Command { return d.cmd }

// Raw returns the low 64 bits of the payload and its width in bits.
func (d *Data) Raw() (uint64, int) {
	if d.cmd == nil {
		return 0, 0
	}
	var v uint64
	for i := 0; i < d.cmd.Width && i < 8; i++ {
		v |= uint64(d.raw[i]) << (8 * i)
	}
	return v, d.cmd.Bits()
}

// Bytes returns the payload. The slice aliases the Data's storage.
func (d *Data) Bytes() []byte {
	if d.cmd == nil {
		return nil
	}
	return d.raw[:d.cmd.Width]
}

// CopyTo writes the payload into dst and returns the number of bytes
// written.
func (d *Data) CopyTo(dst []byte) (int, error) {
	if d.cmd == nil {
		return 0, ErrInvalidCode
	}
	if len(dst) < d.cmd.Width {
		return 0, &LengthError{Command: d.cmd.Name, Got: len(dst), Want: d.cmd.Width}
	}
	return copy(dst, d.raw[:d.cmd.Width]), nil
}

func (d *Data) bits(f *Field) uint64 {
	var v uint64
	for i := 0; i < int(f.Width); i++ {
		b := int(f.Pos) + i
		if d.raw[b/8]&(1<<(b%8)) != 0 {
			v |= 1 << i
		}
	}
	return v
}

func (d *Data) setBits(f *Field, v uint64) {
	for i := 0; i < int(f.Width); i++ {
		b := int(f.Pos) + i
		if v&(1<<i) != 0 {
			d.raw[b/8] |= 1 << (b % 8)
		} else {
			d.raw[b/8] &^= 1 << (b % 8)
		}
	}
}

// fieldContext fetches provider context lazily, once per field.
type fieldContext struct {
	p      Provider
	code   uint8
	f      *Field
	mode   VOutMode
	coeffs codec.Coefficients
	have   uint8
}

const (
	haveMode = 1 << iota
	haveCoeffs
)

func (c *fieldContext) vOutMode() (VOutMode, error) {
	if c.have&haveMode == 0 {
		m, err := c.p.VOutMode()
		if err != nil {
			return 0, err
		}
		c.mode = m
		c.have |= haveMode
	}
	return c.mode, nil
}

func (c *fieldContext) coefficients() (codec.Coefficients, error) {
	if c.have&haveCoeffs == 0 {
		co, err := c.p.Coefficients(c.code, c.f)
		if err != nil {
			return codec.Coefficients{}, err
		}
		c.coeffs = co
		c.have |= haveCoeffs
	}
	return c.coeffs, nil
}

func (d *Data) decode(f *Field, ctx *fieldContext) (Value, error) {
	raw := d.bits(f)
	switch f.Kind {
	case KindBoolean:
		return boolValue(raw), nil
	case KindSentinel:
		if s, ok := f.Sentinel(raw); ok {
			return sentinelValue(raw, s.Name), nil
		}
		return intValue(raw), nil
	case KindSigned:
		return signedValue(raw, f.Width), nil
	case KindDirect:
		c, err := ctx.coefficients()
		if err != nil {
			return Value{}, err
		}
		return floatValue(raw, codec.Direct(raw).Real(c), f.Unit), nil
	case KindLinear11:
		return floatValue(raw, codec.Linear11(raw).Real(), f.Unit), nil
	case KindScaled:
		return floatValue(raw, float32(raw)*f.Scale, f.Unit), nil
	case KindVOut:
		m, err := ctx.vOutMode()
		if err != nil {
			return Value{}, err
		}
		switch m.Mode() {
		case VOutLinear:
			return floatValue(raw, codec.ULinear16(raw).Real(m.Parameter()), f.Unit), nil
		case VOutDirect:
			c, err := ctx.coefficients()
			if err != nil {
				return Value{}, err
			}
			return floatValue(raw, codec.Direct(raw).Real(c), f.Unit), nil
		case VOutIEEEHalf:
			return floatValue(raw, codec.Half(raw).Real(), f.Unit), nil
		default:
			return intValue(raw), nil
		}
	default:
		return intValue(raw), nil
	}
}

// encode converts a replacement into the field's raw bits.
func (d *Data) encode(f *Field, r Replacement, ctx *fieldContext) (uint64, error) {
	mask := f.Mask()

	unsigned := func() (uint64, error) {
		if r.i < 0 || uint64(r.i) > mask {
			return 0, ErrOverflowReplacement
		}
		return uint64(r.i), nil
	}

	switch f.Kind {
	case KindBoolean:
		switch r.kind {
		case ReplaceBoolean:
			if r.b {
				return 1, nil
			}
			return 0, nil
		case ReplaceInteger:
			return unsigned()
		}
		return 0, ErrInvalidReplacement

	case KindSentinel:
		switch r.kind {
		case ReplaceInteger:
			return unsigned()
		case ReplaceBoolean:
			if f.Width != 1 {
				return 0, ErrInvalidReplacement
			}
			if r.b {
				return 1, nil
			}
			return 0, nil
		}
		return 0, ErrInvalidReplacement

	case KindInteger:
		if r.kind != ReplaceInteger {
			return 0, ErrInvalidReplacement
		}
		return unsigned()

	case KindSigned:
		if r.kind != ReplaceInteger {
			return 0, ErrInvalidReplacement
		}
		if f.Width < 64 {
			lim := int64(1) << (f.Width - 1)
			if r.i < -lim || r.i >= lim {
				return 0, ErrOverflowReplacement
			}
		}
		return uint64(r.i) & mask, nil
	}

	if r.kind == ReplaceBoolean {
		return 0, ErrInvalidReplacement
	}
	x := r.real()

	switch f.Kind {
	case KindDirect:
		c, err := ctx.coefficients()
		if err != nil {
			return 0, err
		}
		return fitDirect(codec.DirectFromReal(x, c), mask)

	case KindLinear11:
		l, ok := codec.Linear11FromReal(x)
		if !ok {
			return 0, ErrValueOutOfRange
		}
		return fit(uint64(l), mask)

	case KindScaled:
		v := math.Round(float64(x) / float64(f.Scale))
		if math.IsNaN(v) || v < 0 || v > float64(mask) {
			return 0, ErrValueOutOfRange
		}
		return uint64(v), nil

	case KindVOut:
		m, err := ctx.vOutMode()
		if err != nil {
			return 0, err
		}
		switch m.Mode() {
		case VOutLinear:
			u, ok := codec.ULinear16FromReal(x, m.Parameter())
			if !ok {
				return 0, ErrValueOutOfRange
			}
			return fit(uint64(u), mask)
		case VOutDirect:
			c, err := ctx.coefficients()
			if err != nil {
				return 0, err
			}
			return fitDirect(codec.DirectFromReal(x, c), mask)
		case VOutIEEEHalf:
			h, ok := codec.HalfFromReal(x)
			if !ok {
				return 0, ErrValueOutOfRange
			}
			return fit(uint64(h), mask)
		default:
			// VID codes are vendor tables, not reals
			if r.kind != ReplaceInteger {
				return 0, ErrInvalidReplacement
			}
			return unsigned()
		}
	}
	return 0, ErrInvalidReplacement
}

func fit(v, mask uint64) (uint64, error) {
	if v > mask {
		return 0, ErrValueOutOfRange
	}
	return v, nil
}

// fitDirect accepts the 16-bit wraparound of a full-width DIRECT field but
// rejects values a narrower field cannot hold.
func fitDirect(v codec.Direct, mask uint64) (uint64, error) {
	if mask >= 0xffff {
		return uint64(v), nil
	}
	return fit(uint64(v), mask)
}

// Interpret decodes every field, most significant first, and passes each to
// fn. Storage is not modified.
func (d *Data) Interpret(p Provider, fn func(f *Field, v Value)) error {
	if d.cmd == nil {
		return ErrInvalidCode
	}
	for i := range d.cmd.Fields {
		f := &d.cmd.Fields[i]
		ctx := fieldContext{p: p, code: d.cmd.Code, f: f}
		v, err := d.decode(f, &ctx)
		if err != nil {
			return err
		}
		fn(f, v)
	}
	return nil
}

// Get decodes a single field by name.
func (d *Data) Get(p Provider, name string) (Value, error) {
	if d.cmd == nil {
		return Value{}, ErrInvalidCode
	}
	f, ok := d.cmd.Field(name)
	if !ok {
		return Value{}, &FieldError{Command: d.cmd.Name, Field: name, Err: ErrInvalidField}
	}
	ctx := fieldContext{p: p, code: d.cmd.Code, f: f}
	return d.decode(f, &ctx)
}

// Mutate offers every field, most significant first, to fn along with its
// current value. When fn returns a replacement and true, the replacement is
// checked against the field and written in place.
//
// Mutate stops at the first failing field and returns its error. Fields
// replaced before the failure stay replaced; callers that need all or
// nothing should snapshot the Data and restore it on error.
func (d *Data) Mutate(p Provider, fn func(f *Field, v Value) (Replacement, bool)) error {
	if d.cmd == nil {
		return ErrInvalidCode
	}
	for i := range d.cmd.Fields {
		f := &d.cmd.Fields[i]
		ctx := fieldContext{p: p, code: d.cmd.Code, f: f}
		v, err := d.decode(f, &ctx)
		if err != nil {
			return err
		}
		r, ok := fn(f, v)
		if !ok {
			continue
		}
		raw, err := d.encode(f, r, &ctx)
		if err != nil {
			return &FieldError{Command: d.cmd.Name, Field: f.Name, Replacement: &r, Err: err}
		}
		d.setBits(f, raw)
	}
	return nil
}

// Set replaces a single field by name.
func (d *Data) Set(p Provider, name string, r Replacement) error {
	if d.cmd == nil {
		return ErrInvalidCode
	}
	f, ok := d.cmd.Field(name)
	if !ok {
		return &FieldError{Command: d.cmd.Name, Field: name, Replacement: &r, Err: ErrInvalidField}
	}
	ctx := fieldContext{p: p, code: d.cmd.Code, f: f}
	raw, err := d.encode(f, r, &ctx)
	if err != nil {
		return &FieldError{Command: d.cmd.Name, Field: f.Name, Replacement: &r, Err: err}
	}
	d.setBits(f, raw)
	return nil
}

// Sentinels calls fn for each named value of the enumerated field at pos.
func (d *Data) Sentinels(pos Bitpos, fn func(s Sentinel)) error {
	if d.cmd == nil {
		return ErrInvalidCode
	}
	return d.cmd.Sentinels(pos, fn)
}

// Sentinels calls fn for each named value of the enumerated field at pos.
func (c *Command) Sentinels(pos Bitpos, fn func(s Sentinel)) error {
	f, ok := c.FieldAt(pos)
	if !ok || f.Kind != KindSentinel {
		return &FieldError{Command: c.Name, Field: bitName(pos), Err: ErrInvalidField}
	}
	for _, s := range f.Sentinels {
		fn(s)
	}
	return nil
}

func bitName(pos Bitpos) string {
	return "bit " + strconv.Itoa(int(pos))
}
