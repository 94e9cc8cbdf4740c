package codec

// PMBus numeric data formats (PMBus 1.3 Part II, Sec. 7 and 8).
//
// Every codec maps a 16-bit wire word to a real value and back:
//   DIRECT     X = (Y * 10^-R - b) / m      coefficients supplied by the caller
//   LINEAR11   X = Y * 2^N                  N (5 bit) and Y (11 bit) share the word
//   ULINEAR16  X = V * 2^N                  N comes from VOUT_MODE
//   IEEE half  binary16                     VOUT_MODE mode 3
//
// None of the codecs keep state.

import (
	"math"

	"github.com/x448/float16"
)

// Coefficients are the DIRECT format coefficients. Actual values depend on
// the device and the measured condition.
type Coefficients struct {
	M int32 // slope, two bytes signed off the wire but may be adjusted upward
	B int16 // offset
	R int8  // decimal exponent
}

// Direct is a word in the DIRECT data format.
type Direct uint16

// Real converts the word to a real value. The word is interpreted as signed.
func (d Direct) Real(c Coefficients) float32 {
	y := float64(int16(d))
	return float32((y*math.Pow10(-int(c.R)) - float64(c.B)) / float64(c.M))
}

// DirectFromReal encodes x. Values outside the 16-bit range wrap, as they do
// on the device.
func DirectFromReal(x float32, c Coefficients) Direct {
	y := (float64(c.M)*float64(x) + float64(c.B)) * math.Pow10(int(c.R))
	return Direct(uint16(int64(math.Round(y))))
}

// LINEAR11 layout:
//
//	|<------------ high byte ------------>|<--------- low byte ---------->|
//	| 7 | 6 | 5 | 4 | 3 |     | 2 | 1 | 0 | 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 |
//	|<------- N ------->|     |<------------------- Y ------------------->|
const (
	Linear11MantissaWidth = 11
	Linear11MantissaMax   = (1 << (Linear11MantissaWidth - 1)) - 1
	Linear11MantissaMin   = -(1 << (Linear11MantissaWidth - 1))
	linear11MantissaMask  = (1 << Linear11MantissaWidth) - 1

	Linear11ExponentWidth = 5
	Linear11ExponentMax   = (1 << (Linear11ExponentWidth - 1)) - 1
	Linear11ExponentMin   = -(1 << (Linear11ExponentWidth - 1))
	linear11ExponentMask  = (1 << Linear11ExponentWidth) - 1
)

// Linear11 is a word in the LINEAR11 data format.
type Linear11 uint16

// Exponent returns the sign-extended 5-bit exponent N.
func (l Linear11) Exponent() int8 {
	return int8(int16(l) >> Linear11MantissaWidth)
}

// Mantissa returns the sign-extended 11-bit mantissa Y.
func (l Linear11) Mantissa() int16 {
	return int16(uint16(l)<<Linear11ExponentWidth) >> Linear11ExponentWidth
}

// Real converts the word to a real value.
func (l Linear11) Real() float32 {
	return float32(math.Ldexp(float64(l.Mantissa()), int(l.Exponent())))
}

// Linear11FromReal encodes x using the exponent that keeps the most mantissa
// bits. It reports false when that exponent falls outside the 5-bit signed
// range, which includes zero and magnitudes below the finest step.
func Linear11FromReal(x float32) (Linear11, bool) {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	var ratio float64
	if v >= 0 {
		ratio = v / Linear11MantissaMax
	} else {
		ratio = v / Linear11MantissaMin
	}
	if ratio <= 0 {
		return 0, false
	}

	n := int(math.Ceil(math.Log2(ratio)))
	if n < Linear11ExponentMin {
		return 0, false
	}

	y := math.Round(math.Ldexp(v, -n))
	if y > Linear11MantissaMax || y < Linear11MantissaMin {
		// log2 landed a hair low; the next exponent always fits
		n++
		y = math.Round(math.Ldexp(v, -n))
	}
	if n > Linear11ExponentMax {
		return 0, false
	}

	high := uint16(n&linear11ExponentMask) << Linear11MantissaWidth
	low := uint16(int16(y)) & linear11MantissaMask
	return Linear11(high | low), true
}

// ULinear16 is an unsigned mantissa whose exponent is carried out of band
// (VOUT_MODE).
type ULinear16 uint16

// Real converts the word to a real value using exponent exp.
func (u ULinear16) Real(exp int8) float32 {
	return float32(math.Ldexp(float64(u), int(exp)))
}

// ULinear16FromReal encodes x with exponent exp, rounding to the nearest
// step. It reports false when the result does not fit 16 unsigned bits.
func ULinear16FromReal(x float32, exp int8) (ULinear16, bool) {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	val := math.Round(math.Ldexp(v, -int(exp)))
	if val < 0 || val > math.MaxUint16 {
		return 0, false
	}
	return ULinear16(val), true
}

// Half is an IEEE 754 binary16 word, used when VOUT_MODE selects the
// half-precision format.
type Half uint16

// Real converts the word to a real value.
func (h Half) Real() float32 {
	return float16.Frombits(uint16(h)).Float32()
}

// HalfFromReal encodes x, reporting false when x overflows binary16.
func HalfFromReal(x float32) (Half, bool) {
	if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return 0, false
	}
	f := float16.Fromfloat32(x)
	if f.IsInf(0) {
		return 0, false
	}
	return Half(f.Bits()), true
}
