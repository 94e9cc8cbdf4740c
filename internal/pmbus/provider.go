package pmbus

import "github.com/tturner/pmbus/internal/codec"

// Provider supplies the out-of-band context some fields need to decode.
// The engine calls it only for fields that need it, and at most once per
// field per Interpret or Mutate call. Errors are returned to the caller as
// is.
type Provider interface {
	VOutMode() (VOutMode, error)
	Coefficients(code uint8, f *Field) (codec.Coefficients, error)
}

// ModeFunc returns the active VOUT_MODE.
type ModeFunc func() (VOutMode, error)

// CoefficientsFunc returns DIRECT coefficients for a field of a command.
type CoefficientsFunc func(code uint8, f *Field) (codec.Coefficients, error)

// Params adapts plain functions to a Provider. A nil function yields
// ErrNoContext.
type Params struct {
	VOut   ModeFunc
	Direct CoefficientsFunc
}

func (p Params) VOutMode() (VOutMode, error) {
	if p.VOut == nil {
		return 0, ErrNoContext
	}
	return p.VOut()
}

func (p Params) Coefficients(code uint8, f *Field) (codec.Coefficients, error) {
	if p.Direct == nil {
		return codec.Coefficients{}, ErrNoContext
	}
	return p.Direct(code, f)
}

// NoContext is a Provider for payloads whose fields need no context.
var NoContext Provider = Params{}

// Mode returns a ModeFunc for a fixed VOUT_MODE.
func Mode(m VOutMode) ModeFunc {
	return func() (VOutMode, error) { return m, nil }
}

// Fixed returns a CoefficientsFunc that always yields c.
func Fixed(c codec.Coefficients) CoefficientsFunc {
	return func(uint8, *Field) (codec.Coefficients, error) { return c, nil }
}
