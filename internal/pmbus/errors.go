package pmbus

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a payload does not match the
	// command's declared byte width.
	ErrInvalidLength = errors.New("invalid payload length")

	// ErrInvalidField is returned when a field name or bit position is not
	// declared by the command.
	ErrInvalidField = errors.New("invalid field")

	// ErrInvalidReplacement is returned when a replacement's kind does not
	// fit the target field.
	ErrInvalidReplacement = errors.New("invalid replacement")

	// ErrOverflowReplacement is returned when an integer replacement does
	// not fit the field's bit width.
	ErrOverflowReplacement = errors.New("replacement overflows field")

	// ErrValueOutOfRange is returned when a physical value has no encoding
	// in the field's numeric format.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidCode is returned when a device has no data definition for
	// a command code.
	ErrInvalidCode = errors.New("no data definition for command code")

	// ErrNoContext is returned when decoding needs VOUT_MODE or DIRECT
	// coefficients and the provider cannot supply them.
	ErrNoContext = errors.New("missing decode context")
)

// FieldError reports a failure tied to one field of a command.
type FieldError struct {
	Command     string
	Field       string
	Replacement *Replacement
	Err         error
}

func (e *FieldError) Error() string {
	if e.Replacement != nil {
		return fmt.Sprintf("%s.%s = %s: %v", e.Command, e.Field, e.Replacement, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Command, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// LengthError reports a payload of the wrong size for a command.
type LengthError struct {
	Command string
	Got     int
	Want    int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: payload is %d bytes, want %d", e.Command, e.Got, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }
