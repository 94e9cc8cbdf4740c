package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/tturner/pmbus/internal/pmbus"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapEngineError wraps a decode or rewrite failure with the device and
// command it concerned.
func WrapEngineError(err error, device, command string) error {
	if err == nil {
		return nil
	}

	e := UserFriendlyError{
		Message: fmt.Sprintf("%s on %s failed", command, device),
		Err:     err,
	}
	e.Reason, e.Hint, e.Try = explainEngine(err, device, command)
	return e
}

// WrapCatalogError wraps catalog load and validation errors.
func WrapCatalogError(err error, path string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Catalog error in %s", path),
		Reason:  err.Error(),
		Hint:    "Fields are listed by least significant bit and may not overlap or exceed the command width",
		Try:     fmt.Sprintf("pmbus catalog validate %s", path),
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Remove the file to fall back to defaults, or write a fresh one",
		Try:     "pmbus config init --force",
		Err:     err,
	}
}

func explainEngine(err error, device, command string) (reason, hint, try string) {
	var lenErr *pmbus.LengthError
	var fieldErr *pmbus.FieldError

	switch {
	case stderrors.As(err, &lenErr):
		reason = fmt.Sprintf("Payload is %d bytes but %s takes %d", lenErr.Got, lenErr.Command, lenErr.Want)
		hint = "Give the data bytes only, without the command code or PEC byte"
	case stderrors.Is(err, pmbus.ErrInvalidCode):
		reason = fmt.Sprintf("%s has no data definition for %s", device, command)
		hint = "Send-byte and block commands carry no fixed-width data"
		try = fmt.Sprintf("pmbus commands --device %s", device)
	case stderrors.Is(err, pmbus.ErrNoContext):
		reason = "Decoding needs context the command line did not supply"
		hint = "VOUT values need --vout-mode; DIRECT values need coefficients in the config file"
	case stderrors.As(err, &fieldErr):
		reason = fieldReason(fieldErr)
		hint = "Earlier fields in the same command may already have been rewritten"
		try = fmt.Sprintf("pmbus fields --device %s %s", device, command)
	default:
		reason = "Command data could not be processed"
	}
	return reason, hint, try
}

func fieldReason(e *pmbus.FieldError) string {
	value := "The value"
	if e.Replacement != nil {
		value = e.Replacement.String()
	}
	switch {
	case stderrors.Is(e, pmbus.ErrInvalidReplacement):
		return fmt.Sprintf("Field %s cannot take %s", e.Field, value)
	case stderrors.Is(e, pmbus.ErrOverflowReplacement):
		return fmt.Sprintf("%s does not fit in field %s", value, e.Field)
	case stderrors.Is(e, pmbus.ErrValueOutOfRange):
		return fmt.Sprintf("%s is outside what field %s can encode", value, e.Field)
	case stderrors.Is(e, pmbus.ErrInvalidField):
		return fmt.Sprintf("%s has no field %s", e.Command, e.Field)
	default:
		return fmt.Sprintf("Field %s could not be set", e.Field)
	}
}
