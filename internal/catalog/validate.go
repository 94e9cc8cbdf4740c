package catalog

import (
	"fmt"
	"strings"

	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// ValidationError is a finding against one command of a catalog.
type ValidationError struct {
	Command string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Command, e.Field, e.Message)
}

// ValidationResult holds findings from Check.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if no errors were found.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// Check compares a compiled catalog against the standard command table.
// Layout problems stop New, so what remains here is mostly advisory.
func Check(c *Catalog) *ValidationResult {
	result := &ValidationResult{}
	c.Each(func(cmd *pmbus.Command) {
		checkCommand(cmd, result)
	})
	return result
}

func checkCommand(cmd *pmbus.Command, result *ValidationResult) {
	std := pmbus.CommandCode(cmd.Code)
	warn := func(field, format string, args ...any) {
		result.Warnings = append(result.Warnings, ValidationError{
			Command: cmd.String(), Field: field, Message: fmt.Sprintf(format, args...),
		})
	}

	switch {
	case std.IsReserved():
		warn("", "code is reserved by the standard")
	case !strings.HasPrefix(std.Name(), "MFR_SPECIFIC") && !strings.EqualFold(std.Name(), cmd.Name):
		warn("", "renames standard command %s", std.Name())
	}

	for _, op := range []pmbus.Operation{cmd.Read, cmd.Write} {
		if size := op.PayloadSize(); size != 0 && size != cmd.Width {
			result.Errors = append(result.Errors, ValidationError{
				Command: cmd.String(),
				Message: fmt.Sprintf("%s moves %d bytes but width is %d", op, size, cmd.Width),
			})
		}
	}

	for i := range cmd.Fields {
		f := &cmd.Fields[i]
		if f.Kind == pmbus.KindSentinel && len(f.Sentinels) == 0 {
			warn(f.Name, "sentinel field names no values")
		}
		if f.Kind.Physical() && f.Unit == units.None {
			warn(f.Name, "%s field has no unit", f.Kind)
		}
	}
}
