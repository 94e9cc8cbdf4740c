package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/render"
)

type setFlags struct {
	quiet bool
}

func newSetCmd(global *globalFlags) *cobra.Command {
	flags := &setFlags{}

	cmd := &cobra.Command{
		Use:   "set <command> <hex> <field=value>...",
		Short: "Rewrite fields of command data",
		Long: `Replace fields of a command's data and print the new bytes.

Values are sentinel names (On, VOUT_MARGIN_HIGH), true/false, integers
(decimal or 0x hex) or real numbers in the field's unit. Fields are
applied most significant first; if one fails the earlier ones are kept
and the partly rewritten bytes are still printed.`,
		Example: `  pmbus set OPERATION 0x04 OnOffState=On
  pmbus set VOUT_COMMAND 6302 Voltage=1.2 --vout-mode 0x97
  pmbus set PMON_CONFIG 2fb8 VIAveraging=Samples16 --device ADM1272`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, global, flags, args)
		},
	}

	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Print only the new bytes")

	return cmd
}

func runSet(cmd *cobra.Command, global *globalFlags, flags *setFlags, args []string) error {
	// the payload runs up to the first assignment
	split := 1
	for split < len(args) && !strings.Contains(args[split], "=") {
		split++
	}
	if split == 1 {
		return fmt.Errorf("missing payload")
	}
	if split == len(args) {
		return fmt.Errorf("missing field=value")
	}
	payload, err := parsePayload(args[1:split])
	if err != nil {
		return err
	}
	assignments, err := parseAssignments(args[split:])
	if err != nil {
		return err
	}

	e, err := setup(cmd, global)
	if err != nil {
		return err
	}
	defer e.close()

	code, c, err := e.command(args[0])
	if err != nil {
		return err
	}

	// convert every value before touching the payload
	replacements := make(map[string]pmbus.Replacement, len(assignments))
	for _, a := range assignments {
		f, ok := c.Field(a.field)
		if !ok {
			return errors.WrapEngineError(&pmbus.FieldError{Command: c.Name, Field: a.field, Err: pmbus.ErrInvalidField},
				fmt.Sprint(e.resolver), c.Name)
		}
		r, err := replacement(f, a.value)
		if err != nil {
			return err
		}
		replacements[f.Name] = r
	}

	e.log.LogHex(c.Name+" before", payload)
	mutateErr := device.Mutate(e.resolver, code, payload, e.params, func(f *pmbus.Field, _ pmbus.Value) (pmbus.Replacement, bool) {
		r, ok := replacements[f.Name]
		return r, ok
	})
	e.log.LogHex(c.Name+" after", payload)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, hex.EncodeToString(payload))
	if !flags.quiet && mutateErr == nil {
		d, err := pmbus.FromSlice(c, payload)
		if err != nil {
			return err
		}
		decoded, err := render.Build(&d, e.params)
		if err != nil {
			return errors.WrapEngineError(err, fmt.Sprint(e.resolver), c.Name)
		}
		fmt.Fprint(out, render.Diagram(decoded))
	}
	return errors.WrapEngineError(mutateErr, fmt.Sprint(e.resolver), c.Name)
}
