package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/render"
)

type decodeFlags struct {
	format string
}

func newDecodeCmd(global *globalFlags) *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode <command> <hex>...",
		Short: "Interpret command data as fields",
		Long: `Decode a command's data bytes and print every field, most significant first.

Bytes are given in bus order (low byte first). VOUT-relative fields use
--vout-mode or the configured vout_mode; DIRECT fields use the device's
coefficients or those in the config file.`,
		Example: `  pmbus decode OPERATION 0x84
  pmbus decode VOUT_COMMAND 63 02 --vout-mode 0x17
  pmbus decode READ_VIN 6d07 --device ADM1272 --format json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, global, flags, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: text, json, yaml or cbor (default from config)")

	return cmd
}

func runDecode(cmd *cobra.Command, global *globalFlags, flags *decodeFlags, codeArg string, hexArgs []string) error {
	payload, err := parsePayload(hexArgs)
	if err != nil {
		return err
	}

	e, err := setup(cmd, global)
	if err != nil {
		return err
	}
	defer e.close()

	format := e.cfg.Output.Format
	if flags.format != "" {
		format = flags.format
	}
	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}

	_, c, err := e.command(codeArg)
	if err != nil {
		return err
	}
	e.log.LogHex(c.Name, payload)

	d, err := pmbus.FromSlice(c, payload)
	if err == nil {
		var out *render.Decoded
		out, err = render.Build(&d, e.params)
		if err == nil {
			e.log.LogDecode(fmt.Sprint(e.resolver), c.Name, payload, len(out.Fields), nil)
			return render.Write(cmd.OutOrStdout(), out, f)
		}
	}
	e.log.LogDecode(fmt.Sprint(e.resolver), c.Name, payload, 0, err)
	return errors.WrapEngineError(err, fmt.Sprint(e.resolver), c.Name)
}
