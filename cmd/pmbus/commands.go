package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/pmbus"
)

func newDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List supported devices",
		Long:  `List the devices whose command data can be interpreted, with the number of commands each one defines differently from the standard.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %s\n", "DEVICE", "OVERRIDES")
			device.Devices(func(d device.Device) {
				n := 0
				d.Overrides(func(*pmbus.Command) { n++ })
				fmt.Fprintf(out, "%-12s %d\n", d, n)
			})
			return nil
		},
	}
}

type commandsFlags struct {
	all bool
}

func newCommandsCmd(global *globalFlags) *cobra.Command {
	flags := &commandsFlags{}

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the commands a device defines data for",
		Long: `List every command code with a data definition on the selected device
(or catalog). Device-specific definitions are marked with '*'.

Use --all to include codes that have a name but no data definition.`,
		Example: `  pmbus commands
  pmbus commands --device TPS546B24A
  pmbus commands --catalog board.yaml --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands(cmd, global, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "Include codes without a data definition")

	return cmd
}

func runCommands(cmd *cobra.Command, global *globalFlags, flags *commandsFlags) error {
	e, err := setup(cmd, global)
	if err != nil {
		return err
	}
	defer e.close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-26s %-10s %-11s %s\n", "CODE", "NAME", "READ", "WRITE", "BYTES")
	for code := 0; code <= 0xff; code++ {
		c := e.resolver.Lookup(uint8(code))
		if c == nil {
			if !flags.all {
				continue
			}
			info := e.resolver.Command(uint8(code))
			fmt.Fprintf(out, "  0x%02X  %-26s %-10s %-11s %s\n", code, info.Name, info.Read, info.Write, "-")
			continue
		}
		mark := " "
		if c != device.Common.Lookup(uint8(code)) {
			mark = "*"
		}
		fmt.Fprintf(out, "%s 0x%02X  %-26s %-10s %-11s %d\n", mark, code, c.Name, c.Read, c.Write, c.Width)
	}
	return nil
}

func newFieldsCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <command>",
		Short: "List the fields of a command",
		Long: `List the fields of a command's data, most significant first.

The command is a code (0xD4) or a name (PMON_CONFIG).`,
		Example: `  pmbus fields OPERATION
  pmbus fields 0xD4 --device ADM1272`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, global, args[0])
		},
	}
}

func runFields(cmd *cobra.Command, global *globalFlags, arg string) error {
	e, err := setup(cmd, global)
	if err != nil {
		return err
	}
	defer e.close()

	_, c, err := e.command(arg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (0x%02X) %d byte(s), read %s, write %s\n", c.Name, c.Code, c.Width, c.Read, c.Write)
	for i := range c.Fields {
		f := &c.Fields[i]
		line := fmt.Sprintf("  %-8s %-28s %s", bitRange(f), f.Name, f.Kind)
		if f.Unit.Symbol() != "" {
			line += " (" + f.Unit.Symbol() + ")"
		}
		if len(f.Sentinels) > 0 {
			line += fmt.Sprintf(", %d values", len(f.Sentinels))
		}
		if f.Desc != "" {
			line += "  " + f.Desc
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func newSentinelsCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sentinels <command> <bitpos>",
		Short: "List the named values of a field",
		Long: `List the named values of the field whose least significant bit is
<bitpos>. Boolean fields report nothing.`,
		Example: `  pmbus sentinels OPERATION 4
  pmbus sentinels PMON_CONFIG 11 --device ADM1272`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSentinels(cmd, global, args[0], args[1])
		},
	}
}

func runSentinels(cmd *cobra.Command, global *globalFlags, codeArg, posArg string) error {
	pos, err := strconv.ParseUint(posArg, 10, 8)
	if err != nil {
		return fmt.Errorf("invalid bit position %q", posArg)
	}

	e, err := setup(cmd, global)
	if err != nil {
		return err
	}
	defer e.close()

	code, c, err := e.command(codeArg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = device.Sentinels(e.resolver, code, pmbus.Bitpos(pos), func(s pmbus.Sentinel) {
		fmt.Fprintf(out, "  0x%X  %s\n", s.Raw, s.Name)
	})
	return errors.WrapEngineError(err, fmt.Sprint(e.resolver), c.Name)
}

func bitRange(f *pmbus.Field) string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Pos)
	}
	return fmt.Sprintf("[%d:%d]", int(f.Pos)+int(f.Width)-1, f.Pos)
}
