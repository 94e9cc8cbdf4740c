package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "pmbus",
		Short: "Decode and rewrite PMBus command data",
		Long: `pmbus interprets the data bytes of PMBus commands as named fields and
physical values, and rewrites fields in place.

Payloads are given as hex in bus order (low byte first), e.g. "63 02".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default pmbus.yaml when present)")
	pf.StringVarP(&flags.device, "device", "d", "", "Device (Common, ADM1272, BMR480, BMR491, ISL68224, TPS546B24A)")
	pf.StringVar(&flags.catalog, "catalog", "", "Catalog name or file to overlay on its base device")
	pf.StringVar(&flags.voutMode, "vout-mode", "", "VOUT_MODE byte (0x17) or mode:parameter (linear:-9)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (silent, error, info, verbose, debug)")
	pf.StringVar(&flags.logFile, "log-file", "", "Also write log messages to this file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newDevicesCmd())
	rootCmd.AddCommand(newCommandsCmd(flags))
	rootCmd.AddCommand(newFieldsCmd(flags))
	rootCmd.AddCommand(newSentinelsCmd(flags))
	rootCmd.AddCommand(newDecodeCmd(flags))
	rootCmd.AddCommand(newSetCmd(flags))
	rootCmd.AddCommand(newCatalogCmd(flags))
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != rootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Usage:\n  %s <command> [arguments] [options]\n\n", cmd.Name())
		fmt.Fprintf(out, "Available Commands:\n")
		for _, subCmd := range cmd.Commands() {
			if !subCmd.Hidden && subCmd.Name() != "help" && subCmd.Name() != "completion" {
				fmt.Fprintf(out, "  %-15s %s\n", subCmd.Name(), subCmd.Short)
			}
		}
		fmt.Fprintf(out, "\nUse \"%s help <command>\" for more information about a command.\n", cmd.Name())
	})

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pmbus version %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "date: %s\n", date)
		},
	}
}
