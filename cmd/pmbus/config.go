package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration file operations",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

type configInitFlags struct {
	path  string
	force bool
}

func newConfigInitCmd() *cobra.Command {
	flags := &configInitFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Example: `  pmbus config init
  pmbus config init --path lab.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.path, "path", config.DefaultPath, "Where to write the config")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, flags *configInitFlags) error {
	if _, err := os.Stat(flags.path); err == nil && !flags.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", flags.path)
	}
	if err := config.WriteDefaultConfig(flags.path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", flags.path)
	return nil
}
