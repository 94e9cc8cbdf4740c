package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/catalog"
	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/pmbus"
)

func newCatalogCmd(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Command catalog operations",
		Long: `Validate, list and export command catalogs.

A catalog is a YAML or TOML file of command definitions laid over a base
device. Commands it does not define resolve through the base device.`,
	}

	cmd.AddCommand(newCatalogValidateCmd())
	cmd.AddCommand(newCatalogListCmd(global))
	cmd.AddCommand(newCatalogExportCmd(global))

	return cmd
}

// --- catalog validate ---

type catalogValidateFlags struct {
	strict bool
}

func newCatalogValidateCmd() *cobra.Command {
	flags := &catalogValidateFlags{}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog file",
		Long: `Load a catalog, compile every command and check it against the standard
command table. Errors fail validation; warnings fail it only with --strict.`,
		Example: `  pmbus catalog validate catalogs/board.yaml
  pmbus catalog validate board.toml --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogValidate(cmd, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Treat warnings as errors")

	return cmd
}

func runCatalogValidate(cmd *cobra.Command, flags *catalogValidateFlags, path string) error {
	c, err := catalog.LoadAndValidate(path)
	if err != nil {
		return errors.WrapCatalogError(err, path)
	}

	out := cmd.OutOrStdout()
	result := catalog.Check(c)
	n := 0
	c.Each(func(*pmbus.Command) { n++ })
	fmt.Fprintf(out, "%s: %d command(s) over %s\n", c, n, c.Base())

	for _, e := range result.Errors {
		fmt.Fprintf(out, "  ERROR: %s\n", e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  WARNING: %s\n", w.Error())
	}

	if !result.IsValid() {
		return fmt.Errorf("catalog validation failed: %d error(s)", len(result.Errors))
	}
	if flags.strict && len(result.Warnings) > 0 {
		return fmt.Errorf("catalog validation failed: %d warning(s) in strict mode", len(result.Warnings))
	}
	fmt.Fprintln(out, "OK")
	return nil
}

// --- catalog list ---

func newCatalogListCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalogs on the search path",
		Long:  `List the catalogs found in the directories named by catalog_paths in the config file.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogList(cmd, global)
		},
	}
}

func runCatalogList(cmd *cobra.Command, global *globalFlags) error {
	cfg, err := loadConfig(global)
	if err != nil {
		return err
	}

	paths, err := catalog.List(cfg.CatalogPaths)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(paths) == 0 {
		fmt.Fprintln(out, "No catalogs found.")
		return nil
	}
	for _, path := range paths {
		c, err := catalog.LoadAndValidate(path)
		if err != nil {
			fmt.Fprintf(out, "  %-32s INVALID: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "  %-32s %s (base %s)\n", path, c, c.Base())
	}
	return nil
}

// --- catalog export ---

type catalogExportFlags struct {
	output string
	format string
}

func newCatalogExportCmd(global *globalFlags) *cobra.Command {
	flags := &catalogExportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a built-in device as a catalog",
		Long: `Write the selected device's command definitions as a catalog. For Common
this is the whole standard table; for other devices only the commands that
differ from it, laid over Common.`,
		Example: `  pmbus catalog export --device TPS546B24A
  pmbus catalog export --device ADM1272 --output adm1272.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogExport(cmd, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Write to this file (format from its extension)")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Format when writing to stdout (yaml or toml)")

	return cmd
}

func runCatalogExport(cmd *cobra.Command, global *globalFlags, flags *catalogExportFlags) error {
	name := global.device
	if name == "" {
		cfg, err := loadConfig(global)
		if err != nil {
			return err
		}
		name = cfg.Device
	}
	d, err := device.ParseDevice(name)
	if err != nil {
		return err
	}

	file := catalog.Export(d)
	if flags.output != "" {
		if err := catalog.Save(flags.output, file); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d command(s) to %s\n", len(file.Commands), flags.output)
		return nil
	}

	var format catalog.Format
	switch flags.format {
	case "yaml", "yml":
		format = catalog.FormatYAML
	case "toml":
		format = catalog.FormatTOML
	default:
		return fmt.Errorf("invalid format %q (want yaml or toml)", flags.format)
	}
	return catalog.Encode(cmd.OutOrStdout(), file, format)
}
