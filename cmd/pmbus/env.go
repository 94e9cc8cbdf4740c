package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tturner/pmbus/internal/catalog"
	"github.com/tturner/pmbus/internal/config"
	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/logging"
	"github.com/tturner/pmbus/internal/pmbus"
)

type globalFlags struct {
	configPath string
	device     string
	catalog    string
	voutMode   string
	logLevel   string
	logFile    string
}

// env is what every data command needs: where codes resolve, how to decode
// and where to log.
type env struct {
	cfg      *config.Config
	resolver device.Resolver
	device   device.Device
	params   pmbus.Params
	log      *logging.Logger
}

func loadConfig(flags *globalFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.LoadConfig(flags.configPath, false)
	}
	return config.LoadOrDefault(config.DefaultPath)
}

func setup(cmd *cobra.Command, flags *globalFlags) (*env, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	// flags take precedence over the file
	if flags.device != "" {
		cfg.Device = flags.device
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Logging.File = flags.logFile
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLevel(cfg.Logging.Level)
	logger, err := logging.NewLoggerTo(level, cfg.Logging.File, cmd.ErrOrStderr(), cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, log: logger}
	e.device, _ = device.ParseDevice(cfg.Device)
	e.resolver = e.device

	if flags.catalog != "" {
		path, err := catalog.Find(flags.catalog, cfg.CatalogPaths)
		if err != nil {
			logger.Close()
			return nil, err
		}
		c, err := catalog.LoadAndValidate(path)
		if err != nil {
			logger.Close()
			return nil, errors.WrapCatalogError(err, path)
		}
		logger.Verbose("catalog %s from %s over %s", c, path, c.Base())
		e.resolver = c
		e.device = c.Base()
	}

	e.params, err = cfg.Params(e.resolver, e.device)
	if err != nil {
		logger.Close()
		return nil, err
	}

	// --vout-mode wins even over a part's fixed mode
	voutMode := cfg.VOutMode
	if flags.voutMode != "" {
		m, err := config.ParseVOutMode(flags.voutMode)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf("--vout-mode: %w", err)
		}
		e.params.VOut = pmbus.Mode(m)
		voutMode = flags.voutMode
	}

	configPath := flags.configPath
	if configPath == "" {
		if _, err := os.Stat(config.DefaultPath); err == nil {
			configPath = config.DefaultPath
		}
	}
	logger.LogStartup(fmt.Sprint(e.resolver), voutMode, configPath)
	return e, nil
}

func (e *env) close() {
	e.log.Close()
}

// command resolves a code argument and returns its definition.
func (e *env) command(arg string) (uint8, *pmbus.Command, error) {
	code, err := device.ParseCode(e.resolver, arg)
	if err != nil {
		return 0, nil, err
	}
	cmd := e.resolver.Lookup(code)
	if cmd == nil {
		name := e.resolver.Command(code).Name
		return code, nil, errors.WrapEngineError(
			fmt.Errorf("%v: %s: %w", e.resolver, name, pmbus.ErrInvalidCode),
			fmt.Sprint(e.resolver), name)
	}
	return code, cmd, nil
}
