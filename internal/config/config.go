package config

// Configuration loading and validation for the pmbus tool

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tturner/pmbus/internal/codec"
	"github.com/tturner/pmbus/internal/commands/adm1272"
	"github.com/tturner/pmbus/internal/device"
	"github.com/tturner/pmbus/internal/errors"
	"github.com/tturner/pmbus/internal/logging"
	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/render"
)

// DefaultPath is where the tool looks for its configuration.
const DefaultPath = "pmbus.yaml"

// Config represents the tool configuration
type Config struct {
	Device       string              `yaml:"device"`
	VOutMode     string              `yaml:"vout_mode,omitempty"`
	Coefficients []CoefficientConfig `yaml:"coefficients,omitempty"`
	ADM1272      *ADM1272Config      `yaml:"adm1272,omitempty"`
	CatalogPaths []string            `yaml:"catalog_paths,omitempty"`
	Output       OutputConfig        `yaml:"output"`
	Logging      LoggingConfig       `yaml:"logging"`
}

// CoefficientConfig supplies DIRECT coefficients for one command, or for
// one field of it when Field is set.
type CoefficientConfig struct {
	Command string `yaml:"command"`
	Field   string `yaml:"field,omitempty"`
	M       int32  `yaml:"m"`
	B       int16  `yaml:"b"`
	R       int8   `yaml:"r"`
}

func (c CoefficientConfig) coefficients() codec.Coefficients {
	return codec.Coefficients{M: c.M, B: c.B, R: c.R}
}

// ADM1272Config describes the strapping of an ADM1272.
type ADM1272Config struct {
	VoltageRange string  `yaml:"voltage_range"`
	SenseRange   string  `yaml:"sense_range"`
	RSense       float64 `yaml:"rsense_mohm"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// CreateDefaultConfig creates a default configuration
func CreateDefaultConfig() *Config {
	return &Config{
		Device:       device.Common.String(),
		VOutMode:     "0x17",
		CatalogPaths: []string{"catalogs"},
		Output:       OutputConfig{Format: string(render.FormatText)},
		Logging:      LoggingConfig{Level: logging.LogLevelInfo.String()},
	}
}

// WriteDefaultConfig writes a default configuration to a file
func WriteDefaultConfig(path string) error {
	cfg := CreateDefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// LoadConfig loads a configuration from a YAML file.
// If the file doesn't exist and autoCreate is true, it will create a default config file
func LoadConfig(path string, autoCreate bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.WrapConfigError(fmt.Errorf("read config file: %w", err), path)
		}
		if !autoCreate {
			return nil, errors.WrapConfigError(fmt.Errorf("config file not found: %s", path), path)
		}
		if err := WriteDefaultConfig(path); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapConfigError(fmt.Errorf("read created config file: %w", err), path)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("parse YAML: %w", err), path)
	}
	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, errors.WrapConfigError(fmt.Errorf("validate config: %w", err), path)
	}
	return &cfg, nil
}

// LoadOrDefault loads path, or returns the defaults when it does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return CreateDefaultConfig(), nil
	}
	return LoadConfig(path, false)
}

func applyDefaults(cfg *Config) {
	if cfg.Device == "" {
		cfg.Device = device.Common.String()
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = string(render.FormatText)
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = logging.LogLevelInfo.String()
	}
}

// ValidateConfig validates a configuration
func ValidateConfig(cfg *Config) error {
	if _, err := device.ParseDevice(cfg.Device); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	if cfg.VOutMode != "" {
		if _, err := ParseVOutMode(cfg.VOutMode); err != nil {
			return fmt.Errorf("vout_mode: %w", err)
		}
	}
	for i, c := range cfg.Coefficients {
		if strings.TrimSpace(c.Command) == "" {
			return fmt.Errorf("coefficients[%d]: command is required", i)
		}
		if c.M == 0 {
			return fmt.Errorf("coefficients[%d] (%s): m must be non-zero", i, c.Command)
		}
	}
	if cfg.ADM1272 != nil {
		if _, err := cfg.ADM1272.config(); err != nil {
			return fmt.Errorf("adm1272: %w", err)
		}
	}
	if _, err := render.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (a *ADM1272Config) config() (adm1272.Config, error) {
	c := adm1272.DefaultConfig
	switch strings.ToUpper(strings.TrimSpace(a.VoltageRange)) {
	case "", "100V":
		c.Voltage = adm1272.Range100V
	case "60V":
		c.Voltage = adm1272.Range60V
	default:
		return c, fmt.Errorf("voltage_range %q: want 60V or 100V", a.VoltageRange)
	}
	switch strings.ToLower(strings.TrimSpace(a.SenseRange)) {
	case "", "30mv":
		c.Sense = adm1272.Sense30mV
	case "15mv":
		c.Sense = adm1272.Sense15mV
	default:
		return c, fmt.Errorf("sense_range %q: want 15mV or 30mV", a.SenseRange)
	}
	if a.RSense < 0 {
		return c, fmt.Errorf("rsense_mohm must not be negative")
	}
	if a.RSense > 0 {
		c.RSense = a.RSense
	}
	return c, nil
}

// ParseVOutMode reads a VOUT_MODE byte given as hex or decimal ("0x97"),
// or as mode and parameter ("linear:-9", "direct", "vid:1", "ieee").
func ParseVOutMode(s string) (pmbus.VOutMode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 0, 8); err == nil {
		return pmbus.VOutMode(n), nil
	}

	name, param, _ := strings.Cut(s, ":")
	var kind pmbus.VOutModeKind
	switch strings.ToLower(name) {
	case "linear":
		kind = pmbus.VOutLinear
	case "vid":
		kind = pmbus.VOutVID
	case "direct":
		kind = pmbus.VOutDirect
	case "ieee", "half":
		kind = pmbus.VOutIEEEHalf
	default:
		return 0, fmt.Errorf("invalid VOUT_MODE %q", s)
	}

	var p int64
	if param != "" {
		var err error
		p, err = strconv.ParseInt(param, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid VOUT_MODE parameter %q", param)
		}
	}
	return pmbus.NewVOutMode(kind, int8(p))
}

// Params builds the decode context for dev: the device's own context, then
// the ADM1272 strapping, VOUT_MODE and per-command coefficients from the
// file. The file's VOUT_MODE applies only to parts without a fixed one.
// Coefficient commands are resolved against r.
func (c *Config) Params(r device.Resolver, dev device.Device) (pmbus.Params, error) {
	p := dev.Context()

	if c.ADM1272 != nil && dev == device.ADM1272 {
		a, err := c.ADM1272.config()
		if err != nil {
			return p, err
		}
		p.Direct = a.Coefficients
	}

	if c.VOutMode != "" && p.VOut == nil {
		m, err := ParseVOutMode(c.VOutMode)
		if err != nil {
			return p, err
		}
		p.VOut = pmbus.Mode(m)
	}

	if len(c.Coefficients) == 0 {
		return p, nil
	}

	byCode := make(map[uint8][]CoefficientConfig)
	for _, cc := range c.Coefficients {
		code, err := device.ParseCode(r, cc.Command)
		if err != nil {
			return p, fmt.Errorf("coefficients: %w", err)
		}
		byCode[code] = append(byCode[code], cc)
	}

	fallback := p.Direct
	p.Direct = func(code uint8, f *pmbus.Field) (codec.Coefficients, error) {
		for _, cc := range byCode[code] {
			if cc.Field == "" || strings.EqualFold(cc.Field, f.Name) {
				return cc.coefficients(), nil
			}
		}
		if fallback != nil {
			return fallback(code, f)
		}
		return codec.Coefficients{}, fmt.Errorf("no coefficients for 0x%02X %s: %w", code, f.Name, pmbus.ErrNoContext)
	}
	return p, nil
}
