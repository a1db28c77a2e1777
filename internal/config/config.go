// Package config loads settings for the cramer command from a TOML file and
// LINALG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatASCII = "ascii"
	FormatLaTeX = "latex"
)

// Solver methods.
const (
	MethodCramer = "cramer"
	MethodLU     = "lu"
)

// ErrInvalidConfig is returned when a loaded value is outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds application configuration.
type Config struct {
	Output OutputConfig
	Solver SolverConfig
	Log    LogConfig
}

// OutputConfig controls how matrices and solutions are printed.
type OutputConfig struct {
	Format    string
	Precision int // digits after the point for solutions; -1 = shortest exact
}

// SolverConfig selects and tunes the solver.
type SolverConfig struct {
	Method        string
	PivotRow      int  `mapstructure:"pivot_row"`
	MaxOrder      int  `mapstructure:"max_order"`
	AllowSingular bool `mapstructure:"allow_singular"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix LINALG_.
// The file is LINALG_CONFIG if set, otherwise $HOME/.config/linalg/config.toml;
// a missing file is not an error. Values are not validated here so that
// command-line flags can still replace them; call Validate once all layers
// are applied.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("output.format", FormatASCII)
	v.SetDefault("output.precision", -1)
	v.SetDefault("solver.method", MethodCramer)
	v.SetDefault("solver.pivot_row", 0)
	v.SetDefault("solver.max_order", 10)
	v.SetDefault("solver.allow_singular", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LINALG_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "linalg"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LINALG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Validate checks enumerated and ranged fields.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatASCII, FormatLaTeX:
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalidConfig)
	}
	switch c.Solver.Method {
	case MethodCramer, MethodLU:
	default:
		return fmt.Errorf("solver.method %q: %w", c.Solver.Method, ErrInvalidConfig)
	}
	if c.Solver.PivotRow < 0 {
		return fmt.Errorf("solver.pivot_row %d: %w", c.Solver.PivotRow, ErrInvalidConfig)
	}
	if c.Solver.MaxOrder < 1 {
		return fmt.Errorf("solver.max_order %d: %w", c.Solver.MaxOrder, ErrInvalidConfig)
	}
	if c.Output.Precision < -1 {
		return fmt.Errorf("output.precision %d: %w", c.Output.Precision, ErrInvalidConfig)
	}

	return nil
}
