// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/modularity/community"
	"github.com/katalvlaran/modularity/graphio"
	"github.com/katalvlaran/modularity/matrix"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "MODSPLIT"

// ErrInvalidConfig reports a value that cannot be turned into an option.
var ErrInvalidConfig = errors.New("config: invalid value")

// AlgorithmSettings is the validated algorithm.* subtree.
type AlgorithmSettings struct {
	Refine          bool    `mapstructure:"refine"`
	Solver          string  `mapstructure:"solver" validate:"oneof=gonum jacobi"`
	JacobiTolerance float64 `mapstructure:"jacobi_tolerance" validate:"gt=0,lte=1"`
	JacobiMaxIter   int     `mapstructure:"jacobi_max_iter" validate:"gt=0"`
	MaxLevels       int     `mapstructure:"max_levels" validate:"gte=0"`
	Workers         int     `mapstructure:"workers" validate:"gte=0"`
}

// Settings is the decoded view of every key.
type Settings struct {
	Algorithm AlgorithmSettings `mapstructure:"algorithm"`
	Input     struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"input"`
	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
	Logging struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"logging"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config manages modsplit settings using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults and environment binding.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault("algorithm.refine", community.DefaultRefinement)
	v.SetDefault("algorithm.solver", matrix.DefaultSolver.String())
	v.SetDefault("algorithm.jacobi_tolerance", matrix.DefaultJacobiTolerance)
	v.SetDefault("algorithm.jacobi_max_iter", matrix.DefaultJacobiMaxIter)
	v.SetDefault("algorithm.max_levels", 0)
	v.SetDefault("algorithm.workers", community.DefaultWorkers)

	v.SetDefault("input.format", string(graphio.FormatAuto))
	v.SetDefault("output.format", string(graphio.FormatText))

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges the file at path over the defaults.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// Getters; every value already reflects file, environment and Set overrides.
func (c *Config) Refine() bool { return c.v.GetBool("algorithm.refine") }
func (c *Config) Solver() string { return c.v.GetString("algorithm.solver") }
func (c *Config) JacobiTolerance() float64 { return c.v.GetFloat64("algorithm.jacobi_tolerance") }
func (c *Config) JacobiMaxIter() int { return c.v.GetInt("algorithm.jacobi_max_iter") }
func (c *Config) MaxLevels() int { return c.v.GetInt("algorithm.max_levels") }
func (c *Config) Workers() int { return c.v.GetInt("algorithm.workers") }
func (c *Config) InputFormat() string { return c.v.GetString("input.format") }
func (c *Config) OutputFormat() string { return c.v.GetString("output.format") }
func (c *Config) LogLevel() string { return c.v.GetString("logging.level") }
func (c *Config) AllSettings() map[string]any { return c.v.AllSettings() }

// Set overrides key; flags use it so they win over file and environment.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Settings decodes and validates the current values. The solver name is
// normalized to lower case first.
func (c *Config) Settings() (*Settings, error) {
	var s Settings
	if err := c.v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: decode: %v: %w", err, ErrInvalidConfig)
	}
	s.Algorithm.Solver = strings.ToLower(strings.TrimSpace(s.Algorithm.Solver))
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("config: %v: %w", err, ErrInvalidConfig)
	}

	return &s, nil
}

// CreateLogger builds a console logger on stderr at the configured level.
func (c *Config) CreateLogger() zerolog.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is CreateLogger with an explicit sink. Unknown levels fall back
// to info; colors are used only when w is a terminal.
func (c *Config) LoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel()))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "modsplit").Logger()
}

// PartitionOptions converts the algorithm.* keys into community options and
// attaches logger. Invalid values yield ErrInvalidConfig instead of the
// panics the option constructors would raise.
func (c *Config) PartitionOptions(logger zerolog.Logger) ([]community.Option, error) {
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	alg := s.Algorithm
	solver, err := matrix.ParseSolver(alg.Solver)
	if err != nil {
		return nil, fmt.Errorf("algorithm.solver: %v: %w", err, ErrInvalidConfig)
	}

	return []community.Option{
		community.WithRefinement(alg.Refine),
		community.WithMaxLevels(alg.MaxLevels),
		community.WithWorkers(alg.Workers),
		community.WithLogger(logger),
		community.WithEigenOptions(
			matrix.WithSolver(solver),
			matrix.WithJacobiTolerance(alg.JacobiTolerance),
			matrix.WithJacobiMaxIter(alg.JacobiMaxIter),
		),
	}, nil
}

// Formats resolves input.format and output.format.
func (c *Config) Formats() (in, out graphio.Format, err error) {
	if in, err = graphio.ParseFormat(c.InputFormat()); err != nil {
		return "", "", fmt.Errorf("input.format: %w", err)
	}
	switch in {
	case graphio.FormatAuto, graphio.FormatGML, graphio.FormatEdgeList:
	default:
		return "", "", fmt.Errorf("input.format %q: %w", in, graphio.ErrUnsupportedFormat)
	}
	if out, err = graphio.ParseFormat(c.OutputFormat()); err != nil {
		return "", "", fmt.Errorf("output.format: %w", err)
	}
	switch out {
	case graphio.FormatAuto:
		out = graphio.FormatText
	case graphio.FormatText, graphio.FormatYAML, graphio.FormatJSON:
	default:
		return "", "", fmt.Errorf("output.format %q: %w", out, graphio.ErrUnsupportedFormat)
	}

	return in, out, nil
}
