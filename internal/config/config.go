// Package config provides the configuration management for the fibmodes
// application. It defines the configuration structure, parses command-line
// arguments, layers environment variables and an optional config file under
// them, and validates the result.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/ui"
)

// EnvPrefix is the prefix for all environment variables used by fibmodes.
const EnvPrefix = "FIBMODES_"

// Default configuration values.
const (
	// DefaultN is the default number of terms to iterate.
	DefaultN = fibonacci.DefaultTermCount
	// DefaultMode is the execution mode used when none is given.
	DefaultMode = "await-task"
	// DefaultTimeout bounds how long the caller waits for a dispatch.
	DefaultTimeout = time.Minute
	// DefaultLogLevel keeps the console quiet unless something is worth a warning.
	DefaultLogLevel = "warn"
	// DefaultTheme is the color theme for terminal output.
	DefaultTheme = "dark"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the number of terms to iterate.
	N uint64 `mapstructure:"n"`
	// Mode is an execution mode name, or "all" to compare every mode.
	Mode string `mapstructure:"mode"`
	// Timeout bounds the wait for a result. It never cancels the computation.
	Timeout time.Duration `mapstructure:"timeout"`
	// Quiet mode prints only the value, for scripting.
	Quiet bool `mapstructure:"quiet"`
	// OutputFile, if specified, saves the result to this file path.
	OutputFile string `mapstructure:"output"`
	// TUI starts the interactive dashboard instead of a one-shot run.
	TUI bool `mapstructure:"tui"`
	// MetricsAddr, if set, serves Prometheus metrics on this address.
	MetricsAddr string `mapstructure:"metrics_addr"`
	// ConfigFile is the optional YAML, TOML or JSON file layered under env and flags.
	ConfigFile string `mapstructure:"-"`
	// LogLevel is the zerolog level name for diagnostic output.
	LogLevel string `mapstructure:"log_level"`
	// NoColor disables all color output. NO_COLOR is respected as well.
	NoColor bool `mapstructure:"no_color"`
	// Theme names the color theme: dark, light or none.
	Theme string `mapstructure:"theme"`
	// Completion, if set, prints a completion script for the named shell.
	Completion string `mapstructure:"-"`
}

// Validate checks the semantic consistency of the configuration.
//
// availableModes lists the valid execution mode names;
// orchestration.ModeAllName is always accepted.
func (c AppConfig) Validate(availableModes []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewInvalidValueError("timeout", "must be strictly positive, got %s", c.Timeout)
	}
	if c.Mode != orchestration.ModeAllName && !slices.Contains(availableModes, c.Mode) {
		return apperrors.NewConfigError("unrecognized mode: '%s'. Valid modes are: 'all' or [%s]",
			c.Mode, strings.Join(availableModes, ", "))
	}
	if !slices.Contains(ui.ThemeNames, c.Theme) {
		return apperrors.NewInvalidValueError("theme", "must be one of [%s], got %q",
			strings.Join(ui.ThemeNames, ", "), c.Theme)
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q for --completion (supported: %s)",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// SupportedShells lists the shells --completion can generate scripts for.
var SupportedShells = []string{"bash", "zsh", "fish"}

// ParseConfig parses the command-line arguments into an AppConfig.
//
// Values are resolved with the priority flags > environment > config file >
// defaults, then validated against availableModes. Parsing errors and usage
// are written to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableModes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	modeHelp := fmt.Sprintf("Execution mode: 'all' or one of [%s].", strings.Join(availableModes, ", "))

	config := AppConfig{}
	fs.Uint64Var(&config.N, "n", DefaultN, "Number of terms to iterate.")
	fs.StringVar(&config.Mode, "mode", DefaultMode, modeHelp)
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum time to wait for a result.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - print only the value.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the result (.yaml for YAML).")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.ConfigFile, "config", "", "Path to a YAML, TOML or JSON config file.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error or off.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Color theme: dark, light or none.")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh, fish).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	if path := resolveConfigFile(config.ConfigFile, fs); path != "" {
		config.ConfigFile = path
		if err := applyFileOverrides(&config, path, fs); err != nil {
			fmt.Fprintln(errorWriter, "Configuration error:", err)
			return AppConfig{}, apperrors.AsConfigError(err)
		}
	}

	if err := applyEnvOverrides(&config, fs); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}

	config.Mode = strings.ToLower(strings.TrimSpace(config.Mode))
	config.Theme = strings.ToLower(strings.TrimSpace(config.Theme))
	if err := config.Validate(availableModes); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, apperrors.AsConfigError(err)
	}
	return config, nil
}
