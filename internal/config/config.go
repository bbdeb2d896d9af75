// Package config handles command-line and environment configuration for osstat.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/osstat/internal/errors"
	"github.com/agbru/osstat/internal/logging"
)

// EnvPrefix is prepended to every environment variable read by osstat.
const EnvPrefix = "OSSTAT_"

// DefaultLogLevel is used when neither --log-level nor OSSTAT_LOG_LEVEL is set.
const DefaultLogLevel = "warn"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// TUI runs the terminal host instead of the desktop window.
	TUI bool
	// Once samples a single frame, prints it as text and exits.
	Once bool
	// NoColor disables colored terminal output.
	NoColor bool
	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.TUI && c.Once {
		return apperrors.NewConfigError("--tui and --once are mutually exclusive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return apperrors.NewConfigError("invalid log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// ParseConfig parses command-line arguments, applies OSSTAT_* environment
// overrides for flags that were not set explicitly, and validates the result.
// Usage and parse errors are written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.BoolVar(&config.TUI, "tui", false, "Render in the terminal instead of a desktop window.")
	fs.BoolVar(&config.Once, "once", false, "Sample once, print the readings and exit.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level: debug, info, warn, error.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintln(errWriter, "Shows host CPU and memory utilization in a small always-on-top window.")
		fmt.Fprintln(errWriter)
		fmt.Fprintln(errWriter, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
