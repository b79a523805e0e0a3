// Package config defines the application configuration and parses it from
// command-line flags and FITSCAN_* environment variables.
package config

import (
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/fitscan/internal/errors"
	"github.com/agbru/fitscan/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "FITSCAN_"
	// DefaultDir is the directory scanned when none is given.
	DefaultDir = "results"
	// DefaultWorkers is the default size of the extraction pool.
	DefaultWorkers = 8
	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Dir is the directory whose regular files are scanned.
	Dir string
	// Workers is the number of concurrent extractions.
	Workers int
	// Partial lets a file with only one label compete for that metric.
	Partial bool
	// OutputFile, when set, receives a copy of the report.
	OutputFile string
	// MetricsFile, when set, receives Prometheus text-format metrics.
	MetricsFile string
	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string
	// Progress enables the spinner on stderr when it is a terminal.
	Progress bool
	// Stats prints a one-line scan summary on stderr.
	Stats bool
	// NoColor disables styling of stderr output.
	NoColor bool
	// Version prints the version and exits.
	Version bool
}

// Validate checks the configuration for semantic errors.
//
// Returns:
//   - error: A ConfigError describing the first problem found, or nil.
func (c AppConfig) Validate() error {
	if c.Dir == "" {
		return apperrors.NewConfigError("directory must not be empty")
	}
	if c.Workers < 1 {
		return apperrors.NewConfigError("--workers must be at least 1, got %d", c.Workers)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("--log-level: %v", err)
	}
	return nil
}

// ParseConfig parses the command-line arguments into an AppConfig. Values
// come from flags first, then FITSCAN_* environment variables, then defaults.
// The directory may be given either with --dir or as the single positional
// argument.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The arguments without the program name.
//   - errorOutput: The writer for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError for invalid
//     input, or a flag parse error.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] [directory]\n\n", programName)
		fmt.Fprintf(fs.Output(), "Reports the result files with the lowest RMSD and maximum measured error.\n\n")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Dir, "dir", DefaultDir, "Directory containing the result files.")
	fs.IntVar(&config.Workers, "workers", DefaultWorkers, "Number of files processed concurrently.")
	fs.IntVar(&config.Workers, "w", DefaultWorkers, "Shorthand for --workers.")
	fs.BoolVar(&config.Partial, "partial", false, "Let files with only one of the two labels compete for that metric.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the report to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Diagnostic log level (debug, info, warn, error).")
	fs.BoolVar(&config.Progress, "progress", false, "Show a progress spinner on stderr when it is a terminal.")
	fs.BoolVar(&config.Stats, "stats", false, "Print a scan summary on stderr.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored stderr output.")
	fs.BoolVar(&config.Version, "version", false, "Print the version and exit.")
	fs.BoolVar(&config.Version, "V", false, "Shorthand for --version.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	var err error
	switch fs.NArg() {
	case 0:
	case 1:
		if isFlagSet(fs, "dir") {
			err = apperrors.NewConfigError("directory given both as --dir and as argument")
		}
		config.Dir = fs.Arg(0)
	default:
		err = apperrors.NewConfigError("expected at most one directory argument, got %d", fs.NArg())
	}

	if err == nil {
		applyEnvOverrides(&config, fs)
		err = config.Validate()
	}
	if err != nil {
		fmt.Fprintln(errorOutput, "Configuration error:", err)
		return AppConfig{}, err
	}
	return config, nil
}
