package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agbru/fitscan/internal/config"
	apperrors "github.com/agbru/fitscan/internal/errors"
	"github.com/agbru/fitscan/internal/extract"
	"github.com/agbru/fitscan/internal/logging"
	"github.com/agbru/fitscan/internal/ui"
)

// Application represents the fitscan application instance.
type Application struct {
	Config    config.AppConfig
	Extractor extract.Extractor
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithExtractor sets a custom Extractor for the application.
func WithExtractor(e extract.Extractor) AppOption {
	return func(a *Application) { a.Extractor = e }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Extractor == nil {
		app.Extractor = extract.FileExtractor{}
	}

	programName := "fitscan"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the scan and writes the report to out. It returns the process
// exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	ui.InitTheme(a.Config.NoColor || !isTerminal(a.ErrWriter))
	return a.runScan(ctx, out, a.newLogger())
}

// newLogger builds the stderr logger. The level was validated by config.
func (a *Application) newLogger() logging.Logger {
	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return logging.NewNopLogger()
	}
	return logging.NewConsoleLogger(a.ErrWriter, level)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCode maps an error returned by New to a process exit code.
func ExitCode(err error) int {
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	// Everything else is either a ConfigError or a flag parse error.
	return apperrors.ExitErrorConfig
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
