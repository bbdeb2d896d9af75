package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/osstat/internal/config"
	"github.com/agbru/osstat/internal/desktop"
	apperrors "github.com/agbru/osstat/internal/errors"
	"github.com/agbru/osstat/internal/logging"
	"github.com/agbru/osstat/internal/surface"
	"github.com/agbru/osstat/internal/sysmon"
	"github.com/agbru/osstat/internal/tui"
	"github.com/agbru/osstat/internal/ui"
)

// Host runs the display surface until the user closes it or ctx ends.
type Host func(ctx context.Context, state *surface.State, logger logging.Logger) error

// Application represents the osstat application instance.
type Application struct {
	Config    config.AppConfig
	Sampler   sysmon.Sampler
	ErrWriter io.Writer

	desktopHost Host
	tuiHost     Host
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithSampler sets a custom metrics sampler for the application.
func WithSampler(s sysmon.Sampler) AppOption {
	return func(a *Application) { a.Sampler = s }
}

// WithHosts replaces the desktop and terminal hosts. Used by tests.
func WithHosts(desktopHost, tuiHost Host) AppOption {
	return func(a *Application) {
		a.desktopHost = desktopHost
		a.tuiHost = tuiHost
	}
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter:   errWriter,
		desktopHost: desktop.Run,
		tuiHost:     runTUI,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Sampler == nil {
		app.Sampler = sysmon.NewHostSampler()
	}

	programName := "osstat"
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

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	theme := ui.GetCurrentTheme()

	// Validated by config.ParseConfig.
	level, _ := logging.ParseLevel(a.Config.LogLevel)
	logger := logging.NewConsoleLogger(a.ErrWriter, "osstat", level, theme.Name == ui.NoColorTheme.Name)

	state := surface.NewState(a.Sampler, logger)

	if a.Config.Once {
		return a.runOnce(state, theme, out)
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	host, name := a.desktopHost, "desktop"
	if a.Config.TUI {
		host, name = a.tuiHost, "tui"
	}

	logger.Debug("starting host", logging.String("host", name))
	err := host(ctx, state, logger)
	if err != nil && !apperrors.IsContextError(err) {
		logger.Error("display host failed", err, logging.String("host", name))
	}
	return apperrors.ExitCodeFor(err)
}

// runOnce paints a single frame as text.
func (a *Application) runOnce(state *surface.State, theme ui.Theme, out io.Writer) int {
	if err := writeFrame(out, state.Tick(time.Now()), theme); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// writeFrame prints a frame with ANSI colors from theme, or as plain text
// when colors are off.
func writeFrame(out io.Writer, f surface.Frame, theme ui.Theme) error {
	if theme.Name == ui.NoColorTheme.Name {
		_, err := fmt.Fprintln(out, f.Text())
		return err
	}
	if _, err := fmt.Fprintf(out, "%s%s%s%s\n", theme.Bold, theme.Primary, f.Heading, theme.Reset); err != nil {
		return err
	}
	for _, l := range f.Lines {
		color, reset := "", ""
		if l.Tinted {
			color, reset = theme.Level(l.Level), theme.Reset
		}
		if _, err := fmt.Fprintf(out, "%s%s%s\n", color, l.Text, reset); err != nil {
			return err
		}
	}
	return nil
}

func runTUI(ctx context.Context, state *surface.State, _ logging.Logger) error {
	return tui.Run(ctx, state)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
