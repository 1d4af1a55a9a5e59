package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"

	"github.com/agbru/fibmodes/internal/cli"
	"github.com/agbru/fibmodes/internal/config"
	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/logging"
	"github.com/agbru/fibmodes/internal/metrics"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/tui"
	"github.com/agbru/fibmodes/internal/ui"
)

// Application represents the fibmodes application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
	Recorder  *metrics.Recorder

	dispatcherOpts []orchestration.Option
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the console logger built from --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithDispatcherOptions appends options applied after the defaults.
func WithDispatcherOptions(opts ...orchestration.Option) AppOption {
	return func(a *Application) { a.dispatcherOpts = append(a.dispatcherOpts, opts...) }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fibmodes"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, orchestration.ModeNames())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "fibmodes", logging.ParseLevel(cfg.LogLevel))
	}
	app.Recorder = metrics.NewRecorder()
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	if a.Config.MetricsAddr != "" {
		srv := metrics.NewServer(a.Config.MetricsAddr, a.Recorder, a.Logger)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error starting metrics server: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer func() {
			if err := srv.Shutdown(context.Background()); err != nil {
				a.Logger.Error("metrics server shutdown", err)
			}
		}()
	}

	d := a.newDispatcher()
	if a.Config.TUI {
		return a.runTUI(ctx, d)
	}
	return a.runDispatch(ctx, d, out)
}

func (a *Application) newDispatcher() *orchestration.Dispatcher {
	opts := []orchestration.Option{
		orchestration.WithLogger(a.Logger),
		orchestration.WithMetrics(a.Recorder),
		orchestration.WithTracer(otel.Tracer(orchestration.TracerName)),
	}
	return orchestration.NewDispatcher(append(opts, a.dispatcherOpts...)...)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, orchestration.ModeNames()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard. The timeout applies to each
// dispatch it starts, not to the session.
func (a *Application) runTUI(ctx context.Context, d *orchestration.Dispatcher) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()
	return tui.Run(ctx, d, a.Config, Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps an error returned by New to a process exit code: flag
// parsing and validation failures are configuration errors, --help is not.
func ExitCodeFor(err error) int {
	if err == nil || IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
