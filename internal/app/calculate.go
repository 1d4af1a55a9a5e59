package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/fibmodes/internal/cli"
	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/orchestration"
)

// runDispatch runs the configured mode, or every mode for "all", bounded by
// the timeout and termination signals.
func (a *Application) runDispatch(ctx context.Context, d *orchestration.Dispatcher, out io.Writer) int {
	modes, err := orchestration.ModesToRun(a.Config.Mode)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(modes, out)
	}

	if len(modes) > 1 {
		return a.runComparison(ctx, d, modes, out)
	}
	return a.runSingle(ctx, d, modes[0], out)
}

// runSingle dispatches one mode. The value reaches out through the display
// sink; details and the result file follow.
func (a *Application) runSingle(ctx context.Context, d *orchestration.Dispatcher, mode orchestration.Mode, out io.Writer) int {
	sink := &cli.CLIDisplaySink{Out: out, N: a.Config.N, Quiet: a.Config.Quiet}
	res := d.Dispatch(ctx, orchestration.Request{TermCount: a.Config.N, Mode: mode}, sink, a.progressSurface(out))
	if res.Err != nil {
		return cli.CLIResultPresenter{}.HandleError(res.Err, res.Duration, a.statusWriter(out))
	}
	return a.finishOutput(res, out)
}

// runComparison dispatches every mode concurrently and checks that the
// working ones agree.
func (a *Application) runComparison(ctx context.Context, d *orchestration.Dispatcher, modes []orchestration.Mode, out io.Writer) int {
	results := orchestration.CompareModes(ctx, d, a.Config.N, modes, a.progressSurface(out))

	tableOut := out
	if a.Config.Quiet {
		tableOut = io.Discard
	}
	code := orchestration.AnalyzeResults(results, cli.CLIResultPresenter{}, tableOut)
	if code != apperrors.ExitSuccess {
		return code
	}

	for _, res := range results {
		if res.Err == nil {
			if a.Config.Quiet {
				cli.DisplayQuietResult(out, res.Value)
			}
			return a.writeResultFile(res, out)
		}
	}
	return code
}

func (a *Application) finishOutput(res orchestration.Result, out io.Writer) int {
	if err := cli.DisplayResultWithConfig(out, res, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) writeResultFile(res orchestration.Result, out io.Writer) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteResultToFile(res, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "Result saved to: %s\n", a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
}

// progressSurface returns the spinner surface, or a null one in quiet mode.
func (a *Application) progressSurface(out io.Writer) orchestration.ProgressSurface {
	if a.Config.Quiet {
		return orchestration.NullProgressSurface{}
	}
	return cli.NewCLIProgressSurface(out)
}

// statusWriter keeps failure messages off stdout in quiet mode.
func (a *Application) statusWriter(out io.Writer) io.Writer {
	if a.Config.Quiet {
		return a.ErrWriter
	}
	return out
}
