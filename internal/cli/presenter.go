package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/format"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/ui"
)

// CLIDisplaySink prints the computed value. It is the CLI's stand-in for
// the result label of a window.
type CLIDisplaySink struct {
	Out   io.Writer
	N     uint64
	Quiet bool
}

var _ orchestration.DisplaySink = (*CLIDisplaySink)(nil)

// Show prints the value, bare in quiet mode.
func (s *CLIDisplaySink) Show(value int64) {
	if s.Quiet {
		fmt.Fprintln(s.Out, value)
		return
	}
	fmt.Fprintf(s.Out, "F(%s%d%s) = %s%s%s\n",
		ui.ColorMagenta(), s.N, ui.ColorReset(), ui.ColorGreen(), format.FormatInt(value), ui.ColorReset())
}

// CLIProgressSurface shows a spinner and a progress bar while a background
// dispatch runs.
type CLIProgressSurface struct {
	out     io.Writer
	spinner Spinner
	last    int
	open    bool
}

var _ orchestration.ProgressSurface = (*CLIProgressSurface)(nil)

// NewCLIProgressSurface creates a surface rendering to out.
func NewCLIProgressSurface(out io.Writer) *CLIProgressSurface {
	return &CLIProgressSurface{out: out, last: -1}
}

// Open starts the spinner.
func (p *CLIProgressSurface) Open() {
	if p.open {
		return
	}
	p.spinner = newSpinner(p.out)
	p.spinner.UpdateSuffix(progressLine(0))
	p.spinner.Start()
	p.open = true
}

// Update redraws the bar at percent.
func (p *CLIProgressSurface) Update(percent int) {
	if !p.open {
		return
	}
	p.last = percent
	p.spinner.UpdateSuffix(progressLine(percent))
}

// Close stops the spinner. A run that reported its last step leaves a
// completed bar on screen; an abandoned one leaves the bar where it stopped.
func (p *CLIProgressSurface) Close() {
	if !p.open {
		return
	}
	p.spinner.Stop()
	p.open = false
	switch {
	case p.last >= fibonacci.ProgressLastPercent:
		fmt.Fprintf(p.out, "Progress: %3d%% [%s]\n", 100, progressBar(100, ProgressBarWidth))
	case p.last >= 0:
		fmt.Fprintf(p.out, "Progress: %3d%% [%s]\n", p.last, progressBar(p.last, ProgressBarWidth))
	}
}

// Last returns the last percentage shown, or -1.
func (p *CLIProgressSurface) Last() int { return p.last }

func progressLine(percent int) string {
	return fmt.Sprintf(" Progress: %3d%% [%s]", percent, progressBar(percent, ProgressBarWidth))
}

// CLIResultPresenter implements orchestration.ResultPresenter for terminal output.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per mode with its duration and status.
// Padding is computed on the visible text so ANSI codes do not skew columns.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.Result, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen, maxDurationLen := len("Mode"), len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Mode.String()))
		maxDurationLen = max(maxDurationLen, len(format.FormatExecutionDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sMode%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", maxNameLen-len("Mode")),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		var status string
		switch {
		case res.Err == nil:
			status = fmt.Sprintf("%sSuccess%s (%s)", ui.ColorGreen(), ui.ColorReset(), format.FormatInt(res.Value))
		case res.Mode.Broken():
			status = fmt.Sprintf("%sKnown broken%s (%v)", ui.ColorYellow(), ui.ColorReset(), res.Err)
		default:
			status = fmt.Sprintf("%sFailure%s (%v)", ui.ColorRed(), ui.ColorReset(), res.Err)
		}
		name := res.Mode.String()
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight pads s with length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult prints the agreed value and its details.
func (CLIResultPresenter) PresentResult(result orchestration.Result, out io.Writer) {
	fmt.Fprintf(out, "F(%s%d%s) = %s%s%s\n",
		ui.ColorMagenta(), result.TermCount, ui.ColorReset(), ui.ColorGreen(), format.FormatInt(result.Value), ui.ColorReset())
	DisplayResultDetails(result, out)
}

// HandleError reports a failed dispatch and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleDispatchError(err, duration, out, ui.ThemeColors{})
}

// DisplayResultDetails prints the mode, the duration and an overflow note.
func DisplayResultDetails(result orchestration.Result, out io.Writer) {
	fmt.Fprintf(out, "Mode: %s%s%s, computed in %s%s%s.\n",
		ui.ColorBlue(), result.Mode, ui.ColorReset(),
		ui.ColorGreen(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	if !fibonacci.Fits(result.TermCount) {
		fmt.Fprintf(out, "%sNote:%s terms beyond F(%d) exceed int64; the value above has wrapped.\n",
			ui.ColorYellow(), ui.ColorReset(), fibonacci.MaxExactTerm)
	}
}
