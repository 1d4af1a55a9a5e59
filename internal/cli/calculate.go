package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibmodes/internal/config"
	"github.com/agbru/fibmodes/internal/format"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/ui"
)

// PrintExecutionConfig displays the term count, the wait limit and the
// runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Iterating %s%s%s terms, waiting at most %s%s%s.\n",
		ui.ColorMagenta(), format.FormatUint(cfg.N), ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode describes what is about to run.
func PrintExecutionMode(modes []orchestration.Mode, out io.Writer) {
	var modeDesc string
	switch {
	case len(modes) > 1:
		modeDesc = "Concurrent comparison of all execution modes"
	case len(modes) == 1 && modes[0].Broken():
		modeDesc = fmt.Sprintf("%s%s%s (known broken: the awaited task is never started)",
			ui.ColorYellow(), modes[0], ui.ColorReset())
	case len(modes) == 1:
		modeDesc = fmt.Sprintf("Single dispatch in %s%s%s mode", ui.ColorGreen(), modes[0], ui.ColorReset())
	default:
		modeDesc = "nothing to run"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
