package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/task"
	"github.com/agbru/fibmodes/internal/ui"
)

func TestCLIDisplaySink(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	tests := []struct {
		name  string
		sink  CLIDisplaySink
		value int64
		want  string
	}{
		{"normal", CLIDisplaySink{N: 50}, 12586269025, "F(50) = 12,586,269,025\n"},
		{"quiet", CLIDisplaySink{N: 50, Quiet: true}, 12586269025, "12586269025\n"},
		{"wrapped", CLIDisplaySink{N: 93, Quiet: true}, -6246583658587674878, "-6246583658587674878\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.sink.Out = &buf
			tt.sink.Show(tt.value)
			if buf.String() != tt.want {
				t.Errorf("Show() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestCLIResultPresenter_ComparisonTable(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	results := []orchestration.Result{
		{Mode: orchestration.ModeInline, Value: 55, Duration: 3 * time.Microsecond},
		{Mode: orchestration.ModeBackgroundWorker, Err: apperrors.DispatchError{Mode: "background", Cause: context.DeadlineExceeded}},
		{Mode: orchestration.ModeTaskFactory, Err: apperrors.DispatchError{Mode: "task-factory", Cause: task.ErrNotStarted}},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Mode", "Duration", "inline", "Success (55)", "Failure", "Known broken"} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	header := lines[1]
	durationCol := strings.Index(header, "Duration")
	for _, line := range lines[2:] {
		if len(line) <= durationCol || line[durationCol-1] != ' ' {
			t.Errorf("misaligned row %q (duration column at %d)", line, durationCol)
		}
	}
}

func TestCLIResultPresenter_PresentResult(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	tests := []struct {
		name     string
		result   orchestration.Result
		contains []string
		absent   string
	}{
		{
			name:     "exact",
			result:   orchestration.Result{Mode: orchestration.ModeAwaitTask, TermCount: 10, Value: 55, Duration: 2 * time.Millisecond},
			contains: []string{"F(10) = 55", "await-task", "2ms"},
			absent:   "wrapped",
		},
		{
			name:     "wrapped",
			result:   orchestration.Result{Mode: orchestration.ModeInline, TermCount: 100, Value: 3736710778780434371},
			contains: []string{"F(100) = 3,736,710,778,780,434,371", "wrapped", "F(92)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			CLIResultPresenter{}.PresentResult(tt.result, &buf)
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output should contain %q:\n%s", want, buf.String())
				}
			}
			if tt.absent != "" && strings.Contains(buf.String(), tt.absent) {
				t.Errorf("output should not contain %q:\n%s", tt.absent, buf.String())
			}
		})
	}
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(errors.Join(errors.New("wait"), context.DeadlineExceeded), time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
}

func TestPrintExecution(t *testing.T) {
	ui.SetCurrentTheme(ui.NoColorTheme)
	tests := []struct {
		modes []orchestration.Mode
		want  string
	}{
		{orchestration.AllModes(), "Concurrent comparison"},
		{[]orchestration.Mode{orchestration.ModeInline}, "Single dispatch in inline mode"},
		{[]orchestration.Mode{orchestration.ModeTaskFactory}, "known broken"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		PrintExecutionMode(tt.modes, &buf)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("PrintExecutionMode(%v) = %q, want %q", tt.modes, buf.String(), tt.want)
		}
	}
}
