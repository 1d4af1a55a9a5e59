package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibmodes/internal/config"
	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/sysmon"
	"github.com/agbru/fibmodes/internal/task"
)

func newTestModel(t *testing.T, n uint64, mode string) Model {
	t.Helper()
	cfg := config.AppConfig{N: n, Mode: mode, Timeout: 10 * time.Second}
	return NewModel(context.Background(), orchestration.NewDispatcher(), cfg, "test")
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_SelectsConfiguredMode(t *testing.T) {
	tests := []struct {
		mode string
		want orchestration.Mode
	}{
		{"inline", orchestration.ModeInline},
		{"background", orchestration.ModeBackgroundWorker},
		{"all", orchestration.ModeAwaitTask},
		{"", orchestration.ModeAwaitTask},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			m := newTestModel(t, 10, tt.mode)
			if got := m.SelectedMode(); got != tt.want {
				t.Errorf("SelectedMode() = %s, want %s", got, tt.want)
			}
			if m.input.Value() != "10" {
				t.Errorf("input = %q, want 10", m.input.Value())
			}
		})
	}
}

func TestModel_ModeCycling(t *testing.T) {
	m := newTestModel(t, 10, "inline")
	want := []orchestration.Mode{
		orchestration.ModeTaskFactory,
		orchestration.ModeAwaitTask,
		orchestration.ModeBackgroundWorker,
		orchestration.ModeInline,
	}
	for _, w := range want {
		m, _ = update(t, m, tabKey)
		if m.SelectedMode() != w {
			t.Fatalf("after tab SelectedMode() = %s, want %s", m.SelectedMode(), w)
		}
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.SelectedMode() != orchestration.ModeBackgroundWorker {
		t.Errorf("left from inline should wrap to background, got %s", m.SelectedMode())
	}
}

func TestModel_InputAcceptsDigitsOnly(t *testing.T) {
	m := newTestModel(t, 10, "inline")
	m, _ = update(t, m, runes("0"))
	m, _ = update(t, m, runes("x"))
	if m.input.Value() != "100" {
		t.Errorf("input = %q, want 100", m.input.Value())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.input.Value() != "10" {
		t.Errorf("input after backspace = %q, want 10", m.input.Value())
	}
}

func TestModel_InlineRunsOnEventLoop(t *testing.T) {
	m := newTestModel(t, 50, "inline")
	m, cmd := update(t, m, enterKey)
	if cmd != nil {
		t.Error("inline mode should complete without a command")
	}
	if m.running || !m.shown || m.value != 12586269025 {
		t.Fatalf("running=%v shown=%v value=%d", m.running, m.shown, m.value)
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("exitCode = %d", m.exitCode)
	}
	if view := m.View(); !strings.Contains(view, "F(50) = 12,586,269,025") {
		t.Errorf("view should show the result:\n%s", view)
	}
}

func TestModel_AsyncDispatchRoundTrip(t *testing.T) {
	m := newTestModel(t, 10, "await-task")
	m, cmd := update(t, m, enterKey)
	if cmd == nil || !m.running {
		t.Fatal("await-task should start a dispatch command")
	}
	if !strings.Contains(m.View(), "running await-task") {
		t.Errorf("view should show the running state:\n%s", m.View())
	}

	// Keys that change the request are ignored while running.
	m, _ = update(t, m, tabKey)
	m, _ = update(t, m, runes("9"))
	if m.SelectedMode() != orchestration.ModeAwaitTask || m.input.Value() != "10" {
		t.Errorf("input changed while running: mode=%s input=%q", m.SelectedMode(), m.input.Value())
	}

	done, ok := cmd().(DispatchDoneMsg)
	if !ok {
		t.Fatal("command should return DispatchDoneMsg")
	}
	if done.Result.Value != 55 || done.Result.Err != nil {
		t.Fatalf("result = %+v", done.Result)
	}

	m, _ = update(t, m, ValueShownMsg{Generation: done.Generation, Value: done.Result.Value})
	m, _ = update(t, m, done)
	if m.running || !m.shown || m.value != 55 {
		t.Errorf("running=%v shown=%v value=%d", m.running, m.shown, m.value)
	}
}

func TestModel_TaskFactoryReportsKnownBroken(t *testing.T) {
	m := newTestModel(t, 10, "task-factory")
	m, cmd := update(t, m, enterKey)
	done := cmd().(DispatchDoneMsg)
	if !errors.Is(done.Result.Err, task.ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", done.Result.Err)
	}
	m, _ = update(t, m, done)
	if m.shown {
		t.Error("task-factory must never show a value")
	}
	if m.exitCode != apperrors.ExitErrorGeneric {
		t.Errorf("exitCode = %d", m.exitCode)
	}
	if !strings.Contains(m.View(), "known broken") {
		t.Errorf("view should report the broken mode:\n%s", m.View())
	}
}

func TestModel_TimeoutStatus(t *testing.T) {
	m := newTestModel(t, 1000, "await-task")
	m, _ = update(t, m, enterKey)
	m, _ = update(t, m, DispatchDoneMsg{Generation: m.generation, Result: orchestration.Result{
		Mode: orchestration.ModeAwaitTask, TermCount: 1000,
		Err: apperrors.DispatchError{Mode: "await-task", Cause: context.DeadlineExceeded},
	}})
	if want := `operation "await-task" timed out after 10s`; !strings.Contains(m.View(), want) {
		t.Errorf("view should contain %q:\n%s", want, m.View())
	}
	if m.exitCode != apperrors.ExitErrorTimeout {
		t.Errorf("exitCode = %d, want %d", m.exitCode, apperrors.ExitErrorTimeout)
	}
}

func TestModel_BackgroundOverlay(t *testing.T) {
	m := newTestModel(t, 1000, "background")
	m, _ = update(t, m, enterKey)
	gen := m.generation

	m, _ = update(t, m, OverlayOpenedMsg{Generation: gen})
	if !m.overlay {
		t.Fatal("overlay should open")
	}
	m, _ = update(t, m, OverlayProgressMsg{Generation: gen, Percent: 42})
	if m.percent != 42 || !strings.Contains(m.View(), "Progress") {
		t.Errorf("percent = %d", m.percent)
	}

	// Messages from an older dispatch are dropped.
	m, _ = update(t, m, OverlayProgressMsg{Generation: gen - 1, Percent: 7})
	m, _ = update(t, m, ValueShownMsg{Generation: gen - 1, Value: 1})
	if m.percent != 42 || m.shown {
		t.Errorf("stale messages applied: percent=%d shown=%v", m.percent, m.shown)
	}

	m, _ = update(t, m, ValueShownMsg{Generation: gen, Value: fibonacci.Term(1000)})
	m, _ = update(t, m, OverlayClosedMsg{Generation: gen})
	if m.overlay || strings.Contains(m.View(), "Progress") {
		t.Error("overlay should close")
	}
	m, _ = update(t, m, DispatchDoneMsg{Generation: gen, Result: orchestration.Result{
		Mode: orchestration.ModeBackgroundWorker, TermCount: 1000, Value: fibonacci.Term(1000),
	}})
	if !strings.Contains(m.View(), "(wrapped)") {
		t.Errorf("n=1000 should be flagged as wrapped:\n%s", m.View())
	}
}

func TestModel_InvalidInput(t *testing.T) {
	m := newTestModel(t, 10, "inline")
	m.input.SetValue("")
	m, cmd := update(t, m, enterKey)
	if cmd != nil || m.inputErr == nil {
		t.Fatal("empty input should be rejected")
	}
	if !strings.Contains(m.View(), "invalid term count") {
		t.Errorf("view should show the input error:\n%s", m.View())
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 10, "await-task")
	m, _ = update(t, m, enterKey)
	_, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_SysStats(t *testing.T) {
	m := newTestModel(t, 10, "inline")
	m, _ = update(t, m, SysStatsMsg(sysmon.Stats{CPUPercent: 12.5, MemPercent: 50, ProcessRSS: 3 << 20, NumGoroutine: 4}))
	view := m.View()
	for _, want := range []string{"12.5%", "50.0%", "3.0 MB", "goroutines 4", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("footer should contain %q:\n%s", want, view)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := map[uint64]string{
		512:     "512 B",
		2048:    "2.0 KB",
		5 << 20: "5.0 MB",
		3 << 30: "3.0 GB",
	}
	for in, want := range tests {
		if got := formatBytes(in); got != want {
			t.Errorf("formatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestHeaderModel_View(t *testing.T) {
	h := NewHeaderModel("v1.2.0")
	h.SetWidth(80)
	if v := h.View(); !strings.Contains(v, "fibmodes v1.2.0") || !strings.Contains(v, "READY") {
		t.Errorf("header = %q", v)
	}
	h.state = stateFailed
	if !strings.Contains(h.View(), "FAILED") {
		t.Errorf("header = %q", h.View())
	}
	if strings.Contains(NewHeaderModel("dev").View(), "dev") {
		t.Error("dev version should be hidden")
	}
}
