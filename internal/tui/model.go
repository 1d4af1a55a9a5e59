package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmodes/internal/config"
	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/format"
	"github.com/agbru/fibmodes/internal/orchestration"
	"github.com/agbru/fibmodes/internal/sysmon"
	"github.com/agbru/fibmodes/internal/task"
)

const (
	tickInterval = time.Second
	overlayWidth = 40
)

// Model is the root bubbletea model for the dashboard. The bubbletea event
// loop plays the part of the UI thread: every field is only touched from
// Update.
type Model struct {
	header HeaderModel
	footer FooterModel
	keymap KeyMap
	input  textinput.Model
	bar    progress.Model

	modes   []orchestration.Mode
	modeIdx int

	parentCtx  context.Context
	dispatcher *orchestration.Dispatcher
	timeout    time.Duration
	sampler    *sysmon.Sampler
	ref        *programRef
	cancel     context.CancelFunc

	generation uint64
	running    bool
	overlay    bool
	percent    int
	termCount  uint64
	shown      bool
	value      int64
	hasResult  bool
	last       orchestration.Result
	inputErr   error
	exitCode   int
}

// NewModel creates a dashboard that dispatches through d. The term count
// and mode start from cfg; "all" selects the default mode.
func NewModel(ctx context.Context, d *orchestration.Dispatcher, cfg config.AppConfig, version string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "term count"
	ti.CharLimit = 20
	ti.SetValue(strconv.FormatUint(cfg.N, 10))
	ti.Focus()

	modes := orchestration.AllModes()
	selected, err := orchestration.ParseMode(cfg.Mode)
	if err != nil {
		selected = orchestration.ModeAwaitTask
	}
	idx := 0
	for i, mode := range modes {
		if mode == selected {
			idx = i
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	km := DefaultKeyMap()
	return Model{
		header:     NewHeaderModel(version),
		footer:     NewFooterModel(km),
		keymap:     km,
		input:      ti,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithWidth(overlayWidth)),
		modes:      modes,
		modeIdx:    idx,
		parentCtx:  ctx,
		dispatcher: d,
		timeout:    timeout,
		sampler:    sysmon.NewSampler(nil),
		ref:        &programRef{},
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, sampleSysStatsCmd(m.sampler), tickCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.header.SetWidth(msg.Width)
		return m, nil

	case ValueShownMsg:
		if msg.Generation == m.generation {
			m.shown = true
			m.value = msg.Value
		}
		return m, nil

	case OverlayOpenedMsg:
		if msg.Generation == m.generation {
			m.overlay = true
			m.percent = 0
		}
		return m, nil

	case OverlayProgressMsg:
		if msg.Generation == m.generation && m.overlay {
			m.percent = msg.Percent
		}
		return m, nil

	case OverlayClosedMsg:
		if msg.Generation == m.generation {
			m.overlay = false
		}
		return m, nil

	case DispatchDoneMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous dispatch
		}
		m.finish(msg.Result)
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(m.sampler), tickCmd())

	case SysStatsMsg:
		m.footer.SetStats(sysmon.Stats(msg))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Run):
		return m.trigger()

	case key.Matches(msg, m.keymap.NextMode):
		if !m.running {
			m.modeIdx = (m.modeIdx + 1) % len(m.modes)
		}
		return m, nil

	case key.Matches(msg, m.keymap.PrevMode):
		if !m.running {
			m.modeIdx = (m.modeIdx + len(m.modes) - 1) % len(m.modes)
		}
		return m, nil
	}

	if m.running {
		return m, nil
	}
	if msg.Type == tea.KeyRunes && !allDigits(msg.Runes) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SelectedMode returns the mode the next trigger will use.
func (m Model) SelectedMode() orchestration.Mode {
	return m.modes[m.modeIdx]
}

// trigger starts a dispatch for the current input. Inline mode runs right
// here on the event loop, so the dashboard freezes until it returns; the
// other modes run in a command and report back through the program.
func (m Model) trigger() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	raw := strings.TrimSpace(m.input.Value())
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		m.inputErr = fmt.Errorf("invalid term count %q", raw)
		return m, nil
	}

	m.inputErr = nil
	m.generation++
	m.termCount = n
	m.shown = false
	m.overlay = false
	m.percent = 0
	m.hasResult = false
	req := orchestration.Request{TermCount: n, Mode: m.SelectedMode()}

	if req.Mode == orchestration.ModeInline {
		ctx, cancel := context.WithTimeout(m.parentCtx, m.timeout)
		defer cancel()
		sink := &orchestration.CaptureSink{}
		res := m.dispatcher.Dispatch(ctx, req, sink, nil)
		if values := sink.Values(); len(values) > 0 {
			m.shown = true
			m.value = values[len(values)-1]
		}
		m.finish(res)
		return m, nil
	}

	ctx, cancel := context.WithTimeout(m.parentCtx, m.timeout)
	m.cancel = cancel
	m.running = true
	m.header.state = stateRunning
	return m, dispatchCmd(ctx, cancel, m.dispatcher, m.ref, m.generation, req)
}

func (m *Model) finish(res orchestration.Result) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.running = false
	m.overlay = false
	m.last = res
	m.hasResult = true
	m.exitCode = apperrors.HandleDispatchError(res.Err, res.Duration, io.Discard, nil)
	if res.Err != nil {
		m.header.state = stateFailed
	} else {
		m.header.state = stateDone
	}
}

// View renders the dashboard.
func (m Model) View() string {
	rows := []string{
		row("Term count", m.input.View()),
		row("Mode", m.modeSelector()),
		row("Result", m.resultLine()),
		row("Status", m.statusLine()),
	}
	if m.overlay {
		rows = append(rows, "", row("Progress", m.bar.ViewAs(float64(m.percent)/100)))
	}
	body := panelStyle.Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func (m Model) modeSelector() string {
	parts := make([]string, len(m.modes))
	for i, mode := range m.modes {
		style := modeStyle
		switch {
		case i == m.modeIdx:
			style = modeSelectedStyle
		case mode.Broken():
			style = modeBrokenStyle
		}
		parts[i] = style.Render(mode.String())
	}
	return strings.Join(parts, "")
}

func (m Model) resultLine() string {
	if !m.shown {
		return versionStyle.Render("-")
	}
	line := valueStyle.Render(fmt.Sprintf("F(%d) = %s", m.termCount, format.FormatInt(m.value)))
	if !fibonacci.Fits(m.termCount) {
		line += warningStyle.Render(" (wrapped)")
	}
	return line
}

func (m Model) statusLine() string {
	switch {
	case m.inputErr != nil:
		return errorStyle.Render(m.inputErr.Error())
	case m.running:
		return warningStyle.Render(fmt.Sprintf("running %s...", m.SelectedMode()))
	case !m.hasResult:
		return versionStyle.Render("press enter to run")
	case m.last.Err == nil:
		return successStyle.Render("ok") + versionStyle.Render(
			fmt.Sprintf(" %s in %s", m.last.Mode, format.FormatExecutionDuration(m.last.Duration)))
	case errors.Is(m.last.Err, task.ErrNotStarted):
		return warningStyle.Render("known broken: the awaited task was never started")
	case errors.Is(m.last.Err, context.DeadlineExceeded):
		return errorStyle.Render(apperrors.TimeoutError{Operation: m.last.Mode.String(), Limit: m.timeout}.Error())
	default:
		return errorStyle.Render(m.last.Err.Error())
	}
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code of
// the last dispatch.
func Run(ctx context.Context, d *orchestration.Dispatcher, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, d, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so dispatch goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		if m.cancel != nil {
			m.cancel()
		}
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// dispatchCmd returns a tea.Cmd that runs a non-inline dispatch. Its sinks
// post back through ref; the final message is the command's result.
func dispatchCmd(ctx context.Context, cancel context.CancelFunc, d *orchestration.Dispatcher, ref *programRef, gen uint64, req orchestration.Request) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		res := d.Dispatch(ctx, req,
			&TUIDisplaySink{ref: ref, generation: gen},
			&TUIProgressSurface{ref: ref, generation: gen})
		return DispatchDoneMsg{Generation: gen, Result: res}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads host and process usage and returns a SysStatsMsg.
func sampleSysStatsCmd(s *sysmon.Sampler) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(s.Sample(context.Background()))
	}
}
