package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// runState is the dashboard's dispatch state shown in the header.
type runState int

const (
	stateReady runState = iota
	stateRunning
	stateDone
	stateFailed
)

func (s runState) label() string {
	switch s {
	case stateRunning:
		return warningStyle.Render("RUNNING")
	case stateDone:
		return successStyle.Render("DONE")
	case stateFailed:
		return errorStyle.Render("FAILED")
	default:
		return versionStyle.Render("READY")
	}
}

// HeaderModel renders the top bar: title, version and dispatch state.
type HeaderModel struct {
	version string
	state   runState
	width   int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header with the state label right-aligned.
func (h HeaderModel) View() string {
	titleText := "fibmodes"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	left := titleStyle.Render(titleText) + versionStyle.Render(" | Fibonacci execution modes")
	right := h.state.label()

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + spaces(gap) + right
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
