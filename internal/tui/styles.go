package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibmodes/internal/ui"
)

// Style variables for the dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle        lipgloss.Style
	titleStyle        lipgloss.Style
	versionStyle      lipgloss.Style
	labelStyle        lipgloss.Style
	valueStyle        lipgloss.Style
	modeStyle         lipgloss.Style
	modeSelectedStyle lipgloss.Style
	modeBrokenStyle   lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	footerKeyStyle    lipgloss.Style
	footerDescStyle   lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Width(12)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	modeStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)

	modeSelectedStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	modeBrokenStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Padding(0, 1)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	warningStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
