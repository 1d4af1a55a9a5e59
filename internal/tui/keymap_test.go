package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Run", km.Run},
		{"NextMode", km.NextMode},
		{"PrevMode", km.PrevMode},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Desc == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_Matches(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
		{"enter runs", tea.KeyMsg{Type: tea.KeyEnter}, km.Run},
		{"tab next", tea.KeyMsg{Type: tea.KeyTab}, km.NextMode},
		{"right next", tea.KeyMsg{Type: tea.KeyRight}, km.NextMode},
		{"shift+tab previous", tea.KeyMsg{Type: tea.KeyShiftTab}, km.PrevMode},
		{"left previous", tea.KeyMsg{Type: tea.KeyLeft}, km.PrevMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q does not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestDefaultKeyMap_ShortHelp(t *testing.T) {
	if got := len(DefaultKeyMap().ShortHelp()); got != 4 {
		t.Errorf("ShortHelp() has %d bindings, want 4", got)
	}
}
