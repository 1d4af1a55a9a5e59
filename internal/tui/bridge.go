package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/fibmodes/internal/orchestration"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the dispatch goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). It must not
// be called from Update: Send blocks until the event loop receives it.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIDisplaySink posts the computed value to the event loop.
type TUIDisplaySink struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.DisplaySink = (*TUIDisplaySink)(nil)

// Show sends a ValueShownMsg.
func (s *TUIDisplaySink) Show(value int64) {
	s.ref.Send(ValueShownMsg{Generation: s.generation, Value: value})
}

// TUIProgressSurface posts overlay lifecycle events to the event loop.
type TUIProgressSurface struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressSurface = (*TUIProgressSurface)(nil)

// Open sends an OverlayOpenedMsg.
func (s *TUIProgressSurface) Open() {
	s.ref.Send(OverlayOpenedMsg{Generation: s.generation})
}

// Update sends an OverlayProgressMsg.
func (s *TUIProgressSurface) Update(percent int) {
	s.ref.Send(OverlayProgressMsg{Generation: s.generation, Percent: percent})
}

// Close sends an OverlayClosedMsg.
func (s *TUIProgressSurface) Close() {
	s.ref.Send(OverlayClosedMsg{Generation: s.generation})
}
