package orchestration

import (
	"fmt"
	"strings"
)

// Mode selects the execution context of a dispatch.
type Mode int

const (
	// ModeInline runs the loop on the caller's goroutine.
	ModeInline Mode = iota
	// ModeTaskFactory starts an outer task that returns a never-started inner
	// task and waits on the inner one.
	//
	// Deprecated: this mode never produces a value. Waiting reports
	// task.ErrNotStarted. It is kept to show the failure, not to be used.
	ModeTaskFactory
	// ModeAwaitTask starts a task and suspends the caller at Wait.
	ModeAwaitTask
	// ModeBackgroundWorker runs a worker that reports progress over a channel.
	ModeBackgroundWorker
)

// ModeAllName selects every mode for a comparison run.
const ModeAllName = "all"

var modeNames = [...]string{
	ModeInline:           "inline",
	ModeTaskFactory:      "task-factory",
	ModeAwaitTask:        "await-task",
	ModeBackgroundWorker: "background",
}

// String returns the mode's command-line name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Broken reports whether the mode is known not to produce a value.
func (m Mode) Broken() bool { return m == ModeTaskFactory }

// AllModes returns every mode in declaration order.
func AllModes() []Mode {
	return []Mode{ModeInline, ModeTaskFactory, ModeAwaitTask, ModeBackgroundWorker}
}

// ModeNames returns the command-line names of every mode.
func ModeNames() []string {
	names := make([]string, len(modeNames))
	copy(names, modeNames[:])
	return names
}

// ParseMode resolves a mode by its command-line name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range modeNames {
		if candidate == n {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q (valid: %s)", name, strings.Join(modeNames[:], ", "))
}

// ModesToRun returns every mode for "all", otherwise the single named mode.
func ModesToRun(name string) ([]Mode, error) {
	if strings.EqualFold(strings.TrimSpace(name), ModeAllName) {
		return AllModes(), nil
	}
	m, err := ParseMode(name)
	if err != nil {
		return nil, err
	}
	return []Mode{m}, nil
}
