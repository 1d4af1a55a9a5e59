package worker

import (
	"errors"
	"testing"
	"time"

	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/progress"
)

func TestWorker_StateMachine(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	w := New(func(arg uint64, report progress.Callback) int64 {
		<-release
		return int64(arg)
	})

	if w.State() != Idle {
		t.Fatalf("initial State() = %v, want idle", w.State())
	}

	events, err := w.RunAsync(7)
	if err != nil {
		t.Fatalf("RunAsync() error = %v", err)
	}
	if w.State() != Running {
		t.Errorf("State() after RunAsync = %v, want running", w.State())
	}
	if _, err := w.RunAsync(7); !errors.Is(err, ErrBusy) {
		t.Errorf("second RunAsync() error = %v, want ErrBusy", err)
	}

	close(release)
	result, done := Pump(events, Handlers[int64]{})
	if !done || result != 7 {
		t.Errorf("Pump() = (%d, %v), want (7, true)", result, done)
	}
	if w.State() != Completed {
		t.Errorf("final State() = %v, want completed", w.State())
	}
	if _, err := w.RunAsync(1); !errors.Is(err, ErrBusy) {
		t.Errorf("RunAsync() after completion error = %v, want ErrBusy", err)
	}
}

func TestWorker_ProgressOrderedBeforeCompletion(t *testing.T) {
	t.Parallel()
	w := New(fibonacci.TermWithProgress, WithBuffer(1))
	events, err := w.RunAsync(10_000)
	if err != nil {
		t.Fatalf("RunAsync() error = %v", err)
	}

	var (
		seen      []string
		rec       progress.Recorder
		completed int
	)
	result, done := Pump(events, Handlers[int64]{
		ProgressChanged: func(p int) {
			if completed > 0 {
				t.Errorf("progress %d after completion", p)
			}
			rec.Update(p)
		},
		Completed: func(int64) {
			completed++
			seen = append(seen, "completed")
		},
	})

	if !done || result != fibonacci.Term(10_000) {
		t.Errorf("Pump() = (%d, %v), want (%d, true)", result, done, fibonacci.Term(10_000))
	}
	if completed != 1 {
		t.Errorf("Completed called %d times, want 1", completed)
	}
	values := rec.Values()
	if len(values) != 100 || !progress.IsNonDecreasing(values) || rec.Last() != 99 {
		t.Errorf("unexpected progress sequence: len=%d last=%d", len(values), rec.Last())
	}
}

func TestWorker_ZeroBufferDoesNotDeadlock(t *testing.T) {
	t.Parallel()
	w := New(fibonacci.TermWithProgress, WithBuffer(0))
	events, err := w.RunAsync(500)
	if err != nil {
		t.Fatalf("RunAsync() error = %v", err)
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		Pump(events, Handlers[int64]{})
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Pump did not finish with an unbuffered channel")
	}
}

func TestWithBuffer_IgnoresNegative(t *testing.T) {
	t.Parallel()
	w := New(fibonacci.TermWithProgress, WithBuffer(-3))
	if w.opts.buffer != DefaultEventBuffer {
		t.Errorf("buffer = %d, want %d", w.opts.buffer, DefaultEventBuffer)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()
	tests := map[State]string{Idle: "idle", Running: "running", Completed: "completed", State(5): "State(5)"}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
