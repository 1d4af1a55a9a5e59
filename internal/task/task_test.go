package task

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTask_StartAndWait(t *testing.T) {
	t.Parallel()
	tk := New(func() int { return 55 })
	if tk.Status() != Created {
		t.Fatalf("Status() = %v, want created", tk.Status())
	}
	if err := tk.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	got, err := tk.Wait(context.Background())
	if err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if got != 55 {
		t.Errorf("Wait() = %d, want 55", got)
	}
	if tk.Status() != Completed {
		t.Errorf("Status() = %v, want completed", tk.Status())
	}
}

func TestTask_WaitNotStarted(t *testing.T) {
	t.Parallel()
	tk := New(func() int { return 1 })
	_, err := tk.Wait(context.Background())
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("Wait() error = %v, want ErrNotStarted", err)
	}
}

func TestTask_StartTwice(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	tk := Run(func() int { calls.Add(1); return 0 })
	if err := tk.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want ErrAlreadyStarted", err)
	}
	if _, err := tk.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("fn ran %d times, want 1", calls.Load())
	}
}

func TestTask_WaitContextDone(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	tk := Run(func() int { <-release; return 1 })
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := tk.Wait(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() error = %v, want DeadlineExceeded", err)
	}
}

func TestTask_DoneChannel(t *testing.T) {
	t.Parallel()
	tk := Run(func() string { return "ok" })
	select {
	case <-tk.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Done() was not closed")
	}
}

func TestUnwrap_NeverStartedInner(t *testing.T) {
	t.Parallel()
	outer := Run(func() *Task[int] { return New(func() int { return 1 }) })

	inner, err := Unwrap(context.Background(), outer)
	if err != nil {
		t.Fatalf("Unwrap() error = %v", err)
	}
	if inner.Status() != Created {
		t.Errorf("inner Status() = %v, want created", inner.Status())
	}
	if _, err := inner.Wait(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("inner Wait() error = %v, want ErrNotStarted", err)
	}
}

func TestUnwrap_StartedInner(t *testing.T) {
	t.Parallel()
	outer := Run(func() *Task[int] { return Run(func() int { return 21 * 2 }) })
	inner, err := Unwrap(context.Background(), outer)
	if err != nil {
		t.Fatalf("Unwrap() error = %v", err)
	}
	got, err := inner.Wait(context.Background())
	if err != nil || got != 42 {
		t.Errorf("inner Wait() = (%d, %v), want (42, nil)", got, err)
	}
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	for s, want := range map[Status]string{Created: "created", Running: "running", Completed: "completed", Status(9): "unknown"} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
