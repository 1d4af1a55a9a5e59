// Package task provides a deferred computation that is created, started and
// awaited as separate steps.
//
// A Task does nothing until Start is called. Wait is the explicit suspension
// point: the caller blocks until the computation finishes or its context is
// done. Waiting on a task that was never started returns ErrNotStarted instead
// of blocking forever.
package task

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrNotStarted is returned by Wait for a task whose Start was never called.
	ErrNotStarted = errors.New("task: waited on a task that was never started")
	// ErrAlreadyStarted is returned by Start when the task is already running
	// or finished.
	ErrAlreadyStarted = errors.New("task: already started")
)

// Status is the lifecycle stage of a Task.
type Status int

const (
	// Created means the task exists but Start has not been called.
	Created Status = iota
	// Running means the computation is executing on its own goroutine.
	Running
	// Completed means the result is available.
	Completed
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Task is a computation of a single value of type T that runs on its own
// goroutine once started.
type Task[T any] struct {
	fn     func() T
	done   chan struct{}
	mu     sync.Mutex
	status Status
	result T
}

// New creates a task that will run fn when started.
func New[T any](fn func() T) *Task[T] {
	return &Task[T]{fn: fn, done: make(chan struct{})}
}

// Run creates and immediately starts a task.
func Run[T any](fn func() T) *Task[T] {
	t := New(fn)
	_ = t.Start()
	return t
}

// Start launches the computation on a new goroutine.
func (t *Task[T]) Start() error {
	t.mu.Lock()
	if t.status != Created {
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	t.status = Running
	t.mu.Unlock()

	go func() {
		result := t.fn()
		t.mu.Lock()
		t.result = result
		t.status = Completed
		t.mu.Unlock()
		close(t.done)
	}()
	return nil
}

// Status returns the current lifecycle stage.
func (t *Task[T]) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Done returns a channel closed when the computation completes.
// The channel never closes for a task that is not started.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Wait suspends the caller until the task completes and returns its result.
// It returns ctx.Err() if the context is done first, and ErrNotStarted
// immediately if the task was never started.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	if t.Status() == Created {
		return zero, ErrNotStarted
	}
	select {
	case <-t.done:
		t.mu.Lock()
		defer t.mu.Unlock()
		return t.result, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Unwrap waits for an outer task whose result is itself a task and returns
// that inner task. The inner task is returned as-is: if nobody started it,
// waiting on it reports ErrNotStarted.
func Unwrap[T any](ctx context.Context, outer *Task[*Task[T]]) (*Task[T], error) {
	inner, err := outer.Wait(ctx)
	if err != nil {
		return nil, err
	}
	return inner, nil
}
