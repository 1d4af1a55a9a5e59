// Package worker runs a single computation on a background goroutine and
// delivers its progress and completion as messages.
//
// The goroutine that calls RunAsync owns the returned event channel and is
// expected to consume it: progress events arrive in the order they were
// reported, the completion event is always last, and the channel is closed
// right after it. This keeps every side effect on surfaces owned by the
// caller on the caller's goroutine.
package worker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/agbru/fibmodes/internal/progress"
)

// DefaultEventBuffer is the event channel capacity used when no WithBuffer
// option is given. Progress sends block once it is full, so the value only
// trades memory for fewer goroutine handoffs.
const DefaultEventBuffer = 128

// ErrBusy is returned by RunAsync when the worker has already been launched.
var ErrBusy = errors.New("worker: already running or completed")

// State is the lifecycle state of a Worker.
type State int

const (
	// Idle is the state before RunAsync.
	Idle State = iota
	// Running is the state while the work function executes.
	Running
	// Completed is the terminal state, entered exactly once.
	Completed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is one message from the worker goroutine. Exactly one event per run
// has Done set, and it carries the result.
type Event[T any] struct {
	// Percent is the progress boundary reached. Meaningless when Done is set.
	Percent int
	// Done marks the completion event.
	Done bool
	// Result is the value returned by the work function. Only set when Done.
	Result T
}

// WorkFunc is the computation executed by the worker. It receives the
// argument passed to RunAsync and a callback for reporting progress.
type WorkFunc[T any] func(arg uint64, report progress.Callback) T

// Option configures a Worker.
type Option func(*options)

type options struct {
	buffer int
}

// WithBuffer sets the event channel capacity. Values below zero are ignored.
func WithBuffer(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.buffer = n
		}
	}
}

// Worker executes a WorkFunc once on a background goroutine.
type Worker[T any] struct {
	work WorkFunc[T]
	opts options

	mu    sync.Mutex
	state State
}

// New creates an idle worker for work.
func New[T any](work WorkFunc[T], opts ...Option) *Worker[T] {
	o := options{buffer: DefaultEventBuffer}
	for _, opt := range opts {
		opt(&o)
	}
	return &Worker[T]{work: work, opts: o}
}

// State returns the current lifecycle state.
func (w *Worker[T]) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// RunAsync transitions Idle to Running and starts the work on a new
// goroutine. The returned channel yields progress events followed by a single
// completion event, then is closed. The transition to Completed happens
// before the completion event is sent.
func (w *Worker[T]) RunAsync(arg uint64) (<-chan Event[T], error) {
	w.mu.Lock()
	if w.state != Idle {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	w.state = Running
	w.mu.Unlock()

	events := make(chan Event[T], w.opts.buffer)
	go func() {
		defer close(events)
		result := w.work(arg, func(percent int) {
			events <- Event[T]{Percent: percent}
		})

		w.mu.Lock()
		w.state = Completed
		w.mu.Unlock()

		events <- Event[T]{Done: true, Result: result}
	}()
	return events, nil
}

// Handlers are the callbacks invoked by Pump on the consuming goroutine.
// Either may be nil.
type Handlers[T any] struct {
	ProgressChanged func(percent int)
	Completed       func(result T)
}

// Pump consumes events until the channel is closed, dispatching them to h in
// order. It returns the result carried by the completion event and whether
// one was seen.
func Pump[T any](events <-chan Event[T], h Handlers[T]) (T, bool) {
	var (
		result T
		done   bool
	)
	for ev := range events {
		if ev.Done {
			result, done = ev.Result, true
			if h.Completed != nil {
				h.Completed(ev.Result)
			}
			continue
		}
		if h.ProgressChanged != nil {
			h.ProgressChanged(ev.Percent)
		}
	}
	return result, done
}
