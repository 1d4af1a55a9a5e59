package orchestration

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/fibmodes/internal/errors"
	"github.com/agbru/fibmodes/internal/fibonacci"
	"github.com/agbru/fibmodes/internal/logging"
	"github.com/agbru/fibmodes/internal/progress"
	"github.com/agbru/fibmodes/internal/task"
	"github.com/agbru/fibmodes/internal/worker"
)

// TracerName is the instrumentation scope used for dispatch spans.
const TracerName = "github.com/agbru/fibmodes/internal/orchestration"

// Status labels reported to the MetricsRecorder.
const (
	StatusOK         = "ok"
	StatusTimeout    = "timeout"
	StatusCanceled   = "canceled"
	StatusNotStarted = "not_started"
	StatusError      = "error"
)

// errWorkerStopped is returned if the event channel closes without a
// completion event.
var errWorkerStopped = errors.New("worker stopped without a result")

// Request describes one user-triggered computation.
type Request struct {
	// TermCount is the number of terms to iterate. It is read once per dispatch.
	TermCount uint64
	// Mode selects the execution context.
	Mode Mode
}

// Result is the outcome of a single dispatch.
type Result struct {
	Mode      Mode
	TermCount uint64
	// Value is the computed term. It is zero when Err is set.
	Value int64
	// Duration covers the computation and the caller's wait, not the display.
	Duration time.Duration
	Err      error
}

// Dispatcher runs the calculator in the execution context chosen by a
// Request and hands the value to a DisplaySink.
type Dispatcher struct {
	logger      logging.Logger
	metrics     MetricsRecorder
	tracer      trace.Tracer
	eventBuffer int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics sets the recorder notified of dispatch lifecycle events.
func WithMetrics(m MetricsRecorder) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.metrics = m
		}
	}
}

// WithTracer overrides the tracer taken from the global otel provider.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// WithEventBuffer sets the background worker's event channel capacity.
func WithEventBuffer(n int) Option {
	return func(d *Dispatcher) { d.eventBuffer = n }
}

// NewDispatcher creates a Dispatcher. Without options it logs nothing,
// records nothing and uses the global tracer provider.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		logger:      logging.NewNopLogger(),
		metrics:     nopMetrics{},
		tracer:      otel.Tracer(TracerName),
		eventBuffer: worker.DefaultEventBuffer,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch computes the term for req in the requested mode and shows it on
// display. It must be called from the goroutine that owns display and
// surface: every sink call happens there.
//
// On success display.Show is called exactly once. In background mode the
// surface is opened before the worker starts and closed after the value is
// shown. ctx bounds only the wait of the asynchronous modes; the computation
// itself always runs to completion.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, display DisplaySink, surface ProgressSurface) Result {
	if display == nil {
		display = DisplaySinkFunc(func(int64) {})
	}
	if surface == nil {
		surface = NullProgressSurface{}
	}
	mode := req.Mode.String()
	n := req.TermCount

	ctx, span := d.tracer.Start(ctx, "fibmodes.dispatch", trace.WithAttributes(
		attribute.String("mode", mode),
		attribute.Int64("term_count", termCountAttr(n)),
	))
	defer span.End()

	if !fibonacci.Fits(n) {
		d.logger.Warn("term exceeds int64, value will wrap",
			logging.Uint64("n", n), logging.Uint64("max_exact", fibonacci.MaxExactTerm))
	}
	d.logger.Debug("dispatch started", logging.String("mode", mode), logging.Uint64("n", n))
	d.metrics.DispatchStarted(mode)

	start := time.Now()
	var (
		value int64
		err   error
	)
	switch req.Mode {
	case ModeInline:
		value = fibonacci.Term(n)
	case ModeTaskFactory:
		value, err = d.runTaskFactory(ctx, n)
	case ModeAwaitTask:
		value, err = d.runAwaitTask(ctx, n)
	case ModeBackgroundWorker:
		value, err = d.runBackground(ctx, n, surface)
	default:
		err = fmt.Errorf("unsupported mode %s", req.Mode)
	}
	duration := time.Since(start)

	result := Result{Mode: req.Mode, TermCount: n, Duration: duration}
	if err != nil {
		result.Err = apperrors.DispatchError{Mode: mode, Cause: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if apperrors.IsContextError(err) {
			d.logger.Warn("dispatch wait abandoned", logging.String("mode", mode), logging.Uint64("n", n), logging.Err(err))
		} else {
			d.logger.Error("dispatch failed", err, logging.String("mode", mode), logging.Uint64("n", n))
		}
		d.metrics.DispatchFinished(mode, statusOf(err), duration)
		if req.Mode == ModeBackgroundWorker {
			surface.Close()
		}
		return result
	}

	result.Value = value
	display.Show(value)
	if req.Mode == ModeBackgroundWorker {
		surface.Close()
	}

	span.SetAttributes(attribute.Int64("value", value))
	d.logger.Debug("dispatch finished",
		logging.String("mode", mode), logging.Int64("value", value), logging.Float64("seconds", duration.Seconds()))
	d.metrics.DispatchFinished(mode, StatusOK, duration)
	return result
}

// runTaskFactory reproduces the factory construction: the started outer
// task produces a fresh inner task that nobody starts. Waiting on the inner
// task reports task.ErrNotStarted.
func (d *Dispatcher) runTaskFactory(ctx context.Context, n uint64) (int64, error) {
	outer := task.Run(func() *task.Task[int64] {
		return task.New(func() int64 { return fibonacci.Term(n) })
	})
	inner, err := task.Unwrap(ctx, outer)
	if err != nil {
		return 0, err
	}
	return inner.Wait(ctx)
}

func (d *Dispatcher) runAwaitTask(ctx context.Context, n uint64) (int64, error) {
	t := task.Run(func() int64 { return fibonacci.Term(n) })
	return t.Wait(ctx)
}

// runBackground forwards worker events to the surface on the calling
// goroutine until the completion event arrives.
func (d *Dispatcher) runBackground(ctx context.Context, n uint64, surface ProgressSurface) (int64, error) {
	subject := progress.NewSubject()
	subject.Register(surface)
	subject.Register(progress.ObserverFunc(d.metrics.ProgressUpdated))

	surface.Open()
	w := worker.New(fibonacci.TermWithProgress, worker.WithBuffer(d.eventBuffer))
	events, err := w.RunAsync(n)
	if err != nil {
		return 0, err
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0, errWorkerStopped
			}
			if ev.Done {
				return ev.Result, nil
			}
			subject.Notify(ev.Percent)
		case <-ctx.Done():
			// The worker keeps running; drain so its sends never block.
			go worker.Pump(events, worker.Handlers[int64]{})
			return 0, ctx.Err()
		}
	}
}

// termCountAttr saturates n at math.MaxInt64 for the int64 span attribute.
func termCountAttr(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	case errors.Is(err, context.Canceled):
		return StatusCanceled
	case errors.Is(err, task.ErrNotStarted):
		return StatusNotStarted
	default:
		return StatusError
	}
}
