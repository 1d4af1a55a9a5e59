//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"
)

// DisplaySink receives the computed value. The dispatcher calls Show at most
// once per dispatch, after the computation has finished, on the goroutine
// that called Dispatch.
type DisplaySink interface {
	Show(value int64)
}

// DisplaySinkFunc is a function adapter that implements DisplaySink.
type DisplaySinkFunc func(value int64)

// Show calls the underlying function.
func (f DisplaySinkFunc) Show(value int64) { f(value) }

// ProgressSurface visualizes the progress of a background dispatch.
//
// Open is called before the worker starts, Update once per percentage
// boundary in increasing order, and Close after the value has been shown.
// All calls happen on the goroutine that called Dispatch.
type ProgressSurface interface {
	Open()
	Update(percent int)
	Close()
}

// NullProgressSurface is a no-op ProgressSurface for quiet mode and tests.
type NullProgressSurface struct{}

// Open does nothing.
func (NullProgressSurface) Open() {}

// Update does nothing.
func (NullProgressSurface) Update(int) {}

// Close does nothing.
func (NullProgressSurface) Close() {}

// CaptureSink is a DisplaySink that records every value it is shown.
// It is safe for concurrent use.
type CaptureSink struct {
	mu     sync.Mutex
	values []int64
}

// Show records value.
func (c *CaptureSink) Show(value int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, value)
}

// Values returns a copy of the recorded values.
func (c *CaptureSink) Values() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]int64, len(c.values))
	copy(out, c.values)
	return out
}

// Count returns how many times Show was called.
func (c *CaptureSink) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.values)
}

// ResultPresenter presents dispatch results. It keeps the orchestration
// layer free of formatting concerns so the CLI can own the output layout.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per mode.
	PresentComparisonTable(results []Result, out io.Writer)

	// PresentResult displays the final value of a successful dispatch.
	PresentResult(result Result, out io.Writer)

	// HandleError reports a failed dispatch and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// MetricsRecorder observes dispatch lifecycle events.
type MetricsRecorder interface {
	DispatchStarted(mode string)
	DispatchFinished(mode, status string, duration time.Duration)
	ProgressUpdated(percent int)
}

type nopMetrics struct{}

func (nopMetrics) DispatchStarted(string) {}

func (nopMetrics) DispatchFinished(string, string, time.Duration) {}

func (nopMetrics) ProgressUpdated(int) {}
