// Package orchestration dispatches a Fibonacci computation to one of four
// execution modes and delivers the value to the caller's display. It decouples
// the computation from presentation via the DisplaySink, ProgressSurface and
// ResultPresenter interfaces.
package orchestration
