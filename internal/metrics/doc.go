// Package metrics exposes dispatch metrics in Prometheus format.
//
// Recorder implements orchestration.MetricsRecorder on a private registry,
// and Server serves that registry over HTTP alongside a health check.
package metrics
