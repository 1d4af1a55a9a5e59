package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "fibmodes"

// Recorder counts dispatches and progress notifications.
type Recorder struct {
	registry *prometheus.Registry
	dispatch *prometheus.CounterVec
	duration *prometheus.HistogramVec
	progress prometheus.Counter
	inFlight prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry, so several recorders
// (one per test, say) never collide on the default registerer.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		dispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "dispatch_total",
			Help:      "Dispatches by execution mode and outcome.",
		}, []string{"mode", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time from trigger to result, per execution mode.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
		}, []string{"mode"}),
		progress: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "progress_updates_total",
			Help:      "Progress notifications delivered to a progress surface.",
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "dispatch_in_flight",
			Help:      "Dispatches currently running.",
		}),
	}
	r.registry.MustRegister(
		r.dispatch, r.duration, r.progress, r.inFlight,
		NewMemoryCollector(),
		collectors.NewGoCollector(),
	)
	return r
}

// DispatchStarted marks a dispatch as in flight.
func (r *Recorder) DispatchStarted(string) {
	r.inFlight.Inc()
}

// DispatchFinished records the outcome and duration of a dispatch.
func (r *Recorder) DispatchFinished(mode, status string, d time.Duration) {
	r.inFlight.Dec()
	r.dispatch.WithLabelValues(mode, status).Inc()
	r.duration.WithLabelValues(mode).Observe(d.Seconds())
}

// ProgressUpdated counts one progress notification.
func (r *Recorder) ProgressUpdated(int) {
	r.progress.Inc()
}

// Registry returns the registry the recorder writes to.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler returns an HTTP handler serving the recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
