package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by application
	HeapObjects uint64 // number of allocated heap objects
	NumGC       uint32 // number of completed GC cycles
}

// MemoryCollector reports heap usage as Prometheus gauges at scrape time.
type MemoryCollector struct {
	heapAlloc   *prometheus.Desc
	heapObjects *prometheus.Desc
	numGC       *prometheus.Desc
}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{
		heapAlloc: prometheus.NewDesc(prometheus.BuildFQName(Namespace, "memory", "heap_alloc_bytes"),
			"Bytes of allocated heap objects.", nil, nil),
		heapObjects: prometheus.NewDesc(prometheus.BuildFQName(Namespace, "memory", "heap_objects"),
			"Number of allocated heap objects.", nil, nil),
		numGC: prometheus.NewDesc(prometheus.BuildFQName(Namespace, "memory", "gc_cycles"),
			"Number of completed GC cycles.", nil, nil),
	}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{HeapAlloc: m.HeapAlloc, HeapObjects: m.HeapObjects, NumGC: m.NumGC}
}

// Describe implements prometheus.Collector.
func (mc *MemoryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- mc.heapAlloc
	ch <- mc.heapObjects
	ch <- mc.numGC
}

// Collect implements prometheus.Collector.
func (mc *MemoryCollector) Collect(ch chan<- prometheus.Metric) {
	s := mc.Snapshot()
	ch <- prometheus.MustNewConstMetric(mc.heapAlloc, prometheus.GaugeValue, float64(s.HeapAlloc))
	ch <- prometheus.MustNewConstMetric(mc.heapObjects, prometheus.GaugeValue, float64(s.HeapObjects))
	ch <- prometheus.MustNewConstMetric(mc.numGC, prometheus.CounterValue, float64(s.NumGC))
}
