package heap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the heap core, grounded on
// FibGo/internal/server/metrics.go and FibGo/internal/fibonacci/calculator.go's
// promauto usage. Registered once per process via promauto's default
// registerer; internal/server exposes them at /metrics.
var (
	allocationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_allocations_total",
		Help: "Total number of successful allocation requests.",
	})
	freesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_frees_total",
		Help: "Total number of successful manual free requests.",
	})
	outOfMemoryTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_out_of_memory_total",
		Help: "Total number of allocation requests that failed even after a GC retry.",
	})
	collectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_collections_total",
		Help: "Total number of garbage collection cycles run.",
	})
	blocksFreedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fibheap_blocks_freed_total",
		Help: "Total number of blocks reclaimed across all GC cycles.",
	})
	collectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "fibheap_collect_duration_seconds",
		Help: "Duration of a single garbage collection cycle.",
	})
	blocksFreeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibheap_blocks_free",
		Help: "Current number of free blocks.",
	})
	blocksUsedGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibheap_blocks_used",
		Help: "Current number of used blocks.",
	})
	bytesFreeGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fibheap_bytes_free",
		Help: "Current total size, in bytes, of all free blocks.",
	})
)

// refreshGauges recomputes the point-in-time gauges from the live block
// list. Called after every mutating operation.
func (h *Heap) refreshGauges() {
	free, used, bytesFree := 0, 0, 0
	for i := 0; i < h.list.Len(); i++ {
		b := h.list.Block(i)
		if b.State == Free {
			free++
			bytesFree += b.Size
		} else {
			used++
		}
	}
	blocksFreeGauge.Set(float64(free))
	blocksUsedGauge.Set(float64(used))
	bytesFreeGauge.Set(float64(bytesFree))
}
