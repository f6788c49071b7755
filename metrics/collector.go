package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/aprint/core"
	"github.com/philipp01105/aprint/stream"
)

// StatsProvider is implemented by *stream.Handle
type StatsProvider interface {
	Stream() core.Stream
	Stats() stream.Snapshot
}

// Collector is a prometheus.Collector over a fixed set of handles
type Collector struct {
	handles []StatsProvider

	writes    *prometheus.Desc
	bytes     *prometheus.Desc
	failures  *prometheus.Desc
	cancelled *prometheus.Desc
}

// NewCollector creates a collector reporting the statistics of handles
func NewCollector(handles ...StatsProvider) *Collector {
	labels := []string{"stream"}
	return &Collector{
		handles: handles,
		writes: prometheus.NewDesc("aprint_writes_total",
			"Number of completed writes.", labels, nil),
		bytes: prometheus.NewDesc("aprint_written_bytes_total",
			"Number of bytes accepted by the stream.", labels, nil),
		failures: prometheus.NewDesc("aprint_write_failures_total",
			"Number of writes that failed.", labels, nil),
		cancelled: prometheus.NewDesc("aprint_cancelled_total",
			"Number of writes abandoned before they started.", labels, nil),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.writes
	ch <- c.bytes
	ch <- c.failures
	ch <- c.cancelled
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, h := range c.handles {
		name := h.Stream().String()
		snap := h.Stats()
		ch <- prometheus.MustNewConstMetric(c.writes, prometheus.CounterValue, float64(snap.WritesTotal), name)
		ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.CounterValue, float64(snap.BytesTotal), name)
		ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(snap.FailedTotal), name)
		ch <- prometheus.MustNewConstMetric(c.cancelled, prometheus.CounterValue, float64(snap.CancelledTotal), name)
	}
}
