package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "fitscan"

// ScanMetrics holds the collectors for one scan. Each instance owns a private
// registry, so several scans in one process do not collide.
type ScanMetrics struct {
	registry     *prometheus.Registry
	files        prometheus.Counter
	outcomes     *prometheus.CounterVec
	latency      prometheus.Histogram
	best         *prometheus.GaugeVec
	scanDuration prometheus.Gauge
	workers      prometheus.Gauge
}

// NewScanMetrics creates the collectors and registers them, together with
// the Go runtime collector, on a fresh registry. statuses pre-creates the
// outcome series so that zero counts are exported.
func NewScanMetrics(statuses ...string) *ScanMetrics {
	m := &ScanMetrics{
		registry: prometheus.NewRegistry(),
		files: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_total",
			Help:      "Number of files inspected.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "file_outcomes_total",
			Help:      "Number of inspected files by outcome.",
		}, []string{"status"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "extract_duration_seconds",
			Help:      "Time spent extracting metrics from a single file.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		best: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_value",
			Help:      "Lowest value found for each metric.",
		}, []string{"metric"}),
		scanDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall-clock duration of the scan.",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "workers",
			Help:      "Size of the extraction worker pool.",
		}),
	}

	m.registry.MustRegister(
		m.files,
		m.outcomes,
		m.latency,
		m.best,
		m.scanDuration,
		m.workers,
		collectors.NewGoCollector(),
	)
	for _, s := range statuses {
		m.outcomes.WithLabelValues(s)
	}
	return m
}

// ObserveFile records one inspected file.
func (m *ScanMetrics) ObserveFile(status string, elapsed time.Duration) {
	m.files.Inc()
	m.outcomes.WithLabelValues(status).Inc()
	m.latency.Observe(elapsed.Seconds())
}

// SetBest records the winning value for a metric.
func (m *ScanMetrics) SetBest(metric string, value float64) {
	m.best.WithLabelValues(metric).Set(value)
}

// SetScanDuration records the total scan time.
func (m *ScanMetrics) SetScanDuration(d time.Duration) {
	m.scanDuration.Set(d.Seconds())
}

// SetWorkers records the configured pool size.
func (m *ScanMetrics) SetWorkers(n int) {
	m.workers.Set(float64(n))
}

// Gatherer exposes the registry, e.g. for tests or an HTTP handler.
func (m *ScanMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteToTextfile writes the current values in the Prometheus text format.
// The file is written atomically.
func (m *ScanMetrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
