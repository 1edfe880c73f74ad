package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for the ingestion worker.
type Metrics struct {
	// IngestRunsTotal counts ingestion runs by status (success/failure).
	IngestRunsTotal *prometheus.CounterVec

	// IngestRunDurationSeconds measures how long one ingestion run takes.
	IngestRunDurationSeconds prometheus.Histogram

	// IngestItemsTotal counts wire items by source and outcome
	// (inserted/duplicated/failed).
	IngestItemsTotal *prometheus.CounterVec

	// IngestLastSuccessTimestamp is the Unix time of the last successful run.
	IngestLastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates and registers the worker metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		IngestRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_ingest_runs_total",
			Help: "Total number of ingestion runs by status (success/failure)",
		}, []string{"status"}),

		IngestRunDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_ingest_run_duration_seconds",
			Help:    "Duration of one ingestion run in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		IngestItemsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_ingest_items_total",
			Help: "Total number of wire items by source and outcome",
		}, []string{"source", "result"}),

		IngestLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_ingest_last_success_timestamp",
			Help: "Unix timestamp of the last successful ingestion run",
		}),
	}
}

// RecordRun increments the run counter for the given status.
func (m *Metrics) RecordRun(status string) {
	m.IngestRunsTotal.WithLabelValues(status).Inc()
}

// RecordRunDuration observes the duration of an ingestion run in seconds.
func (m *Metrics) RecordRunDuration(seconds float64) {
	m.IngestRunDurationSeconds.Observe(seconds)
}

// RecordItem counts one wire item outcome for a source.
func (m *Metrics) RecordItem(source, result string) {
	m.IngestItemsTotal.WithLabelValues(source, result).Inc()
}

// RecordLastSuccess records the current time as the last successful run.
func (m *Metrics) RecordLastSuccess() {
	m.IngestLastSuccessTimestamp.SetToCurrentTime()
}
