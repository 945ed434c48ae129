package background

import "github.com/prometheus/client_golang/prometheus"

// StatsCollector exposes executor counters as Prometheus metrics. It reads a
// Stats snapshot on every scrape and emits const metrics, so it adds no
// bookkeeping to the submission path. Nothing registers it implicitly:
//
//	prometheus.MustRegister(background.NewStatsCollector(exec))
type StatsCollector struct {
	exec *Executor

	submitted *prometheus.Desc
	rejected  *prometheus.Desc
	completed *prometheus.Desc
	failed    *prometheus.Desc
	queued    *prometheus.Desc
	inFlight  *prometheus.Desc
}

// NewStatsCollector builds a collector for exec.
func NewStatsCollector(exec *Executor) *StatsCollector {
	return &StatsCollector{
		exec: exec,
		submitted: prometheus.NewDesc(
			"background_jobs_submitted_total",
			"Jobs accepted by the background executor.",
			nil, nil),
		rejected: prometheus.NewDesc(
			"background_jobs_rejected_total",
			"Submissions rejected as duplicates, over capacity, or after shutdown.",
			nil, nil),
		completed: prometheus.NewDesc(
			"background_jobs_completed_total",
			"Jobs that finished executing, successfully or not.",
			nil, nil),
		failed: prometheus.NewDesc(
			"background_jobs_failed_total",
			"Jobs that returned an error or panicked.",
			nil, nil),
		queued: prometheus.NewDesc(
			"background_jobs_queued",
			"Accepted jobs not yet picked up by a worker.",
			nil, nil),
		inFlight: prometheus.NewDesc(
			"background_jobs_in_flight",
			"Jobs currently executing on a worker.",
			nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *StatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.submitted
	ch <- c.rejected
	ch <- c.completed
	ch <- c.failed
	ch <- c.queued
	ch <- c.inFlight
}

// Collect implements prometheus.Collector.
func (c *StatsCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.exec.Stats()
	ch <- prometheus.MustNewConstMetric(c.submitted, prometheus.CounterValue, float64(s.Submitted))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(s.Rejected))
	ch <- prometheus.MustNewConstMetric(c.completed, prometheus.CounterValue, float64(s.Completed))
	ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed))
	ch <- prometheus.MustNewConstMetric(c.queued, prometheus.GaugeValue, float64(s.Queued))
	ch <- prometheus.MustNewConstMetric(c.inFlight, prometheus.GaugeValue, float64(s.InFlight))
}
