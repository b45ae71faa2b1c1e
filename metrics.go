package sunrise

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/subtlepseudonym/sunrise/solar"
)

const metricsNamespace = "sunrise"

// Metrics holds the Prometheus collectors for scheduled jobs and
// solar event lookups. A nil *Metrics records nothing.
type Metrics struct {
	JobRuns       *prometheus.CounterVec   // labels: job, outcome={success,error}
	JobDuration   *prometheus.HistogramVec // labels: job
	MissingEvents *prometheus.CounterVec   // labels: event
	EventQueries  prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		JobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job executions by outcome.",
		}, []string{"job", "outcome"}),
		JobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "job_duration_seconds",
			Help:      "Wall time of scheduled job executions.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
		}, []string{"job"}),
		MissingEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "missing_events_total",
			Help:      "Days skipped while scheduling because the solar event does not occur.",
		}, []string{"event"}),
		EventQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "event_queries_total",
			Help:      "Requests served by the events endpoint.",
		}),
	}

	reg.MustRegister(
		m.JobRuns,
		m.JobDuration,
		m.MissingEvents,
		m.EventQueries,
	)

	return m
}

func (m *Metrics) eventMissing(event solar.Event) {
	if m == nil {
		return
	}
	m.MissingEvents.WithLabelValues(event.String()).Inc()
}

func (m *Metrics) jobFinished(job string, seconds float64, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.JobRuns.WithLabelValues(job, outcome).Inc()
	m.JobDuration.WithLabelValues(job).Observe(seconds)
}

func (m *Metrics) eventQueried() {
	if m == nil {
		return
	}
	m.EventQueries.Inc()
}
