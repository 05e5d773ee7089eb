package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a survey run.
type Metrics struct {
	ReadingsAccepted prometheus.Counter
	ReadingsRejected *prometheus.CounterVec // labels: reason={out_of_range,malformed}
	SurveysCompleted prometheus.Counter
	SurveyDuration   prometheus.Histogram
	LastAverage      prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics creates and registers all survey metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReadingsAccepted,
		m.ReadingsRejected,
		m.SurveysCompleted,
		m.SurveyDuration,
		m.LastAverage,
	)
	m.gatherer = prometheus.DefaultGatherer
	return m
}

// NewMetricsForTesting creates Metrics on a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	m := newMetrics()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		m.ReadingsAccepted,
		m.ReadingsRejected,
		m.SurveysCompleted,
		m.SurveyDuration,
		m.LastAverage,
	)
	m.gatherer = reg
	return m
}

func newMetrics() *Metrics {
	return &Metrics{
		ReadingsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temperature_survey",
			Name:      "readings_accepted_total",
			Help:      "Total temperature readings that passed range validation.",
		}),
		ReadingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "temperature_survey",
			Name:      "readings_rejected_total",
			Help:      "Rejected inputs by reason.",
		}, []string{"reason"}),
		SurveysCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "temperature_survey",
			Name:      "surveys_completed_total",
			Help:      "Surveys that collected every city.",
		}),
		SurveyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "temperature_survey",
			Name:      "survey_duration_seconds",
			Help:      "Wall time from the first prompt to the last accepted reading.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		LastAverage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "temperature_survey",
			Name:      "last_average_celsius",
			Help:      "Average of the most recently completed survey.",
		}),
	}
}

// WriteTextfile dumps every registered metric to path in the node_exporter
// textfile collector format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
