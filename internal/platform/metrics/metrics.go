package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for planning runs.
type Metrics struct {
	RunsTotal        *prometheus.CounterVec
	PartnersIngested prometheus.Counter
	CountriesPlanned *prometheus.CounterVec
	PlanDuration     prometheus.Histogram
	LastRunTimestamp prometheus.Gauge
}

// New creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer in main and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "partnerplan_runs_total",
			Help: "Total number of planning runs by outcome",
		}, []string{"outcome"}),
		PartnersIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "partnerplan_partners_ingested_total",
			Help: "Total number of partner records planned",
		}),
		CountriesPlanned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "partnerplan_countries_planned_total",
			Help: "Total number of country results, split by whether a start date was found",
		}, []string{"consensus"}),
		PlanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "partnerplan_plan_duration_seconds",
			Help:    "Time spent computing start dates and rosters",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "partnerplan_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}
}

// ObservePlan records one pass of the planner.
func (m *Metrics) ObservePlan(partners, scheduled, unscheduled int, took time.Duration) {
	m.PartnersIngested.Add(float64(partners))
	m.CountriesPlanned.WithLabelValues(strconv.FormatBool(true)).Add(float64(scheduled))
	m.CountriesPlanned.WithLabelValues(strconv.FormatBool(false)).Add(float64(unscheduled))
	m.PlanDuration.Observe(took.Seconds())
}

// IncrementRuns counts a finished batch run.
func (m *Metrics) IncrementRuns(outcome string, at time.Time) {
	m.RunsTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.LastRunTimestamp.Set(float64(at.Unix()))
	}
}
