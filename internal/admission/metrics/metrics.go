package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ConversionsTotal        prometheus.Counter
	ConversionFailures      *prometheus.CounterVec
	CompensationsTotal      prometheus.Counter
	CompensationFailures    prometheus.Counter
	RejectionsTotal         prometheus.Counter
	ReviewsTotal            prometheus.Counter
	ConversionDurationSecs  prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ConversionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "touchline_admission_conversions_total",
			Help: "Total number of applicants successfully converted to members",
		}),
		ConversionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "touchline_admission_conversion_failures_total",
			Help: "Total number of failed conversion attempts by error kind",
		}, []string{"kind"}),
		CompensationsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "touchline_admission_compensations_total",
			Help: "Total number of saga compensations executed",
		}),
		CompensationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "touchline_admission_compensation_failures_total",
			Help: "Total number of compensations that themselves failed; requires operator cleanup",
		}),
		RejectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "touchline_admission_rejections_total",
			Help: "Total number of applicants rejected",
		}),
		ReviewsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "touchline_admission_reviews_total",
			Help: "Total number of applicants advanced to review",
		}),
		ConversionDurationSecs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "touchline_admission_conversion_duration_seconds",
			Help:    "End-to-end duration of conversion sagas",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncConversions() {
	m.ConversionsTotal.Inc()
}

func (m *Metrics) IncConversionFailure(kind string) {
	m.ConversionFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncCompensations() {
	m.CompensationsTotal.Inc()
}

func (m *Metrics) IncCompensationFailures() {
	m.CompensationFailures.Inc()
}

func (m *Metrics) IncRejections() {
	m.RejectionsTotal.Inc()
}

func (m *Metrics) IncReviews() {
	m.ReviewsTotal.Inc()
}

func (m *Metrics) ObserveConversionDuration(seconds float64) {
	m.ConversionDurationSecs.Observe(seconds)
}
