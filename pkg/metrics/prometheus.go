package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain/service.Metrics using Prometheus.
type Recorder struct {
	analysesTotal   *prometheus.CounterVec
	providerErrors  *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	headlinesLabels *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "equitylens_analyses_total",
				Help: "Total number of completed stock analyses by verdict",
			},
			[]string{"verdict"},
		),
		providerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "equitylens_provider_errors_total",
				Help: "Total number of upstream provider errors",
			},
			[]string{"source"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "equitylens_fetch_duration_seconds",
				Help:    "Duration of outbound provider fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		headlinesLabels: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "equitylens_headlines_classified_total",
				Help: "Total number of classified news headlines by label",
			},
			[]string{"label"},
		),
	}
}

// RecordAnalysis records a completed analysis with its verdict.
func (r *Recorder) RecordAnalysis(verdict string) {
	r.analysesTotal.WithLabelValues(verdict).Inc()
}

// RecordProviderError records a failed upstream call.
func (r *Recorder) RecordProviderError(source string) {
	r.providerErrors.WithLabelValues(source).Inc()
}

// RecordFetchDuration records the duration of an outbound fetch.
func (r *Recorder) RecordFetchDuration(source string, d time.Duration) {
	r.fetchDuration.WithLabelValues(source).Observe(d.Seconds())
}

// RecordHeadlineLabel records one classified headline.
func (r *Recorder) RecordHeadlineLabel(label string) {
	r.headlinesLabels.WithLabelValues(label).Inc()
}
