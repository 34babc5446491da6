package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DrawsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsGenerated,
			Help: HelpTextDrawsGenerated,
		},
		[]string{LabelGame},
	)

	EncountersRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersRecorded,
			Help: HelpTextEncountersRecorded,
		},
		[]string{LabelGame},
	)

	SummariesComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSummariesComputed,
			Help: HelpTextSummariesComputed,
		},
	)

	// Amounts are not sign-checked, so these are gauges
	AmountSpent = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAmountSpent,
			Help: HelpTextAmountSpent,
		},
	)

	AmountWon = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameAmountWon,
			Help: HelpTextAmountWon,
		},
	)
)
