package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	transactionDuration prometheus.Histogram
	dashboardDuration   prometheus.Histogram
	dashboardCacheHits  prometheus.Counter
	netWorth            prometheus.Gauge
	seededRecords       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the finance metrics with reg. A nil reg
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_transactions_created_total",
				Help: "Total number of transaction create attempts",
			},
			[]string{"status"},
		),
		transactionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_transaction_create_duration_milliseconds",
				Help:    "Transaction create duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "finance_dashboard_build_duration_milliseconds",
				Help:    "Time spent assembling the dashboard on a cache miss",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		dashboardCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_dashboard_cache_hits_total",
				Help: "Total number of dashboards served from cache",
			},
		),
		netWorth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "finance_net_worth",
				Help: "Net worth from the last assembled balance sheet",
			},
		),
		seededRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_seeded_records_total",
				Help: "Total number of demo records written by the seeder",
			},
			[]string{"entity"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transactions_created_total":
		if status := tags["status"]; status != "" {
			m.transactionsCreated.WithLabelValues(status).Inc()
		}
	case "dashboard_cache_hits_total":
		m.dashboardCacheHits.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction_create":
		m.transactionDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard_build":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "net_worth":
		m.netWorth.Set(value)
	case "seeded_records":
		if entity := tags["entity"]; entity != "" {
			m.seededRecords.WithLabelValues(entity).Add(value)
		}
	}
}
