package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the ledger.
type Metrics struct {
	PoliciesPurchased prometheus.Counter
	ClaimsSubmitted   prometheus.Counter
	ClaimsProcessed   *prometheus.CounterVec
	CustodyBalance    prometheus.Gauge
	RequestLatency    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		PoliciesPurchased: promauto.NewCounter(prometheus.CounterOpts{
			Name: "healthledger_policies_purchased_total",
			Help: "Total number of policies issued.",
		}),
		ClaimsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "healthledger_claims_submitted_total",
			Help: "Total number of claims submitted.",
		}),
		ClaimsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "healthledger_claims_processed_total",
			Help: "Total number of claims adjudicated, by outcome.",
		}, []string{"outcome"}),
		CustodyBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "healthledger_treasury_custody_balance",
			Help: "Current treasury custody balance in micro-units.",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "healthledger_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
