package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Sync metrics
	SyncRuns        prometheus.Counter
	DonationsSynced prometheus.Counter
	SyncErrors      prometheus.Counter
	SyncDuration    prometheus.Histogram

	// Distribution metrics
	Distributions      *prometheus.CounterVec
	DistributionAmount prometheus.Histogram

	// Ledger RPC metrics
	LedgerRequests *prometheus.CounterVec
	LedgerDuration *prometheus.HistogramVec
	LedgerErrors   *prometheus.CounterVec

	// Database metrics
	DBQueries *prometheus.CounterVec
	DBErrors  *prometheus.CounterVec

	// Cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		SyncRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_sync_runs_total",
			Help: "Total number of donation sync runs",
		}),
		DonationsSynced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_donations_synced_total",
			Help: "Total number of new donations persisted by sync runs",
		}),
		SyncErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_sync_errors_total",
			Help: "Total number of per-entry errors recorded during sync runs",
		}),
		SyncDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_sync_duration_seconds",
			Help:    "Duration of donation sync runs",
			Buckets: prometheus.DefBuckets,
		}),

		Distributions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_distributions_total",
				Help: "Total distribution payouts by status",
			},
			[]string{"status"},
		),
		DistributionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_distribution_amount",
			Help:    "Distribution payout amounts",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 100},
		}),

		LedgerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_ledger_requests_total",
				Help: "Total ledger RPC requests by method",
			},
			[]string{"method"},
		),
		LedgerDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "treasury_ledger_request_duration_seconds",
				Help:    "Ledger RPC request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		LedgerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_ledger_errors_total",
				Help: "Total ledger RPC errors by method",
			},
			[]string{"method"},
		),

		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "treasury_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_cache_hits_total",
			Help: "Total cache hits on the balances view",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "treasury_cache_misses_total",
			Help: "Total cache misses on the balances view",
		}),
	}
}
