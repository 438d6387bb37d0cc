package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncRunsTotal counts orchestrator calls by chain, direction and outcome status
	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_runs_total",
			Help: "Total number of transaction sync calls",
		},
		[]string{"chain", "direction", "status"},
	)

	// SyncDuration tracks orchestrator call duration
	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_sync_duration_seconds",
			Help:    "Transaction sync duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"chain", "direction"},
	)

	// PagesFetched counts explorer pages by provider and page status
	PagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_pages_fetched_total",
			Help: "Total number of explorer pages fetched",
		},
		[]string{"provider", "action", "status"},
	)

	// RecordsFetched counts raw records returned by explorers
	RecordsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_records_fetched_total",
			Help: "Total number of raw records returned by explorers",
		},
		[]string{"provider", "action"},
	)

	// FullResyncs counts upward overflows that wiped the cache
	FullResyncs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_full_resyncs_total",
			Help: "Total number of full resyncs triggered by a full upward page",
		},
		[]string{"chain"},
	)

	// EventsReconciled counts transfer events by flavour and result
	EventsReconciled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_events_reconciled_total",
			Help: "Total number of transfer events reconciled",
		},
		[]string{"chain", "flavour", "result"},
	)

	// TokensRegistered counts token registry writes by interface kind
	TokensRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_tokens_registered_total",
			Help: "Total number of token registry writes",
		},
		[]string{"chain", "kind"},
	)

	// ResetMarkersApplied counts reset marker transitions
	ResetMarkersApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_reset_markers_applied_total",
			Help: "Total number of reset marker version bumps applied",
		},
		[]string{"chain"},
	)

	// RateLimitWait tracks time spent waiting for a rate limit token
	RateLimitWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_sync_rate_limit_wait_seconds",
			Help:    "Time spent waiting for a rate limit token",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"provider"},
	)

	// LatestBlock tracks the last checkpoint head written per chain
	LatestBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "account_sync_latest_block",
			Help: "Last native checkpoint head written by chain",
		},
		[]string{"chain"},
	)

	// ErrorsTotal counts errors by component
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)

	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_sync_http_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks API request latency by route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_sync_http_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ScheduledAccounts counts watched accounts handed to the sync workflow by the scheduler
	ScheduledAccounts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "account_sync_scheduled_accounts_total",
			Help: "Total number of watched accounts scheduled for sync",
		},
	)
)
