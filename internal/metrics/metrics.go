package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QuoteRequests counts aggregated quote requests by result
	QuoteRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_quote_requests_total",
			Help: "Total number of aggregated quote requests",
		},
		[]string{"result"},
	)

	// ProviderRequests counts calls made to payment providers
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_provider_requests_total",
			Help: "Total number of provider calls by operation and outcome",
		},
		[]string{"provider", "operation", "outcome"},
	)

	// ProviderLatency tracks provider call duration
	ProviderLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramp_provider_request_duration_seconds",
			Help:    "Provider call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)

	// TransactionsCreated counts transactions created by type
	TransactionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_transactions_created_total",
			Help: "Total number of transactions created",
		},
		[]string{"type"},
	)

	// StatusTransitions counts transaction status changes
	StatusTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_transaction_status_transitions_total",
			Help: "Total number of transaction status transitions",
		},
		[]string{"from", "to"},
	)

	// Retries counts retry attempts by outcome
	Retries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_transaction_retries_total",
			Help: "Total number of transaction retries by outcome",
		},
		[]string{"outcome"},
	)

	// TransactionsExpired counts transactions removed by the retention sweep
	TransactionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ramp_transactions_expired_total",
			Help: "Total number of transactions removed by retention",
		},
	)

	// SnapshotFlushes counts transaction snapshot writes by result
	SnapshotFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_snapshot_flushes_total",
			Help: "Total number of transaction snapshot flushes",
		},
		[]string{"result"},
	)

	// StoredTransactions tracks the number of transactions held by the store
	StoredTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ramp_stored_transactions",
			Help: "Number of transactions currently held in the lifecycle store",
		},
	)

	// WebhookEvents counts provider webhook deliveries
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_webhook_events_total",
			Help: "Total number of provider webhook deliveries",
		},
		[]string{"provider", "event", "result"},
	)

	// EventsPublished counts lifecycle events sent to the event bus
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramp_events_published_total",
			Help: "Total number of transaction lifecycle events published",
		},
		[]string{"type", "result"},
	)
)
