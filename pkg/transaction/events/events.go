// Package events publishes transaction lifecycle changes.
package events

import (
	"context"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

// Event types.
const (
	TypeCreated      = "transaction.created"
	TypeUpdated      = "transaction.updated"
	TypeRetryStarted = "transaction.retry_started"
	TypeRetried      = "transaction.retried"
	TypeExpired      = "transaction.expired"
)

// Event is a single lifecycle change.
type Event struct {
	Type           string             `json:"type"`
	TransactionID  string             `json:"transactionId"`
	TxType         transaction.Type   `json:"txType,omitempty"`
	Status         transaction.Status `json:"status,omitempty"`
	PreviousStatus transaction.Status `json:"previousStatus,omitempty"`
	Provider       string             `json:"provider,omitempty"`
	RetryCount     int                `json:"retryCount"`
	OccurredAt     int64              `json:"occurredAt"`
}

// FromTransaction builds an event describing t.
func FromTransaction(typ string, t *transaction.Transaction, previous transaction.Status, at int64) Event {
	return Event{
		Type:           typ,
		TransactionID:  t.ID,
		TxType:         t.Type,
		Status:         t.Status,
		PreviousStatus: previous,
		Provider:       t.Metadata.ProviderName,
		RetryCount:     t.RetryCount,
		OccurredAt:     at,
	}
}

// Publisher delivers lifecycle events.
//
//go:generate mockery --name Publisher --output mocks --outpkg mocks --filename mock_publisher.go --with-expecter
type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
	Close() error
}

// Nop drops every event.
type Nop struct{}

// Publish does nothing.
func (Nop) Publish(context.Context, ...Event) error { return nil }

// Close does nothing.
func (Nop) Close() error { return nil }
