// Package transaction holds the ramp transaction domain model: its status
// machine, metadata, patches, filters and statistics.
package transaction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jahpay/ramp-aggregator/pkg/provider"
)

var (
	// ErrTransactionNotFound is returned when no transaction has the given id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidTransition is returned for a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotRetryable is returned when retrying a transaction in a terminal status.
	ErrNotRetryable = errors.New("transaction cannot be retried")
	// ErrRetryInFlight is returned when a retry for the same id is already running.
	ErrRetryInFlight = errors.New("retry already in progress")
	// ErrInvalidType is returned for an unknown transaction type.
	ErrInvalidType = errors.New("invalid transaction type")
	// ErrInvalidStatus is returned for an unknown transaction status.
	ErrInvalidStatus = errors.New("invalid transaction status")
)

// Error codes stamped into Metadata.Error.
const (
	CodeMaxRetriesExceeded = "MAX_RETRIES_EXCEEDED"
	CodeRetryFailed        = "RETRY_FAILED"
)

// DefaultMaxRetries is the retry budget of a new transaction.
const DefaultMaxRetries = 3

// Type is the kind of money movement.
type Type string

const (
	TypeSwap       Type = "swap"
	TypeSend       Type = "send"
	TypeReceive    Type = "receive"
	TypeDeposit    Type = "deposit"
	TypeWithdrawal Type = "withdrawal"
)

// ParseType validates s as a transaction type.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case TypeSwap, TypeSend, TypeReceive, TypeDeposit, TypeWithdrawal:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// ParseStatus validates s as a transaction status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled, StatusRefunded:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// IsTerminal reports whether no further transition is possible.
// A failed transaction is terminal only once its retries are used up.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether s may move to next. Staying in the same
// status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled || next == StatusFailed
	case StatusProcessing:
		return next == StatusCompleted || next == StatusFailed
	case StatusFailed:
		return next == StatusProcessing
	default:
		return false
	}
}

// ErrorInfo describes the last failure of a transaction.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// Metadata carries provider and chain details of a transaction.
type Metadata struct {
	ProviderName  string     `json:"providerName"`
	ProviderID    string     `json:"providerId,omitempty"`
	TxHash        string     `json:"txHash,omitempty"`
	FromAddress   string     `json:"fromAddress,omitempty"`
	ToAddress     string     `json:"toAddress,omitempty"`
	Fee           string     `json:"fee,omitempty"`
	FeeCurrency   string     `json:"feeCurrency,omitempty"`
	Timestamp     int64      `json:"timestamp"`
	BlockNumber   *int64     `json:"blockNumber,omitempty"`
	Confirmations *int       `json:"confirmations,omitempty"`
	ExplorerURL   string     `json:"explorerUrl,omitempty"`
	LastRetry     int64      `json:"lastRetry,omitempty"`
	LastUpdated   int64      `json:"lastUpdated,omitempty"`
	Error         *ErrorInfo `json:"error,omitempty"`
}

func (m Metadata) clone() Metadata {
	out := m
	if m.BlockNumber != nil {
		v := *m.BlockNumber
		out.BlockNumber = &v
	}
	if m.Confirmations != nil {
		v := *m.Confirmations
		out.Confirmations = &v
	}
	if m.Error != nil {
		e := *m.Error
		out.Error = &e
	}
	return out
}

// Transaction is a quote that has been acted on.
type Transaction struct {
	provider.Quote
	ID           string   `json:"id"`
	Type         Type     `json:"type"`
	Status       Status   `json:"status"`
	FromCurrency string   `json:"fromCurrency,omitempty"`
	ToCurrency   string   `json:"toCurrency,omitempty"`
	Metadata     Metadata `json:"metadata"`
	CreatedAt    int64    `json:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt"`
	RetryCount   int      `json:"retryCount"`
	MaxRetries   int      `json:"maxRetries"`
}

// Clone returns a deep copy of t.
func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}
	out := *t
	out.Metadata = t.Metadata.clone()
	return &out
}

// RetriesExhausted reports whether the retry budget is used up.
func (t *Transaction) RetriesExhausted() bool {
	return t.RetryCount >= t.MaxRetries
}

// Draft is the caller-supplied part of a new transaction. Identity,
// timestamps and retry counters are assigned by the store.
type Draft struct {
	provider.Quote
	Type         Type
	Status       Status
	FromCurrency string
	ToCurrency   string
	Metadata     Metadata
	MaxRetries   int
}

// NewFromDraft builds a stored transaction from d. An empty status becomes
// pending and a non-positive retry budget becomes maxRetries.
func NewFromDraft(d Draft, id string, now int64, maxRetries int) *Transaction {
	t := &Transaction{
		Quote:        d.Quote,
		ID:           id,
		Type:         d.Type,
		Status:       d.Status,
		FromCurrency: d.FromCurrency,
		ToCurrency:   d.ToCurrency,
		Metadata:     d.Metadata.clone(),
		CreatedAt:    now,
		UpdatedAt:    now,
		MaxRetries:   d.MaxRetries,
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.MaxRetries <= 0 {
		t.MaxRetries = maxRetries
	}
	if t.Metadata.Timestamp == 0 {
		t.Metadata.Timestamp = now
	}
	if t.Metadata.ProviderName == "" {
		t.Metadata.ProviderName = d.Provider
	}
	return t
}

// MetadataPatch updates the fields that are set and keeps the rest.
type MetadataPatch struct {
	ProviderName  *string
	ProviderID    *string
	TxHash        *string
	FromAddress   *string
	ToAddress     *string
	Fee           *string
	FeeCurrency   *string
	Timestamp     *int64
	BlockNumber   *int64
	Confirmations *int
	ExplorerURL   *string
}

// Apply merges p into m.
func (p *MetadataPatch) Apply(m *Metadata) {
	if p == nil {
		return
	}
	setString(&m.ProviderName, p.ProviderName)
	setString(&m.ProviderID, p.ProviderID)
	setString(&m.TxHash, p.TxHash)
	setString(&m.FromAddress, p.FromAddress)
	setString(&m.ToAddress, p.ToAddress)
	setString(&m.Fee, p.Fee)
	setString(&m.FeeCurrency, p.FeeCurrency)
	setString(&m.ExplorerURL, p.ExplorerURL)
	if p.Timestamp != nil {
		m.Timestamp = *p.Timestamp
	}
	if p.BlockNumber != nil {
		v := *p.BlockNumber
		m.BlockNumber = &v
	}
	if p.Confirmations != nil {
		v := *p.Confirmations
		m.Confirmations = &v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Update is a partial change to a transaction. Setting Error also counts a
// failed attempt against the retry budget.
type Update struct {
	Status   *Status
	Metadata *MetadataPatch
	Error    *ErrorInfo
}

// StatusPtr is a convenience for building updates.
func StatusPtr(s Status) *Status { return &s }

// String is a convenience for building metadata patches.
func String(s string) *string { return &s }

// SortField selects the timestamp used for ordering.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

// SortOrder selects ascending or descending order.
type SortOrder string

const (
	SortDesc SortOrder = "desc"
	SortAsc  SortOrder = "asc"
)

// Filters narrows and pages a transaction listing. Zero values mean "any".
// Dates are epoch milliseconds and inclusive.
type Filters struct {
	Statuses    []Status
	Types       []Type
	FromAddress string
	ToAddress   string
	// Address matches either side of the transaction.
	Address string
	// ProviderID matches the provider's own reference.
	ProviderID string
	StartDate  int64
	EndDate    int64
	Search     string
	SortBy     SortField
	SortOrder  SortOrder
	Limit      int
	Offset     int
}

// Stats summarizes recent transactions.
type Stats struct {
	Total       int                `json:"total"`
	Completed   int                `json:"completed"`
	Pending     int                `json:"pending"`
	Failed      int                `json:"failed"`
	TotalVolume map[string]float64 `json:"totalVolume"`
	LastUpdated int64              `json:"lastUpdated"`
}
