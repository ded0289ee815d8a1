// Package service implements the transaction lifecycle store: an in-memory
// collection of ramp transactions, persisted as a whole through a
// store.Snapshotter after every mutation.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/internal/metrics"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/events"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store"
)

const (
	// DefaultRetention bounds loading and the statistics window.
	DefaultRetention = 30 * 24 * time.Hour

	defaultClearDays    = 30
	defaultFlushTimeout = 10 * time.Second
	maxRetriesMessage   = "Maximum retry attempts exceeded"
)

// DefaultRetryDelays is the backoff schedule indexed by retry count. The last
// entry repeats once the schedule runs out.
var DefaultRetryDelays = []time.Duration{time.Second, 5 * time.Second, 15 * time.Second}

// RetryFunc re-attempts the work behind a transaction. A nil error completes
// the transaction.
type RetryFunc func(ctx context.Context, tx *transaction.Transaction) error

// RetryResult is the outcome of a retry attempt.
type RetryResult struct {
	Success     bool                     `json:"success"`
	Transaction *transaction.Transaction `json:"transaction"`
	Error       string                   `json:"error,omitempty"`
}

// Service is the transaction lifecycle API.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Create(ctx context.Context, draft transaction.Draft) (*transaction.Transaction, error)
	Update(ctx context.Context, id string, upd transaction.Update) (*transaction.Transaction, error)
	Get(ctx context.Context, id string) (*transaction.Transaction, error)
	List(ctx context.Context, filters transaction.Filters) []*transaction.Transaction
	Stats(ctx context.Context) *transaction.Stats
	Retry(ctx context.Context, id string, fn RetryFunc) (*RetryResult, error)
	ClearOld(ctx context.Context, days int) int
	Close(ctx context.Context) error
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRetryDelays overrides the retry backoff schedule. An empty list keeps
// DefaultRetryDelays.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(s *Store) {
		if len(delays) > 0 {
			s.delays = append([]time.Duration(nil), delays...)
		}
	}
}

// WithMaxRetries sets the retry budget given to new transactions.
func WithMaxRetries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

// WithRetention sets how long records are kept on load and counted in stats.
func WithRetention(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.retention = d
		}
	}
}

// WithEventPublisher publishes lifecycle events to p.
func WithEventPublisher(p events.Publisher) Option {
	return func(s *Store) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSleeper replaces the retry wait. fn must return ctx.Err() when ctx is
// done before d elapses.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Store) { s.sleep = fn }
}

// Store is the Service implementation. The mutex guards txs and retrying and
// is never held across the retry wait, the retry callback or snapshot I/O.
type Store struct {
	snapshots  store.Snapshotter
	publisher  events.Publisher
	logger     *zap.Logger
	now        func() time.Time
	sleep      func(ctx context.Context, d time.Duration) error
	delays     []time.Duration
	maxRetries int
	retention  time.Duration

	mu       sync.Mutex
	txs      map[string]*transaction.Transaction
	retrying map[string]struct{}

	// flushMu orders snapshot+save pairs so the last save holds the newest state.
	flushMu sync.Mutex
}

var _ Service = (*Store)(nil)

// New loads the persisted set from snapshots, dropping records older than the
// retention window.
func New(ctx context.Context, snapshots store.Snapshotter, opts ...Option) (*Store, error) {
	s := &Store{
		snapshots:  snapshots,
		publisher:  events.Nop{},
		logger:     zap.NewNop(),
		now:        time.Now,
		sleep:      sleepContext,
		delays:     DefaultRetryDelays,
		maxRetries: transaction.DefaultMaxRetries,
		retention:  DefaultRetention,
		txs:        make(map[string]*transaction.Transaction),
		retrying:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	cutoff := s.now().Add(-s.retention).UnixMilli()
	dropped := 0
	for _, t := range loaded {
		if t == nil || t.ID == "" {
			continue
		}
		if t.CreatedAt < cutoff {
			dropped++
			continue
		}
		s.txs[t.ID] = t
	}
	metrics.StoredTransactions.Set(float64(len(s.txs)))
	s.logger.Info("Loaded transactions",
		zap.Int("loaded", len(s.txs)),
		zap.Int("expired", dropped))
	return s, nil
}

// Create stores a new transaction built from draft.
func (s *Store) Create(ctx context.Context, draft transaction.Draft) (*transaction.Transaction, error) {
	if _, err := transaction.ParseType(string(draft.Type)); err != nil {
		return nil, err
	}
	if draft.Status != "" {
		if _, err := transaction.ParseStatus(string(draft.Status)); err != nil {
			return nil, err
		}
	}

	now := s.now().UnixMilli()
	t := transaction.NewFromDraft(draft, uuid.NewString(), now, s.maxRetries)

	s.mu.Lock()
	s.txs[t.ID] = t
	out := t.Clone()
	s.mu.Unlock()

	metrics.TransactionsCreated.WithLabelValues(string(out.Type)).Inc()
	s.persist(ctx)
	s.publish(ctx, events.FromTransaction(events.TypeCreated, out, "", now))
	return out, nil
}

// Update merges upd into the transaction with the given id.
func (s *Store) Update(ctx context.Context, id string, upd transaction.Update) (*transaction.Transaction, error) {
	s.mu.Lock()
	cur, ok := s.txs[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", transaction.ErrTransactionNotFound, id)
	}
	prev := cur.Status
	next := cur.Clone()
	if upd.Status != nil {
		exhausted := prev == transaction.StatusFailed && cur.RetriesExhausted() && *upd.Status != prev
		if exhausted || !prev.CanTransitionTo(*upd.Status) {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s -> %s", transaction.ErrInvalidTransition, prev, *upd.Status)
		}
		next.Status = *upd.Status
	}
	upd.Metadata.Apply(&next.Metadata)
	if upd.Error != nil {
		e := *upd.Error
		next.Metadata.Error = &e
		if next.RetryCount < next.MaxRetries {
			next.RetryCount++
		}
	}
	now := s.now().UnixMilli()
	next.UpdatedAt = now
	s.txs[id] = next
	out := next.Clone()
	s.mu.Unlock()

	if prev != out.Status {
		metrics.StatusTransitions.WithLabelValues(string(prev), string(out.Status)).Inc()
	}
	s.persist(ctx)
	s.publish(ctx, events.FromTransaction(events.TypeUpdated, out, prev, now))
	return out, nil
}

// Get returns a copy of the transaction with the given id.
func (s *Store) Get(_ context.Context, id string) (*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.txs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", transaction.ErrTransactionNotFound, id)
	}
	return t.Clone(), nil
}

// List returns copies of the transactions selected by filters.
func (s *Store) List(_ context.Context, filters transaction.Filters) []*transaction.Transaction {
	return transaction.Select(s.snapshot(), filters)
}

// Stats summarizes transactions created inside the retention window.
func (s *Store) Stats(context.Context) *transaction.Stats {
	now := s.now()
	cutoff := now.Add(-s.retention).UnixMilli()

	stats := &transaction.Stats{
		TotalVolume: make(map[string]float64),
		LastUpdated: now.UnixMilli(),
	}
	volume := make(map[string]decimal.Decimal)

	s.mu.Lock()
	for _, t := range s.txs {
		if t.CreatedAt < cutoff {
			continue
		}
		stats.Total++
		switch t.Status {
		case transaction.StatusCompleted:
			stats.Completed++
			if t.ToCurrency == "" {
				continue
			}
			amount, err := decimal.NewFromString(t.ToAmount)
			if err != nil {
				continue
			}
			volume[t.ToCurrency] = volume[t.ToCurrency].Add(amount)
		case transaction.StatusPending, transaction.StatusProcessing:
			stats.Pending++
		case transaction.StatusFailed, transaction.StatusCancelled:
			stats.Failed++
		}
	}
	s.mu.Unlock()

	for currency, v := range volume {
		stats.TotalVolume[currency] = v.InexactFloat64()
	}
	return stats
}

// Retry re-attempts the transaction with the given id through fn after the
// backoff delay for its retry count. Only one retry per id runs at a time.
func (s *Store) Retry(ctx context.Context, id string, fn RetryFunc) (*RetryResult, error) {
	s.mu.Lock()
	cur, ok := s.txs[id]
	switch {
	case !ok:
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", transaction.ErrTransactionNotFound, id)
	case s.inFlight(id):
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", transaction.ErrRetryInFlight, id)
	case cur.Status.IsTerminal():
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s is %s", transaction.ErrNotRetryable, id, cur.Status)
	case cur.RetriesExhausted():
		out := s.exhaustLocked(cur)
		s.mu.Unlock()
		metrics.Retries.WithLabelValues("exhausted").Inc()
		s.persist(ctx)
		s.publish(ctx, events.FromTransaction(events.TypeRetried, out, cur.Status, out.UpdatedAt))
		return &RetryResult{Transaction: out, Error: maxRetriesMessage}, nil
	}

	prev := cur.Status
	now := s.now().UnixMilli()
	next := cur.Clone()
	next.Status = transaction.StatusProcessing
	next.Metadata.LastRetry = now
	next.UpdatedAt = now
	s.txs[id] = next
	s.retrying[id] = struct{}{}
	attempt := next.Clone()
	delay := s.delayFor(cur.RetryCount)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.retrying, id)
		s.mu.Unlock()
	}()

	s.persist(ctx)
	s.publish(ctx, events.FromTransaction(events.TypeRetryStarted, attempt, prev, now))

	if err := s.sleep(ctx, delay); err != nil {
		s.restore(ctx, id, prev)
		metrics.Retries.WithLabelValues("cancelled").Inc()
		return nil, err
	}

	cbErr := fn(ctx, attempt)

	s.mu.Lock()
	cur, ok = s.txs[id]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", transaction.ErrTransactionNotFound, id)
	}
	if cur.Status != transaction.StatusProcessing {
		// Another writer settled the transaction during the wait or callback.
		out := cur.Clone()
		s.mu.Unlock()
		metrics.Retries.WithLabelValues("superseded").Inc()
		s.logger.Info("Retry outcome discarded, transaction changed meanwhile",
			zap.String("id", id),
			zap.String("status", string(out.Status)),
			zap.NamedError("callback_error", cbErr))
		res := &RetryResult{Success: out.Status == transaction.StatusCompleted, Transaction: out}
		if !res.Success {
			res.Error = fmt.Sprintf("transaction became %s during retry", out.Status)
		}
		return res, nil
	}
	next = cur.Clone()
	now = s.now().UnixMilli()
	if cbErr == nil {
		next.Status = transaction.StatusCompleted
		next.Metadata.LastUpdated = now
	} else {
		next.Status = transaction.StatusFailed
		next.Metadata.Error = &transaction.ErrorInfo{
			Code:      transaction.CodeRetryFailed,
			Message:   "Retry failed: " + cbErr.Error(),
			Retryable: cur.RetryCount < cur.MaxRetries-1,
		}
		if next.RetryCount < next.MaxRetries {
			next.RetryCount++
		}
	}
	next.UpdatedAt = now
	s.txs[id] = next
	out := next.Clone()
	s.mu.Unlock()

	metrics.StatusTransitions.WithLabelValues(string(transaction.StatusProcessing), string(out.Status)).Inc()
	s.persist(ctx)
	s.publish(ctx, events.FromTransaction(events.TypeRetried, out, transaction.StatusProcessing, now))

	if cbErr != nil {
		metrics.Retries.WithLabelValues("failed").Inc()
		return &RetryResult{Transaction: out, Error: cbErr.Error()}, nil
	}
	metrics.Retries.WithLabelValues("succeeded").Inc()
	return &RetryResult{Success: true, Transaction: out}, nil
}

// ClearOld removes transactions created more than days ago and returns how
// many were removed. A non-positive days uses 30.
func (s *Store) ClearOld(ctx context.Context, days int) int {
	if days <= 0 {
		days = defaultClearDays
	}
	now := s.now()
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour).UnixMilli()

	var removed []events.Event
	s.mu.Lock()
	for id, t := range s.txs {
		if t.CreatedAt < cutoff {
			delete(s.txs, id)
			removed = append(removed, events.FromTransaction(events.TypeExpired, t, t.Status, now.UnixMilli()))
		}
	}
	s.mu.Unlock()

	if len(removed) == 0 {
		return 0
	}
	metrics.TransactionsExpired.Add(float64(len(removed)))
	s.persist(ctx)
	s.publish(ctx, removed...)
	return len(removed)
}

// Close writes the final snapshot.
func (s *Store) Close(ctx context.Context) error {
	return s.flush(ctx)
}

func (s *Store) inFlight(id string) bool {
	_, ok := s.retrying[id]
	return ok
}

func (s *Store) exhaustLocked(cur *transaction.Transaction) *transaction.Transaction {
	next := cur.Clone()
	next.Status = transaction.StatusFailed
	next.Metadata.Error = &transaction.ErrorInfo{
		Code:    transaction.CodeMaxRetriesExceeded,
		Message: maxRetriesMessage,
	}
	next.UpdatedAt = s.now().UnixMilli()
	s.txs[next.ID] = next
	return next.Clone()
}

// restore puts back status unless the transaction left processing meanwhile.
func (s *Store) restore(ctx context.Context, id string, status transaction.Status) {
	s.mu.Lock()
	cur, ok := s.txs[id]
	ok = ok && cur.Status == transaction.StatusProcessing
	if ok {
		next := cur.Clone()
		next.Status = status
		next.UpdatedAt = s.now().UnixMilli()
		s.txs[id] = next
	}
	s.mu.Unlock()
	if ok {
		s.persist(ctx)
	}
}

func (s *Store) delayFor(retryCount int) time.Duration {
	if len(s.delays) == 0 {
		return 0
	}
	return s.delays[min(max(retryCount, 0), len(s.delays)-1)]
}

// snapshot returns copies of all records ordered by creation time.
func (s *Store) snapshot() []*transaction.Transaction {
	s.mu.Lock()
	out := make([]*transaction.Transaction, 0, len(s.txs))
	for _, t := range s.txs {
		out = append(out, t.Clone())
	}
	s.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt == out[j].CreatedAt {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// persist flushes after a mutation. The in-memory state stays authoritative,
// so a failed save is logged and counted but not returned.
func (s *Store) persist(ctx context.Context) {
	_ = s.flush(ctx)
}

func (s *Store) flush(ctx context.Context) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	txs := s.snapshot()
	metrics.StoredTransactions.Set(float64(len(txs)))

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultFlushTimeout)
	defer cancel()
	if err := s.snapshots.Save(ctx, txs); err != nil {
		metrics.SnapshotFlushes.WithLabelValues("error").Inc()
		s.logger.Error("Failed to save transactions", zap.Int("count", len(txs)), zap.Error(err))
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	metrics.SnapshotFlushes.WithLabelValues("ok").Inc()
	return nil
}

func (s *Store) publish(ctx context.Context, evs ...events.Event) {
	if err := s.publisher.Publish(ctx, evs...); err != nil {
		metrics.EventsPublished.WithLabelValues(evs[0].Type, "error").Inc()
		s.logger.Warn("Failed to publish transaction events",
			zap.String("type", evs[0].Type),
			zap.Int("count", len(evs)),
			zap.Error(err))
		return
	}
	for _, e := range evs {
		metrics.EventsPublished.WithLabelValues(e.Type, "ok").Inc()
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsNotFound reports whether err is a missing transaction.
func IsNotFound(err error) bool {
	return errors.Is(err, transaction.ErrTransactionNotFound)
}
