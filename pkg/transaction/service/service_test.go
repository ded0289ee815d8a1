package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/events"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store/memory"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store/mocks"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, evs ...events.Event) error {
	p.mu.Lock()
	p.events = append(p.events, evs...)
	p.mu.Unlock()
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store  *Store
	snap   *memory.Store
	clock  *fakeClock
	pub    *recordingPublisher
	delays []time.Duration
	mu     sync.Mutex
}

func (f *fixture) sleep(ctx context.Context, d time.Duration) error {
	f.mu.Lock()
	f.delays = append(f.delays, d)
	f.mu.Unlock()
	return ctx.Err()
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		snap:  memory.New(),
		clock: &fakeClock{now: baseTime},
		pub:   &recordingPublisher{},
	}
	opts = append([]Option{
		WithClock(f.clock.Now),
		WithSleeper(f.sleep),
		WithEventPublisher(f.pub),
		WithLogger(zap.NewNop()),
	}, opts...)
	s, err := New(context.Background(), f.snap, opts...)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	f.store = s
	return f
}

func deposit(amount, to string) transaction.Draft {
	return transaction.Draft{
		Quote: provider.Quote{
			Provider:   "cashramp",
			FromAmount: amount,
			ToAmount:   amount,
		},
		Type:         transaction.TypeDeposit,
		FromCurrency: "NGN",
		ToCurrency:   to,
		Metadata: transaction.Metadata{
			FromAddress: "0xabc0000000000000000000000000000000000001",
			ToAddress:   "0xdef0000000000000000000000000000000000002",
		},
	}
}

func (f *fixture) create(t *testing.T, d transaction.Draft) *transaction.Transaction {
	t.Helper()
	tx, err := f.store.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return tx
}

func (f *fixture) mustGet(t *testing.T, id string) *transaction.Transaction {
	t.Helper()
	tx, err := f.store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get %s: %v", id, err)
	}
	return tx
}

func TestCreate_AssignsIdentityAndFlushes(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("100", "cUSD"))

	if tx.ID == "" {
		t.Fatalf("expected an id")
	}
	if tx.Status != transaction.StatusPending {
		t.Fatalf("expected pending, got %s", tx.Status)
	}
	if tx.RetryCount != 0 || tx.MaxRetries != transaction.DefaultMaxRetries {
		t.Fatalf("unexpected retry counters %d/%d", tx.RetryCount, tx.MaxRetries)
	}
	if tx.CreatedAt != baseTime.UnixMilli() || tx.UpdatedAt != tx.CreatedAt {
		t.Fatalf("unexpected timestamps %d/%d", tx.CreatedAt, tx.UpdatedAt)
	}
	if tx.Metadata.ProviderName != "cashramp" {
		t.Fatalf("expected provider name from quote, got %q", tx.Metadata.ProviderName)
	}
	if f.snap.Saves() != 1 {
		t.Fatalf("expected one flush, got %d", f.snap.Saves())
	}

	saved, _ := f.snap.Load(context.Background())
	if len(saved) != 1 || saved[0].ID != tx.ID {
		t.Fatalf("snapshot does not hold the new transaction: %+v", saved)
	}
	if got := f.pub.types(); len(got) != 1 || got[0] != events.TypeCreated {
		t.Fatalf("unexpected events %v", got)
	}
}

func TestCreate_RejectsUnknownType(t *testing.T) {
	f := newFixture(t)
	d := deposit("1", "cUSD")
	d.Type = "teleport"

	_, err := f.store.Create(context.Background(), d)
	if !errors.Is(err, transaction.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	if f.snap.Saves() != 0 {
		t.Fatalf("nothing should be flushed")
	}
}

func TestCreate_ReturnsCopy(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("1", "cUSD"))
	tx.Status = transaction.StatusCompleted

	if got := f.mustGet(t, tx.ID); got.Status != transaction.StatusPending {
		t.Fatalf("stored record was mutated through the returned copy")
	}
}

func TestUpdate_ToProcessing(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("100", "cUSD"))
	f.clock.Advance(time.Second)

	got, err := f.store.Update(context.Background(), tx.ID, transaction.Update{
		Status: transaction.StatusPtr(transaction.StatusProcessing),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != transaction.StatusProcessing {
		t.Fatalf("expected processing, got %s", got.Status)
	}
	if got.UpdatedAt <= got.CreatedAt {
		t.Fatalf("expected updatedAt > createdAt, got %d <= %d", got.UpdatedAt, got.CreatedAt)
	}
	if f.snap.Saves() != 2 {
		t.Fatalf("expected a flush per mutation, got %d", f.snap.Saves())
	}
}

func TestUpdate_MergesMetadata(t *testing.T) {
	f := newFixture(t)
	d := deposit("100", "cUSD")
	d.Metadata.ProviderID = "cr-1"
	tx := f.create(t, d)

	got, err := f.store.Update(context.Background(), tx.ID, transaction.Update{
		Metadata: &transaction.MetadataPatch{TxHash: transaction.String("0xabc")},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Metadata.TxHash != "0xabc" {
		t.Fatalf("expected tx hash to be set, got %q", got.Metadata.TxHash)
	}
	if got.Metadata.ProviderID != "cr-1" || got.Metadata.FromAddress != d.Metadata.FromAddress {
		t.Fatalf("unspecified metadata was not preserved: %+v", got.Metadata)
	}
	if got.Status != transaction.StatusPending {
		t.Fatalf("status changed without being requested: %s", got.Status)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	f := newFixture(t)

	_, err := f.store.Update(context.Background(), "missing", transaction.Update{
		Status: transaction.StatusPtr(transaction.StatusProcessing),
	})
	if !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
	if !IsNotFound(err) {
		t.Fatalf("IsNotFound should match %v", err)
	}
	if f.snap.Saves() != 0 {
		t.Fatalf("nothing should be flushed")
	}
}

func TestUpdate_InvalidTransition(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("1", "cUSD"))
	ctx := context.Background()

	if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusCompleted)}); !errors.Is(err, transaction.ErrInvalidTransition) {
		t.Fatalf("pending -> completed: expected ErrInvalidTransition, got %v", err)
	}

	for _, st := range []transaction.Status{transaction.StatusProcessing, transaction.StatusCompleted} {
		if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(st)}); err != nil {
			t.Fatalf("update to %s: %v", st, err)
		}
	}
	if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusFailed)}); !errors.Is(err, transaction.ErrInvalidTransition) {
		t.Fatalf("completed -> failed: expected ErrInvalidTransition, got %v", err)
	}
	if got := f.mustGet(t, tx.ID); got.Status != transaction.StatusCompleted {
		t.Fatalf("rejected update changed the record: %s", got.Status)
	}
}

func TestUpdate_ErrorCountsAgainstBudget(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("1", "cUSD"))

	var got *transaction.Transaction
	for i := 0; i < 5; i++ {
		var err error
		got, err = f.store.Update(context.Background(), tx.ID, transaction.Update{
			Error: &transaction.ErrorInfo{Code: "PROVIDER_DOWN", Message: "provider down", Retryable: true},
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if got.RetryCount != got.MaxRetries {
		t.Fatalf("expected retry count capped at %d, got %d", got.MaxRetries, got.RetryCount)
	}
	if got.Metadata.Error == nil || got.Metadata.Error.Code != "PROVIDER_DOWN" {
		t.Fatalf("expected error to be stamped, got %+v", got.Metadata.Error)
	}
}

func TestRetry_CallbackFailure(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("100", "cUSD"))

	res, err := f.store.Retry(context.Background(), tx.ID, func(context.Context, *transaction.Transaction) error {
		return errors.New("timeout")
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if res.Success {
		t.Fatalf("expected an unsuccessful retry")
	}
	got := res.Transaction
	if got.Status != transaction.StatusFailed {
		t.Fatalf("expected failed, got %s", got.Status)
	}
	if got.RetryCount != 1 {
		t.Fatalf("expected retry count 1, got %d", got.RetryCount)
	}
	if got.Metadata.Error == nil || !strings.Contains(got.Metadata.Error.Message, "timeout") {
		t.Fatalf("expected error message to mention timeout, got %+v", got.Metadata.Error)
	}
	if got.Metadata.Error.Code != transaction.CodeRetryFailed || !got.Metadata.Error.Retryable {
		t.Fatalf("unexpected error info %+v", got.Metadata.Error)
	}
	if got.Metadata.LastRetry == 0 {
		t.Fatalf("expected lastRetry to be stamped")
	}
}

func TestRetry_Success(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("100", "cUSD"))

	var seen transaction.Status
	res, err := f.store.Retry(context.Background(), tx.ID, func(_ context.Context, tx *transaction.Transaction) error {
		seen = tx.Status
		return nil
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !res.Success || res.Transaction.Status != transaction.StatusCompleted {
		t.Fatalf("expected completed, got %+v", res)
	}
	if seen != transaction.StatusProcessing {
		t.Fatalf("callback should see a processing transaction, saw %s", seen)
	}
	if res.Transaction.Metadata.LastUpdated == 0 {
		t.Fatalf("expected lastUpdated to be stamped")
	}
	if res.Transaction.RetryCount != 0 {
		t.Fatalf("successful retry must not consume budget, got %d", res.Transaction.RetryCount)
	}

	types := f.pub.types()
	if types[len(types)-2] != events.TypeRetryStarted || types[len(types)-1] != events.TypeRetried {
		t.Fatalf("unexpected events %v", types)
	}
}

func TestRetry_Bound(t *testing.T) {
	f := newFixture(t)
	tx := f.create(t, deposit("100", "cUSD"))
	ctx := context.Background()

	calls := 0
	failing := func(context.Context, *transaction.Transaction) error {
		calls++
		return errors.New("provider unavailable")
	}

	wantRetryable := []bool{true, true, false}
	for i := 0; i < transaction.DefaultMaxRetries; i++ {
		res, err := f.store.Retry(ctx, tx.ID, failing)
		if err != nil {
			t.Fatalf("retry %d: %v", i, err)
		}
		if res.Transaction.RetryCount != i+1 {
			t.Fatalf("retry %d: expected retry count %d, got %d", i, i+1, res.Transaction.RetryCount)
		}
		if res.Transaction.Metadata.Error.Retryable != wantRetryable[i] {
			t.Fatalf("retry %d: expected retryable=%v", i, wantRetryable[i])
		}
	}

	res, err := f.store.Retry(ctx, tx.ID, failing)
	if err != nil {
		t.Fatalf("exhausted retry: %v", err)
	}
	if calls != transaction.DefaultMaxRetries {
		t.Fatalf("callback must not run once the budget is spent, ran %d times", calls)
	}
	if res.Success || res.Transaction.Status != transaction.StatusFailed {
		t.Fatalf("expected failed result, got %+v", res)
	}
	if e := res.Transaction.Metadata.Error; e == nil || e.Code != transaction.CodeMaxRetriesExceeded || e.Retryable {
		t.Fatalf("unexpected error info %+v", e)
	}
	if res.Transaction.RetryCount != transaction.DefaultMaxRetries {
		t.Fatalf("retry count moved past the budget: %d", res.Transaction.RetryCount)
	}

	want := []time.Duration{time.Second, 5 * time.Second, 15 * time.Second}
	if len(f.delays) != len(want) {
		t.Fatalf("expected %d waits, got %v", len(want), f.delays)
	}
	for i := range want {
		if f.delays[i] != want[i] {
			t.Fatalf("wait %d: expected %v, got %v", i, want[i], f.delays[i])
		}
	}

	if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusProcessing)}); !errors.Is(err, transaction.ErrInvalidTransition) {
		t.Fatalf("exhausted failed transaction must not move on, got %v", err)
	}
}

func TestRetry_DelayScheduleRepeatsLastEntry(t *testing.T) {
	f := newFixture(t, WithRetryDelays(10*time.Millisecond), WithMaxRetries(3))
	tx := f.create(t, deposit("1", "cUSD"))

	for i := 0; i < 2; i++ {
		if _, err := f.store.Retry(context.Background(), tx.ID, func(context.Context, *transaction.Transaction) error {
			return errors.New("nope")
		}); err != nil {
			t.Fatalf("retry: %v", err)
		}
	}
	for _, d := range f.delays {
		if d != 10*time.Millisecond {
			t.Fatalf("unexpected delay %v", d)
		}
	}
}

func TestRetry_EmptyDelaysKeepDefaultSchedule(t *testing.T) {
	f := newFixture(t, WithRetryDelays())
	tx := f.create(t, deposit("1", "cUSD"))

	if _, err := f.store.Retry(context.Background(), tx.ID, func(context.Context, *transaction.Transaction) error { return nil }); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(f.delays) != 1 || f.delays[0] != DefaultRetryDelays[0] {
		t.Fatalf("expected default first delay %v, got %v", DefaultRetryDelays[0], f.delays)
	}
}

func TestRetry_NotFoundAndTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	noop := func(context.Context, *transaction.Transaction) error { return nil }

	if _, err := f.store.Retry(ctx, "missing", noop); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}

	tx := f.create(t, deposit("1", "cUSD"))
	if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusCancelled)}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	saves := f.snap.Saves()
	if _, err := f.store.Retry(ctx, tx.ID, noop); !errors.Is(err, transaction.ErrNotRetryable) {
		t.Fatalf("expected ErrNotRetryable, got %v", err)
	}
	if f.snap.Saves() != saves {
		t.Fatalf("rejected retry must not flush")
	}
}

func TestRetry_ConcurrentRetryRejected(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	f := newFixture(t, WithSleeper(func(ctx context.Context, _ time.Duration) error {
		close(entered)
		<-release
		return nil
	}))
	tx := f.create(t, deposit("1", "cUSD"))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := f.store.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error { return nil })
		done <- err
	}()

	<-entered
	if got := f.mustGet(t, tx.ID); got.Status != transaction.StatusProcessing {
		t.Fatalf("expected processing while waiting, got %s", got.Status)
	}
	if _, err := f.store.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error { return nil }); !errors.Is(err, transaction.ErrRetryInFlight) {
		t.Fatalf("expected ErrRetryInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first retry: %v", err)
	}
	if got := f.mustGet(t, tx.ID); got.Status != transaction.StatusCompleted {
		t.Fatalf("expected completed, got %s", got.Status)
	}
}

func TestRetry_CancelledWaitRestoresStatus(t *testing.T) {
	f := newFixture(t, WithSleeper(sleepContext), WithRetryDelays(time.Hour))
	tx := f.create(t, deposit("1", "cUSD"))
	bg := context.Background()

	if _, err := f.store.Update(bg, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusFailed)}); err != nil {
		t.Fatalf("fail: %v", err)
	}

	ctx, cancel := context.WithCancel(bg)
	cancel()
	called := false
	_, err := f.store.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("callback must not run after cancellation")
	}
	got := f.mustGet(t, tx.ID)
	if got.Status != transaction.StatusFailed || got.RetryCount != 0 {
		t.Fatalf("expected failed with untouched budget, got %s/%d", got.Status, got.RetryCount)
	}
}

func TestRetry_CompletedDuringWaitIsKept(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	f := newFixture(t, WithSleeper(func(context.Context, time.Duration) error {
		close(entered)
		<-release
		return nil
	}))
	tx := f.create(t, deposit("1", "cUSD"))
	ctx := context.Background()

	type outcome struct {
		res *RetryResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := f.store.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error {
			return errors.New("network")
		})
		done <- outcome{res, err}
	}()

	<-entered
	if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusCompleted)}); err != nil {
		t.Fatalf("complete during wait: %v", err)
	}
	close(release)

	out := <-done
	if out.err != nil {
		t.Fatalf("retry: %v", out.err)
	}
	if !out.res.Success || out.res.Transaction.Status != transaction.StatusCompleted {
		t.Fatalf("expected retry to report the completed record, got %+v", out.res)
	}
	got := f.mustGet(t, tx.ID)
	if got.Status != transaction.StatusCompleted || got.RetryCount != 0 || got.Metadata.Error != nil {
		t.Fatalf("completed transaction was overwritten: %s retryCount=%d error=%+v",
			got.Status, got.RetryCount, got.Metadata.Error)
	}
}

func TestRetry_CancelledWaitKeepsNewerStatus(t *testing.T) {
	entered := make(chan struct{})
	f := newFixture(t, WithSleeper(func(ctx context.Context, _ time.Duration) error {
		close(entered)
		<-ctx.Done()
		return ctx.Err()
	}))
	tx := f.create(t, deposit("1", "cUSD"))
	bg := context.Background()

	ctx, cancel := context.WithCancel(bg)
	done := make(chan error, 1)
	go func() {
		_, err := f.store.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error { return nil })
		done <- err
	}()

	<-entered
	if _, err := f.store.Update(bg, tx.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusCompleted)}); err != nil {
		t.Fatalf("complete during wait: %v", err)
	}
	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := f.mustGet(t, tx.ID); got.Status != transaction.StatusCompleted {
		t.Fatalf("expected completed to survive cancellation, got %s", got.Status)
	}
}

func TestList_FiltersAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.create(t, deposit("1", "cUSD"))
	f.clock.Advance(time.Minute)
	w := deposit("2", "NGN")
	w.Type = transaction.TypeWithdrawal
	w.Metadata.FromAddress = "0x9990000000000000000000000000000000000009"
	b := f.create(t, w)
	f.clock.Advance(time.Minute)
	c := f.create(t, deposit("3", "cUSD"))
	if _, err := f.store.Update(ctx, c.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusProcessing)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all := f.store.List(ctx, transaction.Filters{})
	if len(all) != 3 || all[0].ID != c.ID || all[2].ID != a.ID {
		t.Fatalf("expected newest first, got %v", ids(all))
	}

	asc := f.store.List(ctx, transaction.Filters{SortOrder: transaction.SortAsc})
	if asc[0].ID != a.ID {
		t.Fatalf("expected oldest first, got %v", ids(asc))
	}

	byStatus := f.store.List(ctx, transaction.Filters{Statuses: []transaction.Status{transaction.StatusProcessing}})
	if len(byStatus) != 1 || byStatus[0].ID != c.ID {
		t.Fatalf("status filter: %v", ids(byStatus))
	}

	byType := f.store.List(ctx, transaction.Filters{Types: []transaction.Type{transaction.TypeWithdrawal}})
	if len(byType) != 1 || byType[0].ID != b.ID {
		t.Fatalf("type filter: %v", ids(byType))
	}

	byAddress := f.store.List(ctx, transaction.Filters{Address: strings.ToUpper("0x9990000000000000000000000000000000000009")})
	if len(byAddress) != 1 || byAddress[0].ID != b.ID {
		t.Fatalf("address filter: %v", ids(byAddress))
	}

	bySearch := f.store.List(ctx, transaction.Filters{Search: strings.ToUpper(a.ID[:8])})
	if len(bySearch) != 1 || bySearch[0].ID != a.ID {
		t.Fatalf("search filter: %v", ids(bySearch))
	}

	byRange := f.store.List(ctx, transaction.Filters{StartDate: b.CreatedAt, EndDate: b.CreatedAt})
	if len(byRange) != 1 || byRange[0].ID != b.ID {
		t.Fatalf("date filter: %v", ids(byRange))
	}
}

func TestList_PaginationIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		f.create(t, deposit("1", "cUSD"))
		f.clock.Advance(time.Second)
	}

	all := f.store.List(ctx, transaction.Filters{})
	first := f.store.List(ctx, transaction.Filters{Limit: 5})
	second := f.store.List(ctx, transaction.Filters{Limit: 5, Offset: 5})
	joined := append(ids(first), ids(second)...)
	if strings.Join(joined, ",") != strings.Join(ids(all[:10]), ",") {
		t.Fatalf("pages %v do not match the first 10 of %v", joined, ids(all))
	}

	seen := map[string]bool{}
	for offset := 0; offset < 12; offset += 3 {
		page := f.store.List(ctx, transaction.Filters{Limit: 3, Offset: offset})
		again := f.store.List(ctx, transaction.Filters{Limit: 3, Offset: offset})
		if strings.Join(ids(page), ",") != strings.Join(ids(again), ",") {
			t.Fatalf("page at offset %d is not stable", offset)
		}
		for _, tx := range page {
			if seen[tx.ID] {
				t.Fatalf("transaction %s appears on two pages", tx.ID)
			}
			seen[tx.ID] = true
		}
	}
	if len(seen) != 12 {
		t.Fatalf("pages covered %d of 12 transactions", len(seen))
	}
	if got := f.store.List(ctx, transaction.Filters{Offset: 50}); len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(got))
	}
}

func TestClearOld(t *testing.T) {
	f := newFixture(t)
	now := baseTime

	f.clock.Set(now.Add(-31 * 24 * time.Hour))
	old := f.create(t, deposit("1", "cUSD"))
	f.clock.Set(now.Add(-24 * time.Hour))
	recent := f.create(t, deposit("1", "cUSD"))
	f.clock.Set(now)

	saves := f.snap.Saves()
	if n := f.store.ClearOld(context.Background(), 30); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}
	if _, err := f.store.Get(context.Background(), old.ID); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("old transaction still present")
	}
	f.mustGet(t, recent.ID)
	if f.snap.Saves() != saves+1 {
		t.Fatalf("expected one flush after clearing")
	}

	if n := f.store.ClearOld(context.Background(), 30); n != 0 {
		t.Fatalf("expected nothing left to clear, got %d", n)
	}
	if f.snap.Saves() != saves+1 {
		t.Fatalf("clearing nothing must not flush")
	}
}

func TestStats_WindowAndVolume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.clock.Set(baseTime.Add(-40 * 24 * time.Hour))
	stale := f.create(t, deposit("1000", "cUSD"))
	for _, st := range []transaction.Status{transaction.StatusProcessing, transaction.StatusCompleted} {
		if _, err := f.store.Update(ctx, stale.ID, transaction.Update{Status: transaction.StatusPtr(st)}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	f.clock.Set(baseTime)

	complete := func(d transaction.Draft) {
		tx := f.create(t, d)
		for _, st := range []transaction.Status{transaction.StatusProcessing, transaction.StatusCompleted} {
			if _, err := f.store.Update(ctx, tx.ID, transaction.Update{Status: transaction.StatusPtr(st)}); err != nil {
				t.Fatalf("update: %v", err)
			}
		}
	}
	complete(deposit("10.5", "cUSD"))
	complete(deposit("4.5", "cUSD"))
	complete(deposit("7", "USDT"))
	complete(deposit("not-a-number", "USDT"))

	f.create(t, deposit("1", "cUSD"))
	processing := f.create(t, deposit("1", "cUSD"))
	if _, err := f.store.Update(ctx, processing.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusProcessing)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	cancelled := f.create(t, deposit("1", "cUSD"))
	if _, err := f.store.Update(ctx, cancelled.ID, transaction.Update{Status: transaction.StatusPtr(transaction.StatusCancelled)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	stats := f.store.Stats(ctx)
	if stats.Total != 7 {
		t.Fatalf("expected 7 transactions in window, got %d", stats.Total)
	}
	if stats.Completed != 4 || stats.Pending != 2 || stats.Failed != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}
	if stats.TotalVolume["cUSD"] != 15 || stats.TotalVolume["USDT"] != 7 {
		t.Fatalf("unexpected volume %v", stats.TotalVolume)
	}
	if stats.LastUpdated != baseTime.UnixMilli() {
		t.Fatalf("unexpected lastUpdated %d", stats.LastUpdated)
	}
}

func TestNew_DropsExpiredRecordsOnLoad(t *testing.T) {
	snap, err := memory.NewWith([]*transaction.Transaction{
		{ID: "old", Status: transaction.StatusCompleted, CreatedAt: baseTime.Add(-31 * 24 * time.Hour).UnixMilli()},
		{ID: "new", Status: transaction.StatusPending, CreatedAt: baseTime.Add(-time.Hour).UnixMilli()},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := New(context.Background(), snap, WithClock(func() time.Time { return baseTime }))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got := s.List(context.Background(), transaction.Filters{})
	if len(got) != 1 || got[0].ID != "new" {
		t.Fatalf("expected only the recent record, got %v", ids(got))
	}
}

func TestRetentionBoundaryIsInclusive(t *testing.T) {
	edge := baseTime.Add(-DefaultRetention).UnixMilli()
	snap, err := memory.NewWith([]*transaction.Transaction{
		{ID: "edge", Status: transaction.StatusPending, CreatedAt: edge, MaxRetries: 3},
		{ID: "older", Status: transaction.StatusPending, CreatedAt: edge - 1, MaxRetries: 3},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ctx := context.Background()
	s, err := New(ctx, snap, WithClock(func() time.Time { return baseTime }))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := s.List(ctx, transaction.Filters{}); len(got) != 1 || got[0].ID != "edge" {
		t.Fatalf("expected only the record at the cutoff to load, got %v", ids(got))
	}
	if stats := s.Stats(ctx); stats.Total != 1 {
		t.Fatalf("expected the record at the cutoff in stats, got %d", stats.Total)
	}
	if n := s.ClearOld(ctx, 30); n != 0 {
		t.Fatalf("expected the record at the cutoff to survive clearing, got %d removed", n)
	}
}

func TestNew_LoadError(t *testing.T) {
	snap := mocks.NewSnapshotter(t)
	snap.EXPECT().Load(mock.Anything).Return(nil, errors.New("connection refused"))

	if _, err := New(context.Background(), snap); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestCreate_SaveFailureKeepsRecord(t *testing.T) {
	snap := mocks.NewSnapshotter(t)
	snap.EXPECT().Load(mock.Anything).Return(nil, nil)
	snap.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	s, err := New(context.Background(), snap)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	tx, err := s.Create(context.Background(), deposit("1", "cUSD"))
	if err != nil {
		t.Fatalf("a failed flush must not fail the mutation: %v", err)
	}
	if _, err := s.Get(context.Background(), tx.ID); err != nil {
		t.Fatalf("record lost after failed flush: %v", err)
	}
	if err := s.Close(context.Background()); err == nil {
		t.Fatalf("Close should report the failed flush")
	}
}

func TestJanitor_RunOnce(t *testing.T) {
	f := newFixture(t)
	f.clock.Set(baseTime.Add(-8 * 24 * time.Hour))
	f.create(t, deposit("1", "cUSD"))
	f.clock.Set(baseTime)
	f.create(t, deposit("1", "cUSD"))

	j := NewJanitor(f.store, 7*24*time.Hour, zap.NewNop())
	if j.Days() != 7 {
		t.Fatalf("expected 7 days, got %d", j.Days())
	}
	if n := j.RunOnce(context.Background()); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}

	j.Start(time.Hour)
	j.Stop()
	j.Stop()
}

func TestLogDecorator_PassesThrough(t *testing.T) {
	f := newFixture(t)
	svc := NewLog(f.store, zap.NewNop())
	ctx := context.Background()

	tx, err := svc.Create(ctx, deposit("1", "cUSD"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Update(ctx, "missing", transaction.Update{}); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Fatalf("expected not found through decorator, got %v", err)
	}
	res, err := svc.Retry(ctx, tx.ID, func(context.Context, *transaction.Transaction) error { return nil })
	if err != nil || !res.Success {
		t.Fatalf("retry through decorator: %+v %v", res, err)
	}
	if got := svc.List(ctx, transaction.Filters{}); len(got) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(got))
	}
	if svc.Stats(ctx).Completed != 1 {
		t.Fatalf("expected 1 completed")
	}
	if err := svc.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func ids(txs []*transaction.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}
