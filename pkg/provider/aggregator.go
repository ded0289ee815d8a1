package provider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jahpay/ramp-aggregator/internal/metrics"
)

const defaultProviderTimeout = 10 * time.Second

// Aggregator fans requests out to every registered provider and merges the
// successful answers. A failing provider never fails the whole request.
type Aggregator struct {
	registry *Registry
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithTimeout bounds every individual provider call.
func WithTimeout(d time.Duration) AggregatorOption {
	return func(a *Aggregator) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets the aggregator logger.
func WithLogger(l *zap.Logger) AggregatorOption {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock overrides the time source used for rate timestamps.
func WithClock(now func() time.Time) AggregatorOption {
	return func(a *Aggregator) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAggregator creates an aggregator over registry.
func NewAggregator(registry *Registry, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		registry: registry,
		timeout:  defaultProviderTimeout,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry returns the registry the aggregator reads from.
func (a *Aggregator) Registry() *Registry {
	return a.registry
}

// BestQuoteResult holds the winning quote and every successful quote in
// provider registration order.
type BestQuoteResult struct {
	BestQuote *Quote   `json:"bestQuote"`
	AllQuotes []*Quote `json:"allQuotes"`
}

// ParseAmount parses a source amount and rejects anything that is not
// strictly positive.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, amount)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	return d, nil
}

// BestQuote asks every provider for a quote and returns the one with the
// largest toAmount. Ties go to the provider registered first.
func (a *Aggregator) BestQuote(ctx context.Context, req QuoteRequest) (*BestQuoteResult, error) {
	if _, err := ParseAmount(req.Amount); err != nil {
		return nil, err
	}

	quotes := a.Quotes(ctx, req)
	if len(quotes) == 0 {
		metrics.QuoteRequests.WithLabelValues("no_providers").Inc()
		return nil, ErrNoProvidersAvailable
	}
	metrics.QuoteRequests.WithLabelValues("ok").Inc()

	return &BestQuoteResult{
		BestQuote: RankQuotes(quotes)[0],
		AllQuotes: quotes,
	}, nil
}

// Quotes returns every successful quote in registration order. The amount is
// not validated here; use BestQuote for request handling.
func (a *Aggregator) Quotes(ctx context.Context, req QuoteRequest) []*Quote {
	entries := a.registry.entries()
	results := make([]*Quote, len(entries))

	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			q, err := a.quoteFrom(ctx, e, req)
			if err != nil {
				a.logger.Warn("provider quote failed",
					zap.String("provider", e.name),
					zap.String("from", req.From),
					zap.String("to", req.To),
					zap.Error(err),
				)
				return nil
			}
			results[i] = q
			return nil
		})
	}
	_ = g.Wait()

	quotes := make([]*Quote, 0, len(results))
	for _, q := range results {
		if q != nil {
			quotes = append(quotes, q)
		}
	}
	return quotes
}

// Quote asks the provider registered under name for a quote, under the same
// timeout and toAmount checks BestQuote applies to each provider.
func (a *Aggregator) Quote(ctx context.Context, name string, req QuoteRequest) (*Quote, error) {
	if _, err := ParseAmount(req.Amount); err != nil {
		return nil, err
	}
	p, err := a.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return a.quoteFrom(ctx, entry{name: name, provider: p}, req)
}

func (a *Aggregator) quoteFrom(ctx context.Context, e entry, req QuoteRequest) (*Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	q, err := e.provider.GetQuote(ctx, req)
	observe(e.name, "quote", start, err)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("provider %s returned an empty quote", e.name)
	}

	toAmount, err := decimal.NewFromString(q.ToAmount)
	if err != nil {
		return nil, fmt.Errorf("provider %s returned invalid toAmount %q: %w", e.name, q.ToAmount, err)
	}
	if toAmount.IsNegative() {
		return nil, fmt.Errorf("provider %s returned negative toAmount %s", e.name, q.ToAmount)
	}

	out := *q
	if out.Provider == "" {
		out.Provider = e.name
	}
	return &out, nil
}

// RankQuotes returns quotes ordered by toAmount, largest first. Equal amounts
// keep their input order. Quotes with unparsable amounts sort last.
func RankQuotes(quotes []*Quote) []*Quote {
	ranked := append([]*Quote(nil), quotes...)
	amounts := make(map[*Quote]decimal.Decimal, len(ranked))
	for _, q := range ranked {
		d, err := decimal.NewFromString(q.ToAmount)
		if err != nil {
			d = decimal.NewFromInt(-1)
		}
		amounts[q] = d
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return amounts[ranked[i]].GreaterThan(amounts[ranked[j]])
	})
	return ranked
}

// ExchangeRates collects one rate per responding provider, in registration order.
func (a *Aggregator) ExchangeRates(ctx context.Context, from, to string) []*ExchangeRate {
	entries := a.registry.entries()
	results := make([]*ExchangeRate, len(entries))

	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			start := time.Now()
			rate, err := e.provider.GetExchangeRate(cctx, from, to)
			observe(e.name, "rate", start, err)
			if err != nil || rate == nil {
				a.logger.Warn("provider rate failed",
					zap.String("provider", e.name),
					zap.String("from", from),
					zap.String("to", to),
					zap.Error(err),
				)
				return nil
			}

			r := *rate
			if r.Provider == "" {
				r.Provider = e.name
			}
			if r.Timestamp == 0 {
				r.Timestamp = a.now().UnixMilli()
			}
			results[i] = &r
			return nil
		})
	}
	_ = g.Wait()

	rates := make([]*ExchangeRate, 0, len(results))
	for _, r := range results {
		if r != nil {
			rates = append(rates, r)
		}
	}
	return rates
}

// ProvidersForPair returns the names of providers that list both currencies.
func (a *Aggregator) ProvidersForPair(ctx context.Context, from, to string) []string {
	entries := a.registry.entries()
	supported := make([]bool, len(entries))

	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			cur, err := e.provider.GetSupportedCurrencies(cctx)
			if err != nil || cur == nil {
				return nil
			}
			supported[i] = contains(cur.From, from) && contains(cur.To, to)
			return nil
		})
	}
	_ = g.Wait()

	var names []string
	for i, e := range entries {
		if supported[i] {
			names = append(names, e.name)
		}
	}
	return names
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func observe(provider, operation string, start time.Time, err error) {
	outcome := "ok"
	switch {
	case IsUnsupported(err):
		outcome = "unsupported"
	case err != nil:
		outcome = "error"
	}
	metrics.ProviderRequests.WithLabelValues(provider, operation, outcome).Inc()
	metrics.ProviderLatency.WithLabelValues(provider, operation).Observe(time.Since(start).Seconds())
}
