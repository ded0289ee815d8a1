package provider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/provider/mocks"
)

func quoting(t *testing.T, name, toAmount string, err error) *mocks.Provider {
	t.Helper()
	p := mocks.NewProvider(t)
	p.EXPECT().Name().Return(name).Maybe()
	if err != nil {
		p.EXPECT().GetQuote(mock.Anything, mock.Anything).Return(nil, err).Maybe()
	} else {
		p.EXPECT().GetQuote(mock.Anything, mock.Anything).
			Return(&provider.Quote{ToAmount: toAmount, FromAmount: "1000"}, nil).Maybe()
	}
	return p
}

func TestAggregator_BestQuote_PicksLargestToAmount(t *testing.T) {
	registry := provider.NewRegistry(
		quoting(t, "yellowcard", "0.61", nil),
		quoting(t, "cashramp", "0.64", nil),
		quoting(t, "bitmama", "0.6", nil),
	)
	agg := provider.NewAggregator(registry)

	res, err := agg.BestQuote(context.Background(), provider.QuoteRequest{From: "NGN", To: "USDT", Amount: "1000"})
	require.NoError(t, err)
	require.Equal(t, "cashramp", res.BestQuote.Provider)
	require.Len(t, res.AllQuotes, 3)
	require.Equal(t, []string{"yellowcard", "cashramp", "bitmama"},
		[]string{res.AllQuotes[0].Provider, res.AllQuotes[1].Provider, res.AllQuotes[2].Provider})
}

func TestAggregator_BestQuote_IsolatesFailures(t *testing.T) {
	registry := provider.NewRegistry(
		quoting(t, "yellowcard", "", errors.New("connection refused")),
		quoting(t, "cashramp", "0.5", nil),
		quoting(t, "bitmama", "", provider.ErrUnsupported),
	)
	agg := provider.NewAggregator(registry)

	res, err := agg.BestQuote(context.Background(), provider.QuoteRequest{From: "NGN", To: "USDT", Amount: "1000"})
	require.NoError(t, err)
	require.Equal(t, "cashramp", res.BestQuote.Provider)
	require.Len(t, res.AllQuotes, 1)
}

func TestAggregator_BestQuote_TieGoesToFirstRegistered(t *testing.T) {
	registry := provider.NewRegistry(
		quoting(t, "bitmama", "1.50", nil),
		quoting(t, "yellowcard", "1.5", nil),
	)
	res, err := provider.NewAggregator(registry).BestQuote(context.Background(),
		provider.QuoteRequest{From: "NGN", To: "USDT", Amount: "10"})
	require.NoError(t, err)
	require.Equal(t, "bitmama", res.BestQuote.Provider)
}

func TestAggregator_BestQuote_Errors(t *testing.T) {
	agg := provider.NewAggregator(provider.NewRegistry(
		quoting(t, "yellowcard", "", errors.New("down")),
		quoting(t, "cashramp", "not-a-number", nil),
	))

	for _, amount := range []string{"", "0", "-5", "abc"} {
		_, err := agg.BestQuote(context.Background(), provider.QuoteRequest{Amount: amount})
		require.ErrorIs(t, err, provider.ErrInvalidAmount, amount)
	}

	_, err := agg.BestQuote(context.Background(), provider.QuoteRequest{From: "NGN", To: "USDT", Amount: "10"})
	require.ErrorIs(t, err, provider.ErrNoProvidersAvailable)

	_, err = provider.NewAggregator(provider.NewRegistry()).BestQuote(context.Background(),
		provider.QuoteRequest{Amount: "10"})
	require.ErrorIs(t, err, provider.ErrNoProvidersAvailable)
}

func TestAggregator_Quotes_RespectsTimeout(t *testing.T) {
	slow := mocks.NewProvider(t)
	slow.EXPECT().Name().Return("slow").Maybe()
	slow.EXPECT().GetQuote(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ provider.QuoteRequest) (*provider.Quote, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	agg := provider.NewAggregator(
		provider.NewRegistry(slow, quoting(t, "fast", "2", nil)),
		provider.WithTimeout(20*time.Millisecond),
	)
	quotes := agg.Quotes(context.Background(), provider.QuoteRequest{Amount: "1"})
	require.Len(t, quotes, 1)
	require.Equal(t, "fast", quotes[0].Provider)
}

func TestAggregator_Quote_SingleProviderRules(t *testing.T) {
	slow := mocks.NewProvider(t)
	slow.EXPECT().Name().Return("slow").Maybe()
	slow.EXPECT().GetQuote(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ provider.QuoteRequest) (*provider.Quote, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	agg := provider.NewAggregator(
		provider.NewRegistry(
			quoting(t, "good", "3.5", nil),
			quoting(t, "negative", "-1", nil),
			slow,
		),
		provider.WithTimeout(20*time.Millisecond),
	)
	ctx := context.Background()
	req := provider.QuoteRequest{From: "NGN", To: "cUSD", Amount: "1000"}

	q, err := agg.Quote(ctx, "good", req)
	require.NoError(t, err)
	require.Equal(t, "good", q.Provider)
	require.Equal(t, "3.5", q.ToAmount)

	_, err = agg.Quote(ctx, "negative", req)
	require.ErrorContains(t, err, "negative toAmount")

	_, err = agg.Quote(ctx, "slow", req)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = agg.Quote(ctx, "moonpay", req)
	require.ErrorIs(t, err, provider.ErrProviderNotFound)

	_, err = agg.Quote(ctx, "good", provider.QuoteRequest{Amount: "0"})
	require.ErrorIs(t, err, provider.ErrInvalidAmount)
}

func TestRankQuotes(t *testing.T) {
	a := &provider.Quote{Provider: "a", ToAmount: "1"}
	b := &provider.Quote{Provider: "b", ToAmount: "garbage"}
	c := &provider.Quote{Provider: "c", ToAmount: "3"}
	d := &provider.Quote{Provider: "d", ToAmount: "1.0"}

	ranked := provider.RankQuotes([]*provider.Quote{a, b, c, d})
	require.Equal(t, []*provider.Quote{c, a, d, b}, ranked)
}

func TestAggregator_ExchangeRates(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)

	yc := mocks.NewProvider(t)
	yc.EXPECT().Name().Return("yellowcard").Maybe()
	yc.EXPECT().GetExchangeRate(mock.Anything, "NGN", "USDT").
		Return(&provider.ExchangeRate{From: "NGN", To: "USDT", Rate: 1600}, nil)

	cr := mocks.NewProvider(t)
	cr.EXPECT().Name().Return("cashramp").Maybe()
	cr.EXPECT().GetExchangeRate(mock.Anything, "NGN", "USDT").Return(nil, errors.New("down"))

	agg := provider.NewAggregator(provider.NewRegistry(yc, cr),
		provider.WithClock(func() time.Time { return now }))

	rates := agg.ExchangeRates(context.Background(), "NGN", "USDT")
	require.Len(t, rates, 1)
	require.Equal(t, "yellowcard", rates[0].Provider)
	require.Equal(t, now.UnixMilli(), rates[0].Timestamp)
}

func TestAggregator_ProvidersForPair(t *testing.T) {
	supports := func(name string, from, to []string) *mocks.Provider {
		p := mocks.NewProvider(t)
		p.EXPECT().Name().Return(name).Maybe()
		p.EXPECT().GetSupportedCurrencies(mock.Anything).
			Return(&provider.SupportedCurrencies{From: from, To: to}, nil)
		return p
	}
	agg := provider.NewAggregator(provider.NewRegistry(
		supports("yellowcard", []string{"NGN", "GHS"}, []string{"USDT"}),
		supports("bitmama", []string{"GHS"}, []string{"cUSD"}),
	))

	require.Equal(t, []string{"yellowcard"}, agg.ProvidersForPair(context.Background(), "ngn", "usdt"))
	require.Empty(t, agg.ProvidersForPair(context.Background(), "KES", "USDT"))
}

func TestRegistry(t *testing.T) {
	first := quoting(t, "yellowcard", "1", nil)
	registry := provider.NewRegistry(first, quoting(t, "cashramp", "1", nil))

	replacement := quoting(t, "yellowcard", "2", nil)
	registry.Register("yellowcard", replacement)

	require.Equal(t, []string{"yellowcard", "cashramp"}, registry.Names())

	got, err := registry.Get("yellowcard")
	require.NoError(t, err)
	require.Same(t, replacement, got)

	_, err = registry.Get("moonpay")
	require.ErrorIs(t, err, provider.ErrProviderNotFound)

	providers := registry.Providers()
	require.Len(t, providers, 2)
	require.Same(t, replacement, providers[0])
}
