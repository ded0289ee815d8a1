// Package yellowcard implements the Yellow Card payment provider. The
// integration only prices: order placement, order status and bank lookups
// are reported as unsupported.
package yellowcard

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/provider/httpclient"
)

// Name is the registry name of the provider.
const Name = config.ProviderYellowCard

// Provider talks to the Yellow Card REST API.
type Provider struct {
	client   *httpclient.Client
	settings httpclient.Settings
}

var _ provider.Provider = (*Provider)(nil)

// New creates a Yellow Card provider. Requests authenticate with X-API-KEY.
func New(cfg config.ProviderConfig, opts ...httpclient.Option) *Provider {
	opts = append([]httpclient.Option{httpclient.WithAuthStyle(httpclient.AuthAPIKeyHeader)}, opts...)
	return &Provider{
		client:   httpclient.New(Name, cfg.BaseURL, cfg.APIKey, opts...),
		settings: httpclient.SettingsFromConfig(Name, cfg),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

type quoteRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
	Type   string `json:"type"`
}

type quoteResponse struct {
	Rate         decimal.NullDecimal `json:"rate"`
	CryptoAmount decimal.NullDecimal `json:"crypto_amount"`
	MinAmount    decimal.NullDecimal `json:"min_amount"`
	MaxAmount    decimal.NullDecimal `json:"max_amount"`
}

// GetQuote prices req.Amount of req.From in req.To.
func (p *Provider) GetQuote(ctx context.Context, req provider.QuoteRequest) (*provider.Quote, error) {
	if err := p.settings.CheckPair(req.From, req.To); err != nil {
		return nil, err
	}
	amount, err := provider.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var resp quoteResponse
	err = p.client.Post(ctx, "/quotes", quoteRequest{
		Amount: amount.String(),
		From:   req.From,
		To:     req.To,
		Type:   "buy",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to get yellowcard quote: %w", err)
	}

	rate, toAmount, err := httpclient.ResolveAmounts(amount, resp.Rate, resp.CryptoAmount, httpclient.RateTargetPerSource)
	if err != nil {
		return nil, fmt.Errorf("yellowcard quote: %w", err)
	}

	return p.settings.BuildQuote(httpclient.QuoteInput{
		Amount:    amount,
		ToAmount:  toAmount,
		Rate:      rate,
		MinAmount: httpclient.DecimalString(resp.MinAmount),
		MaxAmount: httpclient.DecimalString(resp.MaxAmount),
	})
}

type rateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// GetExchangeRate returns the spot rate for from/to.
func (p *Provider) GetExchangeRate(ctx context.Context, from, to string) (*provider.ExchangeRate, error) {
	if err := p.settings.CheckPair(from, to); err != nil {
		return nil, err
	}
	var resp rateResponse
	if err := p.client.Get(ctx, "/rates", url.Values{"from": {from}, "to": {to}}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get yellowcard exchange rate: %w", err)
	}
	return &provider.ExchangeRate{
		From:     from,
		To:       to,
		Rate:     resp.Rate.InexactFloat64(),
		Provider: Name,
	}, nil
}

// GetSupportedCurrencies returns the configured currency lists.
func (p *Provider) GetSupportedCurrencies(context.Context) (*provider.SupportedCurrencies, error) {
	return p.settings.SupportedCurrencies(), nil
}

// InitiateOnRamp is not supported.
func (p *Provider) InitiateOnRamp(context.Context, provider.OnRampParams) (*provider.InitiateResult, error) {
	return nil, unsupported("on-ramp")
}

// InitiateOffRamp is not supported.
func (p *Provider) InitiateOffRamp(context.Context, provider.OffRampParams) (*provider.InitiateResult, error) {
	return nil, unsupported("off-ramp")
}

// GetTransactionStatus is not supported.
func (p *Provider) GetTransactionStatus(context.Context, string) (*provider.TransactionStatus, error) {
	return nil, unsupported("transaction status")
}

// VerifyBankAccount is not supported.
func (p *Provider) VerifyBankAccount(context.Context, string, string) (*provider.BankAccountVerification, error) {
	return nil, unsupported("bank account verification")
}

func unsupported(op string) error {
	return fmt.Errorf("%s %s: %w", Name, op, provider.ErrUnsupported)
}
