// Package cashramp implements the Cashramp payment provider.
package cashramp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/provider/httpclient"
)

// Name is the registry name of the provider.
const Name = config.ProviderCashramp

// orders expire after 15 minutes
const orderExpirySeconds = 900

// Provider talks to the Cashramp REST API.
type Provider struct {
	client   *httpclient.Client
	settings httpclient.Settings
}

var (
	_ provider.Provider   = (*Provider)(nil)
	_ provider.BankLister = (*Provider)(nil)
)

// New creates a Cashramp provider.
func New(cfg config.ProviderConfig, opts ...httpclient.Option) *Provider {
	return &Provider{
		client:   httpclient.New(Name, cfg.BaseURL, cfg.APIKey, opts...),
		settings: httpclient.SettingsFromConfig(Name, cfg),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

type quoteRequest struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	Amount       string `json:"amount"`
	Type         string `json:"type"`
}

type quoteResponse struct {
	Rate      decimal.NullDecimal `json:"rate"`
	AmountOut decimal.NullDecimal `json:"amount_out"`
	MinAmount decimal.NullDecimal `json:"min_amount"`
	MaxAmount decimal.NullDecimal `json:"max_amount"`
}

// GetQuote prices a buy of req.To paid with req.Amount of req.From.
func (p *Provider) GetQuote(ctx context.Context, req provider.QuoteRequest) (*provider.Quote, error) {
	if err := p.settings.CheckPair(req.From, req.To); err != nil {
		return nil, err
	}
	amount, err := provider.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	var resp quoteResponse
	err = p.client.Post(ctx, "/quote", quoteRequest{
		FromCurrency: req.From,
		ToCurrency:   req.To,
		Amount:       amount.String(),
		Type:         "buy",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to get cashramp quote: %w", err)
	}

	rate, toAmount, err := httpclient.ResolveAmounts(amount, resp.Rate, resp.AmountOut, httpclient.RateSourcePerTarget)
	if err != nil {
		return nil, fmt.Errorf("cashramp quote: %w", err)
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
	var resp rateResponse
	if err := p.client.Get(ctx, "/rates", url.Values{"from": {from}, "to": {to}}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get cashramp exchange rate: %w", err)
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

type bankAccountBody struct {
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name,omitempty"`
}

type initiateRequest struct {
	Type           string           `json:"type"`
	FiatAmount     string           `json:"fiat_amount,omitempty"`
	CryptoAmount   string           `json:"crypto_amount,omitempty"`
	FiatCurrency   string           `json:"fiat_currency"`
	CryptoCurrency string           `json:"crypto_currency"`
	WalletAddress  string           `json:"wallet_address,omitempty"`
	BankAccount    *bankAccountBody `json:"bank_account,omitempty"`
	CallbackURL    string           `json:"callback_url,omitempty"`
}

type initiateResponse struct {
	TransactionID string `json:"transaction_id"`
	PaymentURL    string `json:"payment_url"`
}

// InitiateOnRamp starts a fiat to crypto order.
func (p *Provider) InitiateOnRamp(ctx context.Context, params provider.OnRampParams) (*provider.InitiateResult, error) {
	var resp initiateResponse
	err := p.client.Post(ctx, "/transactions/initiate", initiateRequest{
		Type:           "buy",
		FiatAmount:     params.Amount,
		FiatCurrency:   params.FiatCurrency,
		CryptoCurrency: params.CryptoCurrency,
		WalletAddress:  params.WalletAddress,
		CallbackURL:    params.CallbackURL,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate cashramp on-ramp: %w", err)
	}
	return &provider.InitiateResult{
		ProviderTxID: resp.TransactionID,
		ProviderURL:  resp.PaymentURL,
		Status:       provider.StatusPending,
		ExpiresIn:    orderExpirySeconds,
	}, nil
}

// InitiateOffRamp starts a crypto to fiat order paid out to a bank account.
func (p *Provider) InitiateOffRamp(ctx context.Context, params provider.OffRampParams) (*provider.InitiateResult, error) {
	var resp initiateResponse
	err := p.client.Post(ctx, "/transactions/initiate", initiateRequest{
		Type:           "sell",
		CryptoAmount:   params.Amount,
		FiatCurrency:   params.FiatCurrency,
		CryptoCurrency: params.CryptoCurrency,
		BankAccount: &bankAccountBody{
			AccountNumber: params.BankAccount.AccountNumber,
			BankCode:      params.BankAccount.BankCode,
			AccountName:   params.BankAccount.AccountName,
		},
		CallbackURL: params.CallbackURL,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate cashramp off-ramp: %w", err)
	}
	return &provider.InitiateResult{
		ProviderTxID: resp.TransactionID,
		Status:       provider.StatusPending,
		ExpiresIn:    orderExpirySeconds,
	}, nil
}

type statusResponse struct {
	TransactionID string              `json:"transaction_id"`
	Status        string              `json:"status"`
	Amount        decimal.NullDecimal `json:"amount"`
	Currency      string              `json:"currency"`
	TxHash        string              `json:"tx_hash"`
}

// GetTransactionStatus fetches the provider side state of an order.
func (p *Provider) GetTransactionStatus(ctx context.Context, providerTxID string) (*provider.TransactionStatus, error) {
	var resp statusResponse
	if err := p.client.Get(ctx, "/transactions/"+url.PathEscape(providerTxID), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get cashramp transaction status: %w", err)
	}
	id := resp.TransactionID
	if id == "" {
		id = providerTxID
	}
	return &provider.TransactionStatus{
		ProviderTxID: id,
		Status:       httpclient.NormalizeStatus(resp.Status),
		TxHash:       resp.TxHash,
		Amount:       httpclient.DecimalString(resp.Amount),
		Currency:     resp.Currency,
	}, nil
}

type verifyResponse struct {
	Valid       bool   `json:"valid"`
	AccountName string `json:"account_name"`
	BankName    string `json:"bank_name"`
}

// VerifyBankAccount resolves the holder name of a bank account.
func (p *Provider) VerifyBankAccount(ctx context.Context, accountNumber, bankCode string) (*provider.BankAccountVerification, error) {
	var resp verifyResponse
	err := p.client.Post(ctx, "/bank/verify", bankAccountBody{
		AccountNumber: accountNumber,
		BankCode:      bankCode,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to verify bank account with cashramp: %w", err)
	}
	return &provider.BankAccountVerification{
		AccountNumber: accountNumber,
		AccountName:   strings.TrimSpace(resp.AccountName),
		BankCode:      bankCode,
		BankName:      resp.BankName,
		Verified:      resp.Valid,
	}, nil
}

type banksResponse struct {
	Banks []provider.Bank `json:"banks"`
}

// SupportedBanks lists the payout banks cashramp serves in country.
func (p *Provider) SupportedBanks(ctx context.Context, country string) ([]provider.Bank, error) {
	var resp banksResponse
	if err := p.client.Get(ctx, "/banks", url.Values{"country": {country}}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list cashramp banks: %w", err)
	}
	for i := range resp.Banks {
		if resp.Banks[i].Country == "" {
			resp.Banks[i].Country = country
		}
	}
	return resp.Banks, nil
}
