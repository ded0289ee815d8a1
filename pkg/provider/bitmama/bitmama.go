// Package bitmama implements the Bitmama payment provider.
package bitmama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/provider/httpclient"
)

// Name is the registry name of the provider.
const Name = config.ProviderBitmama

const (
	orderExpirySeconds     = 1800
	paymentBankTransfer    = "bank_transfer"
	destinationBankAccount = "bank_account"
)

// Provider talks to the Bitmama REST API.
type Provider struct {
	client   *httpclient.Client
	settings httpclient.Settings
}

var (
	_ provider.Provider   = (*Provider)(nil)
	_ provider.BankLister = (*Provider)(nil)
)

// New creates a Bitmama provider.
func New(cfg config.ProviderConfig, opts ...httpclient.Option) *Provider {
	return &Provider{
		client:   httpclient.New(Name, cfg.BaseURL, cfg.APIKey, opts...),
		settings: httpclient.SettingsFromConfig(Name, cfg),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return Name }

type quoteRequest struct {
	FromCurrency string      `json:"from_currency"`
	ToCurrency   string      `json:"to_currency"`
	Amount       json.Number `json:"amount"`
}

type quoteResponse struct {
	Rate      decimal.NullDecimal `json:"rate"`
	ToAmount  decimal.NullDecimal `json:"to_amount"`
	MinAmount decimal.NullDecimal `json:"min_amount"`
	MaxAmount decimal.NullDecimal `json:"max_amount"`
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
	err = p.client.Post(ctx, "/rates", quoteRequest{
		FromCurrency: req.From,
		ToCurrency:   req.To,
		Amount:       json.Number(amount.String()),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to get bitmama quote: %w", err)
	}

	rate, toAmount, err := httpclient.ResolveAmounts(amount, resp.Rate, resp.ToAmount, httpclient.RateSourcePerTarget)
	if err != nil {
		return nil, fmt.Errorf("bitmama quote: %w", err)
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
		return nil, fmt.Errorf("failed to get bitmama exchange rate: %w", err)
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

type depositRequest struct {
	FiatAmount     json.Number `json:"fiat_amount"`
	FiatCurrency   string      `json:"fiat_currency"`
	CryptoCurrency string      `json:"crypto_currency"`
	WalletAddress  string      `json:"wallet_address"`
	PaymentMethod  string      `json:"payment_method"`
	CallbackURL    string      `json:"callback_url,omitempty"`
}

type paymentDetails struct {
	CheckoutURL string `json:"checkout_url"`
	PaymentURL  string `json:"payment_url"`
}

type depositResponse struct {
	TransactionID  string          `json:"transaction_id"`
	PaymentDetails *paymentDetails `json:"payment_details"`
}

// InitiateOnRamp starts a deposit paid by bank transfer.
func (p *Provider) InitiateOnRamp(ctx context.Context, params provider.OnRampParams) (*provider.InitiateResult, error) {
	var resp depositResponse
	err := p.client.Post(ctx, "/transactions/deposit", depositRequest{
		FiatAmount:     json.Number(params.Amount),
		FiatCurrency:   params.FiatCurrency,
		CryptoCurrency: params.CryptoCurrency,
		WalletAddress:  params.WalletAddress,
		PaymentMethod:  paymentBankTransfer,
		CallbackURL:    params.CallbackURL,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate bitmama deposit: %w", err)
	}

	res := &provider.InitiateResult{
		ProviderTxID: resp.TransactionID,
		Status:       provider.StatusPending,
		ExpiresIn:    orderExpirySeconds,
	}
	if resp.PaymentDetails != nil {
		res.ProviderURL = resp.PaymentDetails.CheckoutURL
		if res.ProviderURL == "" {
			res.ProviderURL = resp.PaymentDetails.PaymentURL
		}
	}
	return res, nil
}

type destination struct {
	Type          string `json:"type"`
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
	AccountName   string `json:"account_name,omitempty"`
}

type withdrawalRequest struct {
	CryptoAmount   json.Number `json:"crypto_amount"`
	CryptoCurrency string      `json:"crypto_currency"`
	FiatCurrency   string      `json:"fiat_currency"`
	Destination    destination `json:"destination"`
	CallbackURL    string      `json:"callback_url,omitempty"`
}

type withdrawalResponse struct {
	TransactionID string `json:"transaction_id"`
}

// InitiateOffRamp starts a withdrawal to a bank account.
func (p *Provider) InitiateOffRamp(ctx context.Context, params provider.OffRampParams) (*provider.InitiateResult, error) {
	var resp withdrawalResponse
	err := p.client.Post(ctx, "/transactions/withdrawal", withdrawalRequest{
		CryptoAmount:   json.Number(params.Amount),
		CryptoCurrency: params.CryptoCurrency,
		FiatCurrency:   params.FiatCurrency,
		Destination: destination{
			Type:          destinationBankAccount,
			AccountNumber: params.BankAccount.AccountNumber,
			BankCode:      params.BankAccount.BankCode,
			AccountName:   params.BankAccount.AccountName,
		},
		CallbackURL: params.CallbackURL,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate bitmama withdrawal: %w", err)
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

// GetTransactionStatus fetches the provider side state of a transaction.
func (p *Provider) GetTransactionStatus(ctx context.Context, providerTxID string) (*provider.TransactionStatus, error) {
	var resp statusResponse
	if err := p.client.Get(ctx, "/transactions/"+url.PathEscape(providerTxID), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get bitmama transaction status: %w", err)
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

type verifyRequest struct {
	AccountNumber string `json:"account_number"`
	BankCode      string `json:"bank_code"`
}

type verifyResponse struct {
	Valid       bool   `json:"valid"`
	AccountName string `json:"account_name"`
	BankName    string `json:"bank_name"`
}

// VerifyBankAccount resolves the holder name of a bank account.
func (p *Provider) VerifyBankAccount(ctx context.Context, accountNumber, bankCode string) (*provider.BankAccountVerification, error) {
	var resp verifyResponse
	err := p.client.Post(ctx, "/bank/verify", verifyRequest{
		AccountNumber: accountNumber,
		BankCode:      bankCode,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to verify bank account with bitmama: %w", err)
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

// SupportedBanks lists the payout banks bitmama serves in country.
func (p *Provider) SupportedBanks(ctx context.Context, country string) ([]provider.Bank, error) {
	var resp banksResponse
	if err := p.client.Get(ctx, "/banks", url.Values{"country": {country}}, &resp); err != nil {
		return nil, fmt.Errorf("failed to list bitmama banks: %w", err)
	}
	for i := range resp.Banks {
		if resp.Banks[i].Country == "" {
			resp.Banks[i].Country = country
		}
	}
	return resp.Banks, nil
}
