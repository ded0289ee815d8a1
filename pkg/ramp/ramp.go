// Package ramp holds the request and response shapes of the on/off-ramp API.
package ramp

import (
	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

// DefaultExpiresIn is used when a provider does not say how long an
// initiated ramp stays open, in seconds.
const DefaultExpiresIn = 300

// List paging defaults.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// OnRampRequest is the body of POST /ramp/on-ramp/initiate. FiatAmount, when
// set, is the amount quoted; otherwise Amount is read in fiat units.
type OnRampRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	CryptoCurrency    string          `json:"crypto_currency" validate:"required"`
	FiatCurrency      string          `json:"fiat_currency" validate:"required"`
	FiatAmount        decimal.Decimal `json:"fiat_amount"`
	CountryCode       string          `json:"country_code" validate:"required"`
	PreferredProvider string          `json:"preferred_provider"`
	Email             string          `json:"email" validate:"omitempty,email"`
	Network           string          `json:"network"`
}

// QuoteAmount is the fiat amount to price.
func (r *OnRampRequest) QuoteAmount() decimal.Decimal {
	if r.FiatAmount.IsPositive() {
		return r.FiatAmount
	}
	return r.Amount
}

// OffRampRequest is the body of POST /ramp/off-ramp/initiate. Amount is in
// crypto units.
type OffRampRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	CryptoCurrency    string          `json:"crypto_currency" validate:"required"`
	FiatCurrency      string          `json:"fiat_currency" validate:"required"`
	BankAccountID     string          `json:"bank_account_id" validate:"required"`
	CountryCode       string          `json:"country_code" validate:"required"`
	PreferredProvider string          `json:"preferred_provider"`
}

// InitiateResponse is returned after a provider accepted a ramp.
type InitiateResponse struct {
	TransactionID string          `json:"transaction_id"`
	Provider      string          `json:"provider"`
	Status        string          `json:"status"`
	ProviderURL   string          `json:"provider_url,omitempty"`
	ExpiresIn     int             `json:"expires_in"`
	Quote         *provider.Quote `json:"quote,omitempty"`
}

// ProviderInfo is the public catalogue entry of a provider.
type ProviderInfo struct {
	Name           string   `json:"name"`
	IsActive       bool     `json:"is_active"`
	Countries      []string `json:"countries"`
	MinAmount      float64  `json:"min_amount"`
	MaxAmount      float64  `json:"max_amount"`
	FeePercentage  float64  `json:"fee_percentage"`
	CompletionTime int      `json:"completion_time"`
}

// ProvidersResponse is the body of GET /providers.
type ProvidersResponse struct {
	Providers []ProviderInfo `json:"providers"`
	Count     int            `json:"count"`
}

// RatesResponse is the body of GET /providers/rates.
type RatesResponse struct {
	From      string                   `json:"from"`
	To        string                   `json:"to"`
	Amount    string                   `json:"amount"`
	BestQuote *provider.Quote          `json:"bestQuote"`
	AllQuotes []*provider.Quote        `json:"allQuotes"`
	Rates     []*provider.ExchangeRate `json:"rates"`
	Timestamp string                   `json:"timestamp"`
}

// ListQuery pages and filters a wallet's transactions.
type ListQuery struct {
	Limit  int
	Offset int
	Status []transaction.Status
	Type   []transaction.Type
}

// TransactionList is the body of GET /ramp/transactions.
type TransactionList struct {
	Transactions []*transaction.Transaction `json:"transactions"`
	Total        int                        `json:"total"`
	Limit        int                        `json:"limit"`
	Offset       int                        `json:"offset"`
}
