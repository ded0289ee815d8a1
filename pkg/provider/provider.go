// Package provider defines the capability set every payment provider exposes,
// the registry that holds them and the aggregator that fans quote requests
// out across the registry.
package provider

import (
	"context"
	"errors"
)

var (
	// ErrUnsupported is returned by a provider for a capability it does not offer.
	ErrUnsupported = errors.New("operation not supported by provider")
	// ErrPairNotSupported is returned when a provider cannot price a currency pair.
	ErrPairNotSupported = errors.New("currency pair not supported")
	// ErrNoProvidersAvailable is returned when no provider produced a result.
	ErrNoProvidersAvailable = errors.New("no providers available")
	// ErrInvalidAmount is returned for an empty, zero, negative or non-numeric amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrProviderNotFound is returned when a provider name is not registered.
	ErrProviderNotFound = errors.New("provider not found")
)

// Provider is a third-party fiat/crypto ramp.
//
//go:generate mockery --name Provider --output mocks --outpkg mocks --filename mock_provider.go --with-expecter
type Provider interface {
	Name() string
	GetQuote(ctx context.Context, req QuoteRequest) (*Quote, error)
	GetExchangeRate(ctx context.Context, from, to string) (*ExchangeRate, error)
	GetSupportedCurrencies(ctx context.Context) (*SupportedCurrencies, error)
	InitiateOnRamp(ctx context.Context, params OnRampParams) (*InitiateResult, error)
	InitiateOffRamp(ctx context.Context, params OffRampParams) (*InitiateResult, error)
	GetTransactionStatus(ctx context.Context, providerTxID string) (*TransactionStatus, error)
	VerifyBankAccount(ctx context.Context, accountNumber, bankCode string) (*BankAccountVerification, error)
}

// IsUnsupported reports whether err says the provider lacks the capability.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// Quote is a normalized price offer. Amounts are decimal strings.
type Quote struct {
	Provider       string  `json:"provider"`
	FromAmount     string  `json:"fromAmount"`
	ToAmount       string  `json:"toAmount"`
	Rate           float64 `json:"rate"`
	MinAmount      string  `json:"minAmount"`
	MaxAmount      string  `json:"maxAmount"`
	Fee            string  `json:"fee"`
	ProviderFee    string  `json:"providerFee"`
	NetworkFee     string  `json:"networkFee"`
	EstimatedTime  string  `json:"estimatedTime"`
	TotalToReceive string  `json:"totalToReceive"`
}

// ExchangeRate is a spot rate between two currencies at one provider.
type ExchangeRate struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Provider  string  `json:"provider"`
	Timestamp int64   `json:"timestamp"`
}

// QuoteRequest asks for a price on Amount units of From paid in To.
type QuoteRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Amount  string `json:"amount"`
	Address string `json:"address,omitempty"`
	Network string `json:"network,omitempty"`
}

// SupportedCurrencies lists the source and target currencies of a provider.
type SupportedCurrencies struct {
	From []string `json:"from"`
	To   []string `json:"to"`
}

// OnRampParams starts a fiat to crypto purchase.
type OnRampParams struct {
	Amount         string
	FiatCurrency   string
	CryptoCurrency string
	WalletAddress  string
	CountryCode    string
	Email          string
	CallbackURL    string
}

// BankAccount identifies a payout account for off-ramps.
type BankAccount struct {
	AccountNumber string
	BankCode      string
	AccountName   string
}

// OffRampParams starts a crypto to fiat sale.
type OffRampParams struct {
	Amount         string
	CryptoCurrency string
	FiatCurrency   string
	WalletAddress  string
	CountryCode    string
	BankAccount    BankAccount
	CallbackURL    string
}

// InitiateResult is returned by a provider after accepting an on/off-ramp.
type InitiateResult struct {
	ProviderTxID string `json:"provider_tx_id"`
	ProviderURL  string `json:"provider_url,omitempty"`
	Status       string `json:"status,omitempty"`
	ExpiresIn    int    `json:"expires_in"`
}

// TransactionStatus is a provider's view of one of its transactions.
type TransactionStatus struct {
	ProviderTxID string `json:"provider_tx_id"`
	Status       string `json:"status"`
	TxHash       string `json:"tx_hash,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// Provider status values understood by the ramp service.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// BankAccountVerification is the result of a bank account lookup.
type BankAccountVerification struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	BankCode      string `json:"bank_code"`
	BankName      string `json:"bank_name,omitempty"`
	Verified      bool   `json:"verified"`
}

// Bank is a bank that can receive off-ramp payouts.
type Bank struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// BankLister is implemented by providers that publish their payout banks.
type BankLister interface {
	SupportedBanks(ctx context.Context, country string) ([]Bank, error)
}
