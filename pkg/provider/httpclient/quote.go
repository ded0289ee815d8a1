package httpclient

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
)

const feeDecimals = 8

var hundred = decimal.NewFromInt(100)

// Settings are the static pricing parameters of one provider.
type Settings struct {
	Name           string
	FeePercentage  float64
	NetworkFee     string
	MinAmount      string
	MaxAmount      string
	EstimatedTime  string
	FromCurrencies []string
	ToCurrencies   []string
}

// SupportedCurrencies returns copies of the configured currency lists.
func (s Settings) SupportedCurrencies() *provider.SupportedCurrencies {
	return &provider.SupportedCurrencies{
		From: append([]string(nil), s.FromCurrencies...),
		To:   append([]string(nil), s.ToCurrencies...),
	}
}

// CheckPair fails with provider.ErrPairNotSupported unless both currencies
// are listed. Comparison ignores case.
func (s Settings) CheckPair(from, to string) error {
	if !listed(s.FromCurrencies, from) || !listed(s.ToCurrencies, to) {
		return fmt.Errorf("%s: %w: %s/%s", s.Name, provider.ErrPairNotSupported, from, to)
	}
	return nil
}

// Fee returns the provider fee for amount.
func (s Settings) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(s.FeePercentage)).Div(hundred)
}

// QuoteInput is what an adapter extracted from a provider response.
type QuoteInput struct {
	Amount    decimal.Decimal
	ToAmount  decimal.Decimal
	Rate      decimal.Decimal
	MinAmount string
	MaxAmount string
}

// BuildQuote normalizes an adapter result into a provider.Quote. The amount
// received is toAmount minus the network fee, floored at zero.
func (s Settings) BuildQuote(in QuoteInput) (*provider.Quote, error) {
	if in.ToAmount.IsNegative() {
		return nil, fmt.Errorf("%s returned negative amount %s", s.Name, in.ToAmount)
	}

	networkFee := decimal.Zero
	if s.NetworkFee != "" {
		nf, err := decimal.NewFromString(s.NetworkFee)
		if err != nil {
			return nil, fmt.Errorf("%s network fee %q: %w", s.Name, s.NetworkFee, err)
		}
		networkFee = nf
	}

	total := in.ToAmount.Sub(networkFee)
	if total.IsNegative() {
		total = decimal.Zero
	}

	minAmount, maxAmount := in.MinAmount, in.MaxAmount
	if minAmount == "" {
		minAmount = s.MinAmount
	}
	if maxAmount == "" {
		maxAmount = s.MaxAmount
	}

	fee := s.Fee(in.Amount).StringFixed(feeDecimals)
	return &provider.Quote{
		Provider:       s.Name,
		FromAmount:     in.Amount.String(),
		ToAmount:       in.ToAmount.String(),
		Rate:           in.Rate.InexactFloat64(),
		MinAmount:      minAmount,
		MaxAmount:      maxAmount,
		Fee:            fee,
		ProviderFee:    fee,
		NetworkFee:     networkFee.String(),
		EstimatedTime:  s.EstimatedTime,
		TotalToReceive: total.String(),
	}, nil
}

// NormalizeStatus maps provider specific status words onto the values the
// ramp service understands.
func NormalizeStatus(status string) string {
	switch strings.ToLower(status) {
	case "completed", "complete", "success", "successful", "paid", "settled":
		return provider.StatusCompleted
	case "failed", "failure", "error", "rejected", "expired":
		return provider.StatusFailed
	case "cancelled", "canceled":
		return provider.StatusCancelled
	default:
		return provider.StatusPending
	}
}

func listed(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

// RateStyle says how a provider quotes its rate.
type RateStyle int

const (
	// RateTargetPerSource means toAmount = amount * rate.
	RateTargetPerSource RateStyle = iota
	// RateSourcePerTarget means toAmount = amount / rate, the usual fiat price
	// of one crypto unit.
	RateSourcePerTarget
)

// ResolveAmounts fills in whichever of rate and toAmount the provider left
// out. At least one of them must be present and positive.
func ResolveAmounts(amount decimal.Decimal, rate, toAmount decimal.NullDecimal, style RateStyle) (decimal.Decimal, decimal.Decimal, error) {
	hasRate := rate.Valid && rate.Decimal.IsPositive()
	hasAmount := toAmount.Valid && !toAmount.Decimal.IsNegative()

	switch {
	case hasRate && hasAmount:
		return rate.Decimal, toAmount.Decimal, nil
	case hasAmount:
		if toAmount.Decimal.IsZero() {
			return decimal.Zero, toAmount.Decimal, nil
		}
		if style == RateSourcePerTarget {
			return amount.Div(toAmount.Decimal), toAmount.Decimal, nil
		}
		return toAmount.Decimal.Div(amount), toAmount.Decimal, nil
	case hasRate:
		if style == RateSourcePerTarget {
			return rate.Decimal, amount.Div(rate.Decimal), nil
		}
		return rate.Decimal, amount.Mul(rate.Decimal), nil
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("response carries neither rate nor amount")
	}
}

// DecimalString renders an optional decimal, or "" when absent.
func DecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// SettingsFromConfig builds pricing settings from provider configuration.
func SettingsFromConfig(name string, cfg config.ProviderConfig) Settings {
	return Settings{
		Name:           name,
		FeePercentage:  cfg.FeePercentage,
		NetworkFee:     cfg.NetworkFee,
		MinAmount:      cfg.QuoteMinAmount,
		MaxAmount:      cfg.QuoteMaxAmount,
		EstimatedTime:  cfg.EstimatedTime,
		FromCurrencies: append([]string(nil), cfg.FromCurrencies...),
		ToCurrencies:   append([]string(nil), cfg.ToCurrencies...),
	}
}
