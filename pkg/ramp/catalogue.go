package ramp

import (
	"github.com/shopspring/decimal"

	"github.com/jahpay/ramp-aggregator/pkg/config"
)

// Catalogue describes every configured provider for GET /providers.
// IsActive is left false; the ramp service sets it for registered providers.
func Catalogue(cfg config.ProvidersConfig) []ProviderInfo {
	named := cfg.ByName()
	out := make([]ProviderInfo, 0, len(named))
	for _, np := range named {
		out = append(out, ProviderInfo{
			Name:           np.Name,
			Countries:      append([]string(nil), np.Config.Countries...),
			MinAmount:      amountFloat(np.Config.MinAmount),
			MaxAmount:      amountFloat(np.Config.MaxAmount),
			FeePercentage:  np.Config.FeePercentage,
			CompletionTime: np.Config.CompletionTime,
		})
	}
	return out
}

// amountFloat reads a configured amount, treating anything unparsable as zero.
func amountFloat(s string) float64 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}
