package config

// catalogue holds the built-in settings of each supported provider.
var catalogue = map[string]ProviderConfig{
	ProviderYellowCard: {
		BaseURL:        "https://api.yellowcard.io/v1",
		FeePercentage:  1.5,
		NetworkFee:     "0.0005",
		MinAmount:      "100",
		MaxAmount:      "1000000",
		QuoteMinAmount: "10",
		QuoteMaxAmount: "10000",
		Countries:      []string{"NG", "GH", "KE", "UG", "TZ", "ZM", "ZA", "RW", "SN", "CM"},
		CompletionTime: 30,
		EstimatedTime:  "2-5 minutes",
		FromCurrencies: []string{"NGN", "GHS", "ZAR", "KES", "USD", "EUR"},
		ToCurrencies:   []string{"BTC", "ETH", "USDC", "USDT", "CELO", "cUSD", "cEUR"},
	},
	ProviderCashramp: {
		BaseURL:        "https://api.cashramp.com/v1",
		FeePercentage:  2.0,
		NetworkFee:     "0",
		MinAmount:      "50",
		MaxAmount:      "500000",
		QuoteMinAmount: "100",
		QuoteMaxAmount: "1000000",
		Countries:      []string{"NG", "GH", "KE", "UG"},
		CompletionTime: 45,
		EstimatedTime:  "30-60 minutes",
		FromCurrencies: []string{"NGN", "GHS", "KES", "UGX"},
		ToCurrencies:   []string{"BTC", "ETH", "USDC", "USDT", "CELO", "cUSD"},
	},
	ProviderBitmama: {
		BaseURL:        "https://api.bitmama.com/api/v1",
		FeePercentage:  2.5,
		NetworkFee:     "0",
		MinAmount:      "100",
		MaxAmount:      "500000",
		QuoteMinAmount: "50",
		QuoteMaxAmount: "5000000",
		Countries:      []string{"NG", "GH"},
		CompletionTime: 60,
		EstimatedTime:  "45-120 minutes",
		FromCurrencies: []string{"NGN", "GHS"},
		ToCurrencies:   []string{"BTC", "ETH", "USDC", "USDT", "CELO", "cUSD"},
	},
}

// mergeProvider fills zero fields of dst from def.
func mergeProvider(dst *ProviderConfig, def ProviderConfig) {
	if dst.BaseURL == "" {
		dst.BaseURL = def.BaseURL
	}
	if dst.FeePercentage == 0 {
		dst.FeePercentage = def.FeePercentage
	}
	if dst.NetworkFee == "" {
		dst.NetworkFee = def.NetworkFee
	}
	if dst.MinAmount == "" {
		dst.MinAmount = def.MinAmount
	}
	if dst.MaxAmount == "" {
		dst.MaxAmount = def.MaxAmount
	}
	if dst.QuoteMinAmount == "" {
		dst.QuoteMinAmount = def.QuoteMinAmount
	}
	if dst.QuoteMaxAmount == "" {
		dst.QuoteMaxAmount = def.QuoteMaxAmount
	}
	if len(dst.Countries) == 0 {
		dst.Countries = append([]string(nil), def.Countries...)
	}
	if dst.CompletionTime == 0 {
		dst.CompletionTime = def.CompletionTime
	}
	if dst.EstimatedTime == "" {
		dst.EstimatedTime = def.EstimatedTime
	}
	if len(dst.FromCurrencies) == 0 {
		dst.FromCurrencies = append([]string(nil), def.FromCurrencies...)
	}
	if len(dst.ToCurrencies) == 0 {
		dst.ToCurrencies = append([]string(nil), def.ToCurrencies...)
	}
}
