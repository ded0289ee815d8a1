package api

import (
	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/provider/bitmama"
	"github.com/jahpay/ramp-aggregator/pkg/provider/cashramp"
	"github.com/jahpay/ramp-aggregator/pkg/provider/httpclient"
	"github.com/jahpay/ramp-aggregator/pkg/provider/yellowcard"
)

type providerFactory func(config.ProviderConfig, ...httpclient.Option) provider.Provider

var factories = map[string]providerFactory{
	config.ProviderYellowCard: func(c config.ProviderConfig, o ...httpclient.Option) provider.Provider {
		return yellowcard.New(c, o...)
	},
	config.ProviderCashramp: func(c config.ProviderConfig, o ...httpclient.Option) provider.Provider {
		return cashramp.New(c, o...)
	},
	config.ProviderBitmama: func(c config.ProviderConfig, o ...httpclient.Option) provider.Provider {
		return bitmama.New(c, o...)
	},
}

// buildRegistry registers every enabled provider in configuration order.
func buildRegistry(cfg *config.Config, logger *zap.Logger) *provider.Registry {
	registry := provider.NewRegistry()
	for _, np := range cfg.Providers.ByName() {
		if np.Config.Disabled {
			logger.Info("Provider disabled", zap.String("provider", np.Name))
			continue
		}
		if np.Config.APIKey == "" {
			logger.Warn("Provider has no API key", zap.String("provider", np.Name))
		}
		p := factories[np.Name](np.Config, httpclient.WithRateLimit(cfg.Aggregator.RateLimitRPS))
		registry.Register(np.Name, p)
	}
	logger.Info("Registered providers", zap.Strings("providers", registry.Names()))
	return registry
}
