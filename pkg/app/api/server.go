// Package api implements app.Runner for the ramp API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	apphttp "github.com/jahpay/ramp-aggregator/pkg/app/http"
	"github.com/jahpay/ramp-aggregator/pkg/auth"
	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/ramp"
	rampservice "github.com/jahpay/ramp-aggregator/pkg/ramp/service"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/events"
	txservice "github.com/jahpay/ramp-aggregator/pkg/transaction/service"
	"github.com/jahpay/ramp-aggregator/pkg/user"
	userservice "github.com/jahpay/ramp-aggregator/pkg/user/service"
	"github.com/jahpay/ramp-aggregator/pkg/webhook"
)

// Server holds cfg to init the ramp server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new ramp server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// services are the constructed components the router serves.
type services struct {
	tokens   *auth.TokenIssuer
	nonces   *auth.NonceStore
	accounts userservice.Service
	ramp     rampservice.Service
	webhooks *webhook.Handler
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("ramp server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ramp server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Backend),
	)

	backend, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	publisher := s.eventPublisher(logger)
	defer func() { _ = publisher.Close() }()

	registry := buildRegistry(cfg, logger)
	aggregator := provider.NewAggregator(registry,
		provider.WithTimeout(cfg.Aggregator.ProviderTimeout),
		provider.WithLogger(logger),
	)

	txStore, err := txservice.New(ctx, backend.snapshots,
		txservice.WithLogger(logger),
		txservice.WithMaxRetries(cfg.Transactions.MaxRetries),
		txservice.WithRetryDelays(cfg.Transactions.RetryDelays...),
		txservice.WithRetention(cfg.Storage.Retention),
		txservice.WithEventPublisher(publisher),
	)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}
	txs := txservice.NewLog(txStore, logger)

	janitor := txservice.NewJanitor(txs, cfg.Storage.Retention, logger)
	janitor.RunOnce(ctx)
	if cfg.Storage.CleanupInterval > 0 {
		janitor.Start(cfg.Storage.CleanupInterval)
	}

	tokens, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("auth.jwt_secret not set, sessions will not survive a restart")
	}

	limits := user.TransactionLimits{Daily: cfg.KYC.DailyLimit, Monthly: cfg.KYC.MonthlyLimit}
	accounts := userservice.NewLog(userservice.NewService(backend.users, registry, limits, logger), logger)

	rampSvc := rampservice.NewLog(rampservice.NewService(aggregator, txs, accounts, logger,
		rampservice.WithCallbackBaseURL(cfg.Server.PublicURL),
		rampservice.WithCatalogue(ramp.Catalogue(cfg.Providers)),
		rampservice.WithProfiles(accounts),
	), logger)

	router := s.setupRouter(&services{
		tokens:   tokens,
		nonces:   auth.NewNonceStore(cfg.Auth.NonceTTL),
		accounts: accounts,
		ramp:     rampSvc,
		webhooks: webhook.NewHandler(webhook.Specs(cfg.Providers), txs, logger,
			webhook.WithKYCRecorder(accounts)),
	}, logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server,
		func(context.Context) error {
			janitor.Stop()
			return nil
		},
		txs.Close,
	)
}

func (s *Server) eventPublisher(logger *zap.Logger) events.Publisher {
	if !s.cfg.Kafka.Enabled {
		return events.Nop{}
	}
	logger.Info("Publishing transaction events to kafka",
		zap.Strings("brokers", s.cfg.Kafka.Brokers),
		zap.String("topic", s.cfg.Kafka.Topic),
	)
	return events.NewKafkaPublisher(s.cfg.Kafka)
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	cfg := s.cfg
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(corsHandler(cfg.Server.CORSAllowedOrigins).Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	secureCookie := strings.HasPrefix(cfg.Server.PublicURL, "https://")
	auth.RegisterRoutes(r, svcs.nonces, svcs.tokens, secureCookie, logger)
	userservice.RegisterRoutes(r, svcs.accounts, svcs.tokens, logger)
	rampservice.RegisterRoutes(r, svcs.ramp, svcs.tokens, logger)
	webhook.RegisterRoutes(r, svcs.webhooks)

	return r
}

func corsHandler(origins []string) *cors.Cors {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", auth.HeaderWalletAddress},
		AllowCredentials: len(origins) != 1 || origins[0] != "*",
	})
}
