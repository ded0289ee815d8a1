package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/config"
)

const defaultShutdownTimeout = 30 * time.Second

// ShutdownHook runs after the listener has stopped accepting requests.
type ShutdownHook func(ctx context.Context) error

// ServeAndWait serves handler until ctx is cancelled or the listener fails,
// then drains in-flight requests and runs hooks in order, all within
// cfg.ShutdownTimeout. Hook errors are logged; the first one is returned.
func ServeAndWait(
	ctx context.Context,
	handler http.Handler,
	logger *zap.Logger,
	cfg *config.ServerConfig,
	hooks ...ShutdownHook,
) error {
	if handler == nil {
		return fmt.Errorf("nil handler")
	}
	if cfg == nil {
		return fmt.Errorf("nil server config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("address", srv.Addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		if runErr != nil {
			logger.Error("HTTP server error", zap.Error(runErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server", zap.Duration("timeout", shutdownTimeout))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
		return fmt.Errorf("http shutdown: %w", err)
	}

	var hookErr error
	for i, hook := range hooks {
		if err := hook(shutdownCtx); err != nil {
			logger.Error("Shutdown hook failed", zap.Int("hook", i), zap.Error(err))
			if hookErr == nil {
				hookErr = err
			}
		}
	}

	if runErr != nil {
		return fmt.Errorf("http server failed: %w", runErr)
	}
	if hookErr != nil {
		return fmt.Errorf("shutdown hook: %w", hookErr)
	}

	logger.Info("HTTP server stopped")
	return nil
}
