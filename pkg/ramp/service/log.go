package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	"github.com/jahpay/ramp-aggregator/pkg/ramp"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	txservice "github.com/jahpay/ramp-aggregator/pkg/transaction/service"
)

const serviceName = "RampService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ramp Service. Initiations and
// retries are logged with their outcome; reads only when they fail.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) log(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	switch {
	case err == nil:
	case apperrors.IsInternalError(err):
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	default:
		ls.logger.Warn(method+" rejected", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

func (ls *logService) ListProviders(ctx context.Context) *ramp.ProvidersResponse {
	return ls.svc.ListProviders(ctx)
}

// Rates wraps the service method with logging
func (ls *logService) Rates(ctx context.Context, from, to, amount string) (resp *ramp.RatesResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("from", from),
			zap.String("to", to),
			zap.String("amount", amount),
		}
		if resp != nil && resp.BestQuote != nil {
			fields = append(fields,
				zap.String("best_provider", resp.BestQuote.Provider),
				zap.Int("quotes", len(resp.AllQuotes)))
		}
		ls.log("Rates", start, err, fields...)
	}()
	return ls.svc.Rates(ctx, from, to, amount)
}

// InitiateOnRamp wraps the service method with logging
func (ls *logService) InitiateOnRamp(
	ctx context.Context,
	walletAddress string,
	req *ramp.OnRampRequest,
) (resp *ramp.InitiateResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet_address", walletAddress),
			zap.String("fiat_currency", req.FiatCurrency),
			zap.String("crypto_currency", req.CryptoCurrency),
			zap.String("amount", req.QuoteAmount().String()),
			zap.String("preferred_provider", req.PreferredProvider),
		}
		if resp != nil {
			fields = append(fields,
				zap.String("transaction_id", resp.TransactionID),
				zap.String("provider", resp.Provider))
		}
		ls.log("InitiateOnRamp", start, err, fields...)
	}()
	return ls.svc.InitiateOnRamp(ctx, walletAddress, req)
}

// InitiateOffRamp wraps the service method with logging
func (ls *logService) InitiateOffRamp(
	ctx context.Context,
	walletAddress string,
	req *ramp.OffRampRequest,
) (resp *ramp.InitiateResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet_address", walletAddress),
			zap.String("crypto_currency", req.CryptoCurrency),
			zap.String("fiat_currency", req.FiatCurrency),
			zap.String("amount", req.Amount.String()),
			zap.String("bank_account_id", req.BankAccountID),
		}
		if resp != nil {
			fields = append(fields,
				zap.String("transaction_id", resp.TransactionID),
				zap.String("provider", resp.Provider))
		}
		ls.log("InitiateOffRamp", start, err, fields...)
	}()
	return ls.svc.InitiateOffRamp(ctx, walletAddress, req)
}

func (ls *logService) GetTransaction(ctx context.Context, walletAddress, id string) (*transaction.Transaction, error) {
	return ls.svc.GetTransaction(ctx, walletAddress, id)
}

func (ls *logService) ListTransactions(ctx context.Context, walletAddress string, q ramp.ListQuery) (*ramp.TransactionList, error) {
	return ls.svc.ListTransactions(ctx, walletAddress, q)
}

// RetryTransaction wraps the service method with logging
func (ls *logService) RetryTransaction(ctx context.Context, walletAddress, id string) (res *txservice.RetryResult, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("wallet_address", walletAddress),
			zap.String("transaction_id", id),
		}
		if res != nil {
			fields = append(fields, zap.Bool("success", res.Success))
			if res.Error != "" {
				fields = append(fields, zap.String("retry_error", res.Error))
			}
		}
		ls.log("RetryTransaction", start, err, fields...)
	}()
	return ls.svc.RetryTransaction(ctx, walletAddress, id)
}

func (ls *logService) Stats(ctx context.Context) *transaction.Stats {
	return ls.svc.Stats(ctx)
}
