package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

const serviceName = "TransactionService"

// logService wraps Service with logging of mutating calls.
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the transaction Service. Reads are
// passed through; mutations log their outcome and duration.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// Create wraps the service method with logging
func (ls *logService) Create(ctx context.Context, draft transaction.Draft) (tx *transaction.Transaction, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("type", string(draft.Type)),
			zap.String("provider", draft.Provider),
		}
		if tx != nil {
			fields = append(fields, zap.String("transaction_id", tx.ID))
		}
		ls.done("Create", start, err, fields...)
	}()
	return ls.svc.Create(ctx, draft)
}

// Update wraps the service method with logging
func (ls *logService) Update(ctx context.Context, id string, upd transaction.Update) (tx *transaction.Transaction, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("transaction_id", id)}
		if tx != nil {
			fields = append(fields, zap.String("status", string(tx.Status)), zap.Int("retry_count", tx.RetryCount))
		}
		ls.done("Update", start, err, fields...)
	}()
	return ls.svc.Update(ctx, id, upd)
}

func (ls *logService) Get(ctx context.Context, id string) (*transaction.Transaction, error) {
	return ls.svc.Get(ctx, id)
}

func (ls *logService) List(ctx context.Context, filters transaction.Filters) []*transaction.Transaction {
	return ls.svc.List(ctx, filters)
}

func (ls *logService) Stats(ctx context.Context) *transaction.Stats {
	return ls.svc.Stats(ctx)
}

// Retry wraps the service method with logging
func (ls *logService) Retry(ctx context.Context, id string, fn RetryFunc) (res *RetryResult, err error) {
	start := time.Now()
	ls.logger.Info("Retry started",
		zap.String("service", serviceName),
		zap.String("method", "Retry"),
		zap.String("transaction_id", id))
	defer func() {
		fields := []zap.Field{zap.String("transaction_id", id)}
		if res != nil {
			fields = append(fields,
				zap.Bool("success", res.Success),
				zap.String("status", string(res.Transaction.Status)),
				zap.Int("retry_count", res.Transaction.RetryCount),
				zap.String("retry_error", res.Error))
		}
		ls.done("Retry", start, err, fields...)
	}()
	return ls.svc.Retry(ctx, id, fn)
}

// ClearOld wraps the service method with logging
func (ls *logService) ClearOld(ctx context.Context, days int) int {
	start := time.Now()
	n := ls.svc.ClearOld(ctx, days)
	ls.done("ClearOld", start, nil, zap.Int("days", days), zap.Int("removed", n))
	return n
}

// Close wraps the service method with logging
func (ls *logService) Close(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { ls.done("Close", start, err) }()
	return ls.svc.Close(ctx)
}
