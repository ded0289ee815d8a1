package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/user"
)

const serviceName = "UserService"

const accountDisplaySize = 4

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
// Account numbers are masked to their last digits.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// AddBankAccount wraps the service method with logging
func (ls *logService) AddBankAccount(
	ctx context.Context,
	walletAddress string,
	req *user.AddBankAccountRequest,
) (account *user.BankAccount, err error) {
	start := time.Now()

	ls.logger.Info("AddBankAccount started",
		zap.String("service", serviceName),
		zap.String("method", "AddBankAccount"),
		zap.String("wallet_address", walletAddress),
		zap.String("account_number", maskAccount(req.AccountNumber)),
		zap.String("bank_code", req.BankCode),
		zap.String("country_code", req.CountryCode),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("AddBankAccount failed",
				zap.String("service", serviceName),
				zap.String("method", "AddBankAccount"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("AddBankAccount completed",
			zap.String("service", serviceName),
			zap.String("method", "AddBankAccount"),
			zap.String("account_id", account.ID),
			zap.Bool("is_verified", account.IsVerified),
			zap.Bool("is_default", account.IsDefault),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.AddBankAccount(ctx, walletAddress, req)
}

// ListBankAccounts wraps the service method with logging
func (ls *logService) ListBankAccounts(ctx context.Context, walletAddress string) (resp *user.BankAccountList, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("ListBankAccounts failed",
				zap.String("service", serviceName),
				zap.String("method", "ListBankAccounts"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.ListBankAccounts(ctx, walletAddress)
}

// GetBankAccount wraps the service method with logging
func (ls *logService) GetBankAccount(ctx context.Context, walletAddress, id string) (account *user.BankAccount, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Warn("GetBankAccount failed",
				zap.String("service", serviceName),
				zap.String("method", "GetBankAccount"),
				zap.String("account_id", id),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.GetBankAccount(ctx, walletAddress, id)
}

// GetProfile wraps the service method with logging
func (ls *logService) GetProfile(ctx context.Context, walletAddress string) (profile *user.Profile, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("GetProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "GetProfile"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.GetProfile(ctx, walletAddress)
}

// UpdateProfile wraps the service method with logging
func (ls *logService) UpdateProfile(
	ctx context.Context,
	walletAddress string,
	req *user.UpdateProfileRequest,
) (resp *user.UpdateProfileResponse, err error) {
	start := time.Now()

	ls.logger.Info("UpdateProfile started",
		zap.String("service", serviceName),
		zap.String("method", "UpdateProfile"),
		zap.String("wallet_address", walletAddress),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("UpdateProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "UpdateProfile"),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("UpdateProfile completed",
			zap.String("service", serviceName),
			zap.String("method", "UpdateProfile"),
			zap.Any("updates", resp.Updates),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.UpdateProfile(ctx, walletAddress, req)
}

// GetKYCStatus wraps the service method with logging
func (ls *logService) GetKYCStatus(ctx context.Context, walletAddress string) (resp *user.KYCStatusResponse, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("GetKYCStatus failed",
				zap.String("service", serviceName),
				zap.String("method", "GetKYCStatus"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.GetKYCStatus(ctx, walletAddress)
}

// RecordKYC wraps the service method with logging
func (ls *logService) RecordKYC(ctx context.Context, userID string, status user.KYCStatus, documentType string) (err error) {
	start := time.Now()
	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("RecordKYC failed",
				zap.String("service", serviceName),
				zap.String("method", "RecordKYC"),
				zap.String("user_id", userID),
				zap.String("kyc_status", string(status)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("RecordKYC completed",
			zap.String("service", serviceName),
			zap.String("method", "RecordKYC"),
			zap.String("user_id", userID),
			zap.String("kyc_status", string(status)),
			zap.Duration("duration", duration),
		)
	}()
	return ls.svc.RecordKYC(ctx, userID, status, documentType)
}

// SupportedBanks wraps the service method with logging
func (ls *logService) SupportedBanks(ctx context.Context, country string) (resp *user.BankList, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Warn("SupportedBanks failed",
				zap.String("service", serviceName),
				zap.String("method", "SupportedBanks"),
				zap.String("country", country),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.SupportedBanks(ctx, country)
}

// maskAccount keeps only the last digits of an account number
func maskAccount(n string) string {
	n = user.NormalizeAccountNumber(n)
	if len(n) <= accountDisplaySize {
		return n
	}
	masked := make([]byte, len(n))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(n)-accountDisplaySize:], n[len(n)-accountDisplaySize:])
	return string(masked)
}
