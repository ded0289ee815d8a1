package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/jahpay/ramp-aggregator/pkg/app/errors"
	"github.com/jahpay/ramp-aggregator/pkg/provider"
	"github.com/jahpay/ramp-aggregator/pkg/user"
	"github.com/jahpay/ramp-aggregator/pkg/userstore"
)

var (
	// ErrVerificationFailed is returned when a provider rejects the account.
	ErrVerificationFailed = errors.New("bank account verification failed")
	// ErrInvalidCountry is returned for a country that is not two letters.
	ErrInvalidCountry = errors.New("invalid country code")
)

// Store is the narrow data-access interface for the user service.
type Store interface {
	CreateBankAccount(ctx context.Context, account *user.BankAccount) error
	ListBankAccounts(ctx context.Context, walletAddress string) ([]*user.BankAccount, error)
	GetBankAccount(ctx context.Context, opts ...userstore.QueryOption) (*user.BankAccount, error)
	CountBankAccounts(ctx context.Context, walletAddress string) (int, error)
	GetProfile(ctx context.Context, opts ...userstore.QueryOption) (*user.Profile, error)
	SaveProfile(ctx context.Context, profile *user.Profile) error
}

// Service manages the bank accounts, profile and KYC state of a wallet.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	AddBankAccount(ctx context.Context, walletAddress string, req *user.AddBankAccountRequest) (*user.BankAccount, error)
	ListBankAccounts(ctx context.Context, walletAddress string) (*user.BankAccountList, error)
	GetBankAccount(ctx context.Context, walletAddress, id string) (*user.BankAccount, error)
	GetProfile(ctx context.Context, walletAddress string) (*user.Profile, error)
	UpdateProfile(ctx context.Context, walletAddress string, req *user.UpdateProfileRequest) (*user.UpdateProfileResponse, error)
	GetKYCStatus(ctx context.Context, walletAddress string) (*user.KYCStatusResponse, error)
	RecordKYC(ctx context.Context, userID string, status user.KYCStatus, documentType string) error
	SupportedBanks(ctx context.Context, country string) (*user.BankList, error)
}

type userService struct {
	store     Store
	providers func() []provider.Provider
	lookup    func(name string) (provider.Provider, error)
	limits    user.TransactionLimits
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates the user service. Accounts are verified with the first
// provider in registry order that supports verification; limits are reported
// to KYC-verified users.
func NewService(store Store, registry *provider.Registry, limits user.TransactionLimits, logger *zap.Logger) Service {
	return &userService{
		store:     store,
		providers: registry.Providers,
		lookup:    registry.Get,
		limits:    limits,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *userService) AddBankAccount(
	ctx context.Context,
	walletAddress string,
	req *user.AddBankAccountRequest,
) (*user.BankAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}

	number := user.NormalizeAccountNumber(req.AccountNumber)
	code := strings.TrimSpace(req.BankCode)

	_, err := s.store.GetBankAccount(ctx,
		userstore.WithWalletAddress(walletAddress),
		userstore.WithAccount(number, code),
	)
	switch {
	case err == nil:
		return nil, apperrors.ConflictError(userstore.ErrBankAccountExists, "Bank account already added")
	case !errors.Is(err, userstore.ErrBankAccountNotFound):
		return nil, fmt.Errorf("failed to look up bank account: %w", err)
	}

	verification, err := s.verify(ctx, number, code)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountBankAccounts(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to count bank accounts: %w", err)
	}

	account := &user.BankAccount{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		AccountNumber: number,
		BankCode:      code,
		BankName:      strings.TrimSpace(req.BankName),
		AccountName:   strings.TrimSpace(req.AccountName),
		CountryCode:   strings.ToUpper(req.CountryCode),
		IsDefault:     count == 0,
		CreatedAt:     s.now().UTC(),
	}
	if verification != nil {
		account.IsVerified = verification.Verified
		if verification.AccountName != "" {
			account.AccountName = verification.AccountName
		}
		if account.BankName == "" {
			account.BankName = verification.BankName
		}
	}

	if err := s.store.CreateBankAccount(ctx, account); err != nil {
		if errors.Is(err, userstore.ErrBankAccountExists) {
			return nil, apperrors.ConflictError(err, "Bank account already added")
		}
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	return account, nil
}

// verify asks providers in order until one supports verification. A nil
// result means no provider can verify accounts; the account is stored
// unverified.
func (s *userService) verify(ctx context.Context, number, code string) (*provider.BankAccountVerification, error) {
	for _, p := range s.providers() {
		v, err := p.VerifyBankAccount(ctx, number, code)
		if provider.IsUnsupported(err) {
			continue
		}
		if err != nil {
			return nil, apperrors.DependencyFailureError(err, "Bank account verification failed")
		}
		if v == nil || !v.Verified {
			return nil, apperrors.BadRequestError(ErrVerificationFailed, "Bank account could not be verified")
		}
		return v, nil
	}
	s.logger.Warn("no provider supports bank account verification")
	return nil, nil
}

func (s *userService) ListBankAccounts(ctx context.Context, walletAddress string) (*user.BankAccountList, error) {
	accounts, err := s.store.ListBankAccounts(ctx, walletAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	return &user.BankAccountList{Accounts: accounts, Total: len(accounts)}, nil
}

func (s *userService) GetBankAccount(ctx context.Context, walletAddress, id string) (*user.BankAccount, error) {
	account, err := s.store.GetBankAccount(ctx,
		userstore.WithID(id),
		userstore.WithWalletAddress(walletAddress),
	)
	if err != nil {
		if errors.Is(err, userstore.ErrBankAccountNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Bank account not found")
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}
	return account, nil
}

// GetProfile returns the profile of the wallet, creating an unverified one
// on first access.
func (s *userService) GetProfile(ctx context.Context, walletAddress string) (*user.Profile, error) {
	profile, err := s.store.GetProfile(ctx, userstore.WithWalletAddress(walletAddress))
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, userstore.ErrProfileNotFound) {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	now := s.now().UTC()
	profile = &user.Profile{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		KYCStatus:     user.KYCUnverified,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	// a concurrent first access may have won the insert
	profile, err = s.store.GetProfile(ctx, userstore.WithWalletAddress(walletAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *userService) UpdateProfile(
	ctx context.Context,
	walletAddress string,
	req *user.UpdateProfileRequest,
) (*user.UpdateProfileResponse, error) {
	if req.CountryCode != nil && !validCountry(*req.CountryCode) {
		return nil, apperrors.BadRequestError(ErrInvalidCountry, "Invalid country code")
	}
	if req.PreferredProvider != nil {
		if name := strings.ToLower(strings.TrimSpace(*req.PreferredProvider)); name != "" {
			if _, err := s.lookup(name); err != nil {
				return nil, apperrors.BadRequestError(err, "Invalid provider")
			}
		}
	}

	profile, err := s.GetProfile(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	updates := req.Apply(profile)
	if len(updates) > 0 {
		profile.UpdatedAt = s.now().UTC()
		if err := s.store.SaveProfile(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to save profile: %w", err)
		}
	}
	return &user.UpdateProfileResponse{Success: true, Updates: updates, Profile: profile}, nil
}

func (s *userService) GetKYCStatus(ctx context.Context, walletAddress string) (*user.KYCStatusResponse, error) {
	profile, err := s.GetProfile(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	resp := &user.KYCStatusResponse{
		Status:       profile.KYCStatus,
		VerifiedAt:   profile.KYCVerifiedAt,
		DocumentType: profile.KYCDocumentType,
	}
	if profile.KYCStatus == user.KYCVerified {
		limits := s.limits
		resp.TransactionLimits = &limits
	}
	return resp, nil
}

// RecordKYC stores a provider KYC decision. userID is either a wallet
// address or a profile id.
func (s *userService) RecordKYC(ctx context.Context, userID string, status user.KYCStatus, documentType string) error {
	opt := userstore.WithID(userID)
	if common.IsHexAddress(userID) {
		opt = userstore.WithWalletAddress(common.HexToAddress(userID).Hex())
	}

	profile, err := s.store.GetProfile(ctx, opt)
	if err != nil {
		if errors.Is(err, userstore.ErrProfileNotFound) {
			return apperrors.ResourceNotFoundError(err, "Profile not found")
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}

	now := s.now().UTC()
	profile.KYCStatus = status
	profile.UpdatedAt = now
	if documentType != "" {
		profile.KYCDocumentType = documentType
	}
	if status == user.KYCVerified {
		profile.KYCVerifiedAt = &now
	} else {
		profile.KYCVerifiedAt = nil
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// SupportedBanks returns the payout banks of country from the first provider
// that publishes a non-empty list, falling back to the built-in directory.
func (s *userService) SupportedBanks(ctx context.Context, country string) (*user.BankList, error) {
	if !validCountry(country) {
		return nil, apperrors.BadRequestError(ErrInvalidCountry, "Invalid country code")
	}
	country = strings.ToUpper(country)

	for _, p := range s.providers() {
		lister, ok := p.(provider.BankLister)
		if !ok {
			continue
		}
		banks, err := lister.SupportedBanks(ctx, country)
		if err != nil {
			s.logger.Warn("provider bank list unavailable",
				zap.String("provider", p.Name()),
				zap.String("country", country),
				zap.Error(err),
			)
			continue
		}
		if len(banks) > 0 {
			return &user.BankList{Country: country, Banks: banks, Source: p.Name()}, nil
		}
	}

	return &user.BankList{Country: country, Banks: user.BanksByCountry(country), Source: user.SourceStatic}, nil
}

func validCountry(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
