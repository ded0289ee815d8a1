package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/jahpay/ramp-aggregator/pkg/user"
)

// pgUniqueViolation is the SQLSTATE of a unique constraint failure.
const pgUniqueViolation = "23505"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateBankAccount(ctx context.Context, account *user.BankAccount) error {
	dao := toBankAccountDao(account)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return ErrBankAccountExists
		}
		return fmt.Errorf("failed to create bank account: %w", err)
	}

	return nil
}

func (s *pgStore) ListBankAccounts(ctx context.Context, walletAddress string) ([]*user.BankAccount, error) {
	var daos []BankAccountDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("wallet_address = ?", walletAddress).
		Order("is_default DESC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}

	accounts := make([]*user.BankAccount, len(daos))
	for i := range daos {
		accounts[i] = toBankAccount(&daos[i])
	}
	return accounts, nil
}

func (s *pgStore) GetBankAccount(ctx context.Context, opts ...QueryOption) (*user.BankAccount, error) {
	options := buildOptions(opts)

	dao := new(BankAccountDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *options.WalletAddress)
	}
	if options.AccountNumber != nil {
		query = query.Where("account_number = ?", *options.AccountNumber)
	}
	if options.BankCode != nil {
		query = query.Where("bank_code = ?", *options.BankCode)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBankAccountNotFound
		}
		return nil, fmt.Errorf("failed to get bank account: %w", err)
	}

	return toBankAccount(dao), nil
}

func (s *pgStore) CountBankAccounts(ctx context.Context, walletAddress string) (int, error) {
	n, err := s.db.NewSelect().
		Model((*BankAccountDao)(nil)).
		Where("wallet_address = ?", walletAddress).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count bank accounts: %w", err)
	}
	return n, nil
}

func (s *pgStore) GetProfile(ctx context.Context, opts ...QueryOption) (*user.Profile, error) {
	options := buildOptions(opts)

	dao := new(ProfileDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *options.WalletAddress)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return toProfile(dao), nil
}

// SaveProfile inserts the profile or overwrites the row of the same wallet.
// The id and created_at of an existing row are kept.
func (s *pgStore) SaveProfile(ctx context.Context, profile *user.Profile) error {
	dao := toProfileDao(profile)

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (wallet_address) DO UPDATE").
		Set("country_code = EXCLUDED.country_code").
		Set("preferred_provider = EXCLUDED.preferred_provider").
		Set("kyc_status = EXCLUDED.kyc_status").
		Set("kyc_verified_at = EXCLUDED.kyc_verified_at").
		Set("kyc_document_type = EXCLUDED.kyc_document_type").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
