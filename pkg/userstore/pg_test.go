package userstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jahpay/ramp-aggregator/pkg/pgutil"
	mghelper "github.com/jahpay/ramp-aggregator/pkg/pgutil/migrations"
	"github.com/jahpay/ramp-aggregator/pkg/user"
)

const wallet = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &BankAccountDao{}, &ProfileDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	if err := mghelper.CreateCompositeUniqueIndex(ctx, db, &BankAccountDao{}, "idx_bank_accounts_wallet_account", "wallet_address", "account_number", "bank_code"); err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	return ctx, NewStore(db)
}

func newAccount(id, number string, isDefault bool, createdAt time.Time) *user.BankAccount {
	return &user.BankAccount{
		ID:            id,
		WalletAddress: wallet,
		AccountNumber: number,
		BankCode:      "044",
		BankName:      "Access Bank",
		AccountName:   "Ada Obi",
		CountryCode:   "NG",
		IsVerified:    true,
		IsDefault:     isDefault,
		CreatedAt:     createdAt,
	}
}

func runStoreContract(t *testing.T, ctx context.Context, s Store) {
	t.Helper()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	if err := s.CreateBankAccount(ctx, newAccount("a-1", "0123456789", true, base)); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := s.CreateBankAccount(ctx, newAccount("a-2", "9876543210", false, base.Add(time.Minute))); err != nil {
		t.Fatalf("create second: %v", err)
	}
	err := s.CreateBankAccount(ctx, newAccount("a-3", "0123456789", false, base.Add(2*time.Minute)))
	if !errors.Is(err, ErrBankAccountExists) {
		t.Fatalf("expected ErrBankAccountExists, got %v", err)
	}

	n, err := s.CountBankAccounts(ctx, wallet)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 accounts, got %d", n)
	}

	list, err := s.ListBankAccounts(ctx, wallet)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a-1" || !list[0].IsDefault {
		t.Fatalf("expected default account first, got %+v", list)
	}

	got, err := s.GetBankAccount(ctx, WithID("a-2"), WithWalletAddress(wallet))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AccountNumber != "9876543210" || got.BankName != "Access Bank" {
		t.Fatalf("unexpected account: %+v", got)
	}

	_, err = s.GetBankAccount(ctx, WithID("a-2"), WithWalletAddress("0x0000000000000000000000000000000000000001"))
	if !errors.Is(err, ErrBankAccountNotFound) {
		t.Fatalf("expected ErrBankAccountNotFound, got %v", err)
	}

	empty, err := s.ListBankAccounts(ctx, "0x0000000000000000000000000000000000000001")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no accounts, got %d", len(empty))
	}
}

func runProfileContract(t *testing.T, ctx context.Context, s Store) {
	t.Helper()
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	_, err := s.GetProfile(ctx, WithWalletAddress(wallet))
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	profile := &user.Profile{
		ID:            "p-1",
		WalletAddress: wallet,
		CountryCode:   "NG",
		KYCStatus:     user.KYCUnverified,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	verifiedAt := created.Add(time.Hour)
	update := *profile
	update.ID = "p-ignored"
	update.CreatedAt = verifiedAt
	update.PreferredProvider = "cashramp"
	update.KYCStatus = user.KYCVerified
	update.KYCVerifiedAt = &verifiedAt
	update.KYCDocumentType = "national_id"
	update.UpdatedAt = verifiedAt
	if err := s.SaveProfile(ctx, &update); err != nil {
		t.Fatalf("save update: %v", err)
	}

	got, err := s.GetProfile(ctx, WithWalletAddress(wallet))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "p-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("upsert must keep id and created_at, got %+v", got)
	}
	if got.PreferredProvider != "cashramp" || got.KYCStatus != user.KYCVerified || got.KYCDocumentType != "national_id" {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.KYCVerifiedAt == nil || !got.KYCVerifiedAt.Equal(verifiedAt) {
		t.Fatalf("expected verified_at %v, got %v", verifiedAt, got.KYCVerifiedAt)
	}

	byID, err := s.GetProfile(ctx, WithID("p-1"))
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.WalletAddress != wallet {
		t.Fatalf("unexpected wallet %q", byID.WalletAddress)
	}
}

func TestPGStore_Profiles(t *testing.T) {
	ctx, s := setupStore(t)
	runProfileContract(t, ctx, s)
}

func TestMemoryStore_Profiles(t *testing.T) {
	runProfileContract(t, context.Background(), NewMemoryStore())
}

func TestPGStore_BankAccounts(t *testing.T) {
	ctx, s := setupStore(t)
	runStoreContract(t, ctx, s)
}

func TestMemoryStore_BankAccounts(t *testing.T) {
	runStoreContract(t, context.Background(), NewMemoryStore())
}
