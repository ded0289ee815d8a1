// Package userstore persists wallet bank accounts and profiles.
package userstore

import (
	"context"
	"errors"

	"github.com/jahpay/ramp-aggregator/pkg/user"
)

var (
	// ErrBankAccountNotFound is returned when a lookup finds no matching account.
	ErrBankAccountNotFound = errors.New("bank account not found")
	// ErrBankAccountExists is returned when the wallet already saved the account.
	ErrBankAccountExists = errors.New("bank account already exists")
	// ErrProfileNotFound is returned when no profile matches the lookup.
	ErrProfileNotFound = errors.New("profile not found")
)

// Store defines bank account persistence.
type Store interface {
	CreateBankAccount(ctx context.Context, account *user.BankAccount) error
	ListBankAccounts(ctx context.Context, walletAddress string) ([]*user.BankAccount, error)
	GetBankAccount(ctx context.Context, opts ...QueryOption) (*user.BankAccount, error)
	CountBankAccounts(ctx context.Context, walletAddress string) (int, error)
	GetProfile(ctx context.Context, opts ...QueryOption) (*user.Profile, error)
	SaveProfile(ctx context.Context, profile *user.Profile) error
}

// QueryOptions defines options for querying bank accounts and profiles
type QueryOptions struct {
	ID            *string
	WalletAddress *string
	AccountNumber *string
	BankCode      *string
}

// QueryOption is a functional option for querying bank accounts and profiles
type QueryOption func(*QueryOptions)

// WithID filters by account or profile id
func WithID(id string) QueryOption {
	return func(o *QueryOptions) { o.ID = &id }
}

// WithWalletAddress restricts the lookup to one wallet
func WithWalletAddress(address string) QueryOption {
	return func(o *QueryOptions) { o.WalletAddress = &address }
}

// WithAccount filters by account number and bank code
func WithAccount(accountNumber, bankCode string) QueryOption {
	return func(o *QueryOptions) {
		o.AccountNumber = &accountNumber
		o.BankCode = &bankCode
	}
}

func buildOptions(opts []QueryOption) *QueryOptions {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
