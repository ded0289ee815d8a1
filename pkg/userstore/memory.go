package userstore

import (
	"context"
	"sort"
	"sync"

	"github.com/jahpay/ramp-aggregator/pkg/user"
)

// MemoryStore keeps bank accounts and profiles in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts []*user.BankAccount
	profiles map[string]*user.Profile
}

// NewMemoryStore creates an empty in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]*user.Profile)}
}

func (s *MemoryStore) CreateBankAccount(_ context.Context, account *user.BankAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.accounts {
		if a.ID == account.ID || (a.WalletAddress == account.WalletAddress &&
			a.AccountNumber == account.AccountNumber && a.BankCode == account.BankCode) {
			return ErrBankAccountExists
		}
	}
	cp := *account
	s.accounts = append(s.accounts, &cp)
	return nil
}

func (s *MemoryStore) ListBankAccounts(_ context.Context, walletAddress string) ([]*user.BankAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*user.BankAccount, 0)
	for _, a := range s.accounts {
		if a.WalletAddress == walletAddress {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) GetBankAccount(_ context.Context, opts ...QueryOption) (*user.BankAccount, error) {
	o := buildOptions(opts)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if o.ID != nil && a.ID != *o.ID {
			continue
		}
		if o.WalletAddress != nil && a.WalletAddress != *o.WalletAddress {
			continue
		}
		if o.AccountNumber != nil && a.AccountNumber != *o.AccountNumber {
			continue
		}
		if o.BankCode != nil && a.BankCode != *o.BankCode {
			continue
		}
		cp := *a
		return &cp, nil
	}
	return nil, ErrBankAccountNotFound
}

func (s *MemoryStore) CountBankAccounts(_ context.Context, walletAddress string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.accounts {
		if a.WalletAddress == walletAddress {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) GetProfile(_ context.Context, opts ...QueryOption) (*user.Profile, error) {
	o := buildOptions(opts)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.profiles {
		if o.ID != nil && p.ID != *o.ID {
			continue
		}
		if o.WalletAddress != nil && p.WalletAddress != *o.WalletAddress {
			continue
		}
		cp := *p
		return &cp, nil
	}
	return nil, ErrProfileNotFound
}

// SaveProfile inserts the profile or overwrites the one of the same wallet,
// keeping its id and created_at.
func (s *MemoryStore) SaveProfile(_ context.Context, profile *user.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *profile
	if existing, ok := s.profiles[profile.WalletAddress]; ok {
		cp.ID = existing.ID
		cp.CreatedAt = existing.CreatedAt
	}
	s.profiles[profile.WalletAddress] = &cp
	return nil
}
