// Package memory keeps the transaction snapshot as a JSON blob in process.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store"
)

// Store is an in-process Snapshotter. Records are stored serialized so that
// callers never share memory with the snapshot.
type Store struct {
	mu    sync.Mutex
	blob  []byte
	saves int
}

var _ store.Snapshotter = (*Store)(nil)

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewWith returns a store pre-loaded with txs.
func NewWith(txs []*transaction.Transaction) (*Store, error) {
	s := New()
	if err := s.Save(context.Background(), txs); err != nil {
		return nil, err
	}
	s.saves = 0
	return s, nil
}

// Load decodes the last saved snapshot. A store that was never saved is empty.
func (s *Store) Load(context.Context) ([]*transaction.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.blob) == 0 {
		return nil, nil
	}
	var txs []*transaction.Transaction
	if err := json.Unmarshal(s.blob, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return txs, nil
}

// Save replaces the snapshot with txs.
func (s *Store) Save(_ context.Context, txs []*transaction.Transaction) error {
	if txs == nil {
		txs = []*transaction.Transaction{}
	}
	blob, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	s.mu.Lock()
	s.blob = blob
	s.saves++
	s.mu.Unlock()
	return nil
}

// Saves returns how many times Save succeeded.
func (s *Store) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
