// Package redis keeps the transaction snapshot as a JSON array under a
// single Redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store"
)

// Store is a Redis backed Snapshotter.
type Store struct {
	client goredis.UniversalClient
	key    string
}

var _ store.Snapshotter = (*Store)(nil)

// New creates a snapshotter that reads and writes key.
func New(client goredis.UniversalClient, key string) *Store {
	return &Store{client: client, key: key}
}

// Connect opens a client for cfg and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Load returns the stored array. A missing key is an empty set.
func (s *Store) Load(ctx context.Context) ([]*transaction.Transaction, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	var txs []*transaction.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.key, err)
	}
	return txs, nil
}

// Save overwrites the key with txs.
func (s *Store) Save(ctx context.Context, txs []*transaction.Transaction) error {
	if txs == nil {
		txs = []*transaction.Transaction{}
	}
	raw, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}
