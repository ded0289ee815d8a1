// Package pg persists transaction snapshots in PostgreSQL.
package pg

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store"
)

type pgStore struct {
	db *bun.DB
}

var _ store.Snapshotter = (*pgStore)(nil)

// NewStore creates a postgres snapshotter backed by the transactions table.
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) Load(ctx context.Context) ([]*transaction.Transaction, error) {
	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	txs := make([]*transaction.Transaction, 0, len(daos))
	for i := range daos {
		if daos[i].Record != nil {
			txs = append(txs, daos[i].Record)
		}
	}
	return txs, nil
}

// Save replaces the stored set with txs in one database transaction.
func (s *pgStore) Save(ctx context.Context, txs []*transaction.Transaction) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*TransactionDao)(nil)).
			Where("TRUE").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if len(txs) == 0 {
			return nil
		}

		daos := make([]*TransactionDao, 0, len(txs))
		for _, t := range txs {
			daos = append(daos, toTransactionDao(t))
		}
		if _, err := tx.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		return nil
	})
}
