// Package store defines the persistence port of the transaction lifecycle
// store. Backends live in the sub-packages.
package store

import (
	"context"

	"github.com/jahpay/ramp-aggregator/pkg/transaction"
)

// Snapshotter loads and saves the complete transaction set. Save replaces
// whatever was stored before.
//
//go:generate mockery --name Snapshotter --output mocks --outpkg mocks --filename mock_snapshotter.go --with-expecter
type Snapshotter interface {
	Load(ctx context.Context) ([]*transaction.Transaction, error)
	Save(ctx context.Context, txs []*transaction.Transaction) error
}
