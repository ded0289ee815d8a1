package rampdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/jahpay/ramp-aggregator/pkg/pgutil/migrations"
	txpg "github.com/jahpay/ramp-aggregator/pkg/transaction/store/pg"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transactions table...")
		if err := mghelper.CreateSchema(ctx, db, &txpg.TransactionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &txpg.TransactionDao{}, "status", "created_at", "provider")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return mghelper.DropTables(ctx, db, &txpg.TransactionDao{})
	})
}
