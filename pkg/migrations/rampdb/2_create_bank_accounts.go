package rampdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/jahpay/ramp-aggregator/pkg/pgutil/migrations"
	"github.com/jahpay/ramp-aggregator/pkg/userstore"
)

// BankAccountUniqueIndex keeps a wallet from saving the same account twice.
const BankAccountUniqueIndex = "idx_bank_accounts_wallet_account"

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating bank_accounts table...")
		if err := mghelper.CreateSchema(ctx, db, &userstore.BankAccountDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &userstore.BankAccountDao{}, "wallet_address"); err != nil {
			return err
		}
		return mghelper.CreateCompositeUniqueIndex(ctx, db, &userstore.BankAccountDao{}, BankAccountUniqueIndex,
			"wallet_address", "account_number", "bank_code")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping bank_accounts table...")
		return mghelper.DropTables(ctx, db, &userstore.BankAccountDao{})
	})
}
