package rampdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/jahpay/ramp-aggregator/pkg/pgutil/migrations"
	"github.com/jahpay/ramp-aggregator/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating user_profiles table...")
		return mghelper.CreateSchema(ctx, db, &userstore.ProfileDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping user_profiles table...")
		return mghelper.DropTables(ctx, db, &userstore.ProfileDao{})
	})
}
