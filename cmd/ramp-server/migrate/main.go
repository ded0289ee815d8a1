package main

import (
	"context"
	"errors"
	"log"

	"github.com/jessevdk/go-flags"
	"github.com/uptrace/bun/migrate"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/migrations/rampdb"
	"github.com/jahpay/ramp-aggregator/pkg/pgutil"
	mghelper "github.com/jahpay/ramp-aggregator/pkg/pgutil/migrations"
)

type options struct {
	Config string `short:"c" long:"config" env:"RAMP_CONFIG" default:"config.yaml" description:"Path to configuration file"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] init|up|down|status"
	args, err := parser.Parse()
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			mghelper.Usage()
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := pgutil.ConnectDB(context.Background(), &cfg.Database, nil)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for ramp database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, rampdb.Migrations)
	if err := mghelper.RunMigrations(migrator, args...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
