// Package migrations holds the bun helpers used by numbered migrations and
// the migrate command.
package migrations

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

const usageText = `Usage:
  ramp-migrate [-c config.yaml] <command>

Commands:
  init    creates the migration and lock tables
  up      applies every pending migration as one group
  down    rolls back the last migration group
  status  prints applied and pending migrations

Examples:
  go run cmd/ramp-server/migrate/main.go -c config.yaml init
  go run cmd/ramp-server/migrate/main.go -c config.yaml up
  go run cmd/ramp-server/migrate/main.go -c config.yaml status
`

// Usage prints command usage and exits.
func Usage() {
	fmt.Print(usageText)
	os.Exit(2)
}

// Exitf prints the message followed by usage and exits.
func Exitf(s string, args ...any) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
	Usage()
}

// CreateSchema creates the table of each model if it does not exist.
func CreateSchema(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		table, err := tableName(db, model)
		if err != nil {
			return err
		}
		log.Printf("creating table %s", table)
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}

// DropTables drops the table of each model together with its indexes.
func DropTables(ctx context.Context, db bun.IDB, models ...any) error {
	for _, model := range models {
		table, err := tableName(db, model)
		if err != nil {
			return err
		}
		log.Printf("dropping table %s", table)
		if _, err := db.NewDropTable().Model(model).IfExists().Cascade().Exec(ctx); err != nil {
			return fmt.Errorf("drop table %s: %w", table, err)
		}
	}
	return nil
}

// CreateModelIndexes creates one idx_<table>_<column> index per column.
func CreateModelIndexes(ctx context.Context, db bun.IDB, model any, columns ...string) error {
	table, err := tableName(db, model)
	if err != nil {
		return err
	}
	for _, column := range columns {
		_, err := db.NewCreateIndex().
			Model(model).
			Index(fmt.Sprintf("idx_%s_%s", table, column)).
			Column(column).
			IfNotExists().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create index on %s.%s: %w", table, column, err)
		}
	}
	return nil
}

// CreateCompositeUniqueIndex creates one unique index named name over columns
// of the table associated with the model.
func CreateCompositeUniqueIndex(ctx context.Context, db bun.IDB, model any, name string, columns ...string) error {
	_, err := db.NewCreateIndex().
		Model(model).
		Index(name).
		Column(columns...).
		Unique().
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create unique index %s: %w", name, err)
	}
	return nil
}

func tableName(db bun.IDB, model any) (string, error) {
	if model == nil {
		return "", fmt.Errorf("model cannot be nil")
	}
	name := db.NewCreateIndex().Model(model).GetTableName()
	if name == "" {
		return "", fmt.Errorf("failed to resolve table name for model %T", model)
	}
	return strings.NewReplacer(`"`, "", ".", "_").Replace(name), nil
}

// RunMigrations runs the migrate command in args[0] with migrator.
func RunMigrations(migrator *migrate.Migrator, args ...string) error {
	ctx := context.Background()

	if len(args) == 0 {
		Exitf("no command provided")
	}

	switch args[0] {
	case "init":
		if err := migrator.Init(ctx); err != nil {
			return err
		}
		log.Println("migration tables created")
		return nil

	case "up":
		return locked(ctx, migrator, func() error {
			group, err := migrator.Migrate(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no new migrations to run (database is up to date)")
			} else {
				log.Printf("migrated to %s\n", group)
			}
			return nil
		})

	case "down":
		return locked(ctx, migrator, func() error {
			group, err := migrator.Rollback(ctx)
			if err != nil {
				return err
			}
			if group.IsZero() {
				log.Println("no migrations to roll back")
			} else {
				log.Printf("rolled back %s\n", group)
			}
			return nil
		})

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			return err
		}
		log.Printf("migrations: %s\n", ms)
		log.Printf("unapplied migrations: %s\n", ms.Unapplied())
		log.Printf("last migration group: %s\n", ms.LastGroup())
		return nil

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func locked(ctx context.Context, migrator *migrate.Migrator, fn func() error) error {
	if err := migrator.Lock(ctx); err != nil {
		return fmt.Errorf("failed to acquire migration lock: %w", err)
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Printf("failed to release migration lock: %v", err)
		}
	}()
	return fn()
}
