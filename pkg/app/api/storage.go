package api

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jahpay/ramp-aggregator/pkg/config"
	"github.com/jahpay/ramp-aggregator/pkg/pgutil"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store"
	"github.com/jahpay/ramp-aggregator/pkg/transaction/store/memory"
	txpg "github.com/jahpay/ramp-aggregator/pkg/transaction/store/pg"
	txredis "github.com/jahpay/ramp-aggregator/pkg/transaction/store/redis"
	userservice "github.com/jahpay/ramp-aggregator/pkg/user/service"
	"github.com/jahpay/ramp-aggregator/pkg/userstore"
)

// storage is the persistence chosen by storage.backend.
type storage struct {
	snapshots store.Snapshotter
	users     userservice.Store
	close     func()
}

// openStorage connects the configured backend. Bank accounts and profiles
// live in Postgres when it is the backend and in memory otherwise.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*storage, error) {
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &storage{
			snapshots: txpg.NewStore(db),
			users:     userstore.NewStore(db),
			close:     func() { _ = db.Close() },
		}, nil

	case config.StorageRedis:
		client, err := txredis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr), zap.String("key", cfg.Redis.Key))
		logger.Warn("Bank accounts and profiles are kept in memory with the redis backend")
		return &storage{
			snapshots: txredis.New(client, cfg.Redis.Key),
			users:     userstore.NewMemoryStore(),
			close:     func() { _ = client.Close() },
		}, nil

	case config.StorageMemory, "":
		logger.Warn("Using in-memory storage, transactions are lost on restart")
		return &storage{
			snapshots: memory.New(),
			users:     userstore.NewMemoryStore(),
			close:     func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
