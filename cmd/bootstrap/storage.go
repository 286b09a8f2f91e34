package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/db"
	"room-booking/internal/infra/kv"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewBackend,
	),
)

// NewBackend opens the backend selected by STORAGE_BACKEND and closes it on stop.
func NewBackend(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kv.Backend, error) {
	backend, cleanup, err := openBackend(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("storage backend ready", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key,
		"revision_check", cfg.Storage.RevisionCheck)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := backend.Close(); err != nil {
				logger.Warn("failed to close storage backend", "error", err)
			}
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})
	return backend, nil
}

func openBackend(ctx context.Context, cfg config.Config) (kv.Backend, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return kv.NewMemoryBackend(), nil, nil

	case config.BackendFile:
		b, err := kv.NewFileBackend(cfg.Storage.FileDir)
		return b, nil, err

	case config.BackendRedis:
		client, err := kv.DialRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedisBackend(client), nil, nil

	case config.BackendPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx, pool); err != nil {
			cleanup()
			return nil, nil, err
		}
		return kv.NewPostgresBackend(pool), cleanup, nil

	case config.BackendMongo:
		client, err := kv.DialMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewMongoBackend(client, cfg.Mongo.Database, cfg.Mongo.Collection), nil, nil

	default:
		return nil, nil, errs.New("unsupported storage backend " + cfg.Storage.Backend)
	}
}
