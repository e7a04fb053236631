package cli

import (
	"context"
	"fmt"
	"log/slog"

	fileAdapter "github.com/aretw0/vfsh/internal/adapters/file"
	redisAdapter "github.com/aretw0/vfsh/internal/adapters/redis"
	"github.com/aretw0/vfsh/internal/config"
	"github.com/aretw0/vfsh/pkg/history"
)

// OpenHistory builds the transcript store selected by the configuration.
// The returned close function is always safe to call.
func OpenHistory(ctx context.Context, cfg config.HistoryConfig, logger *slog.Logger) (history.Store, func(), error) {
	nop := func() {}

	switch cfg.Backend {
	case config.BackendMemory, "":
		return history.NewMemory(), nop, nil

	case config.BackendFile:
		logger.Debug("Using file history", "dir", cfg.Dir)
		return fileAdapter.New(cfg.Dir), nop, nil

	case config.BackendRedis:
		var opts []redisAdapter.Option
		if cfg.TTL > 0 {
			opts = append(opts, redisAdapter.WithTTL(cfg.TTL))
		}
		store, err := redisAdapter.NewFromURL(cfg.RedisURL, opts...)
		if err != nil {
			return nil, nop, err
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nop, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Debug("Using redis history", "ttl", cfg.TTL)
		return store, func() { _ = store.Close() }, nil

	default:
		return nil, nop, fmt.Errorf("unknown history backend %q", cfg.Backend)
	}
}
