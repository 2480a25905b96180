// db/redis.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/quill/config"
	logger "github.com/dev-mohitbeniwal/quill/logging"
)

// NewRedisClient builds a client and pings it. Per-command timeouts come
// from the configuration so a slow store degrades cache reads instead of
// stalling requests.
func NewRedisClient(ctx context.Context, cfg config.RedisConfiguration) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		PoolTimeout:  cfg.PoolTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))
	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
	return client, closeFn, nil
}
