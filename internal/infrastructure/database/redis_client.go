package database

import (
	"context"
	"time"

	"bengkel_service/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the Redis client behind the ledger feed. It returns a nil
// client when REDIS_ADDR is empty.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
