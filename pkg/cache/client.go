package cache

import (
	"context"
	"fmt"
	"time"

	"prestige-properties/pkg/config"
	"prestige-properties/pkg/logger"
	"prestige-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return client, nil
}

// Ping checks Redis liveness and records the round trip.
func Ping(ctx context.Context, client *redis.Client) error {
	start := time.Now()
	err := client.Ping(ctx).Err()
	metrics.SessionStoreOperationDuration.WithLabelValues("redis", "ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SessionStoreErrorsTotal.WithLabelValues("redis", "ping").Inc()
		return NewCacheError("ping", err, true)
	}
	return nil
}

// CloseRedis closes the client, logging rather than returning failures.
func CloseRedis(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
	} else {
		logger.GlobalLogger.Println("Redis connection closed")
	}
}
