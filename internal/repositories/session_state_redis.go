package repositories

import (
	"context"
	"time"

	"prestige-properties/pkg/cache"
	"prestige-properties/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

type redisSessionStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStateRepository stores session state as plain Redis strings under
// session:{id}:{key}, each expiring ttl after its last write.
func NewRedisSessionStateRepository(client *redis.Client, ttl time.Duration) SessionStateRepository {
	return &redisSessionStateRepository{client: client, ttl: ttl}
}

func (r *redisSessionStateRepository) Backend() string { return "redis" }

func (r *redisSessionStateRepository) ForSession(sessionID string) SessionState {
	return &redisSessionState{client: r.client, ttl: r.ttl, sessionID: sessionID}
}

type redisSessionState struct {
	client    *redis.Client
	ttl       time.Duration
	sessionID string
}

func (s *redisSessionState) Get(ctx context.Context, key string) (string, bool, error) {
	redisKey := cache.SessionStateKey(s.sessionID, key)
	start := time.Now()
	value, err := s.client.Get(ctx, redisKey).Result()
	metrics.SessionStoreOperationDuration.WithLabelValues("redis", "get").Observe(time.Since(start).Seconds())
	if cache.IsMiss(err) {
		return "", false, nil
	}
	if err != nil {
		metrics.SessionStoreErrorsTotal.WithLabelValues("redis", "get").Inc()
		return "", false, cache.NewCacheError("get", err, true).WithKey(redisKey)
	}
	return value, true, nil
}

func (s *redisSessionState) Set(ctx context.Context, key, value string) error {
	redisKey := cache.SessionStateKey(s.sessionID, key)
	start := time.Now()
	err := s.client.Set(ctx, redisKey, value, s.ttl).Err()
	metrics.SessionStoreOperationDuration.WithLabelValues("redis", "set").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SessionStoreErrorsTotal.WithLabelValues("redis", "set").Inc()
		return cache.NewCacheError("set", err, true).WithKey(redisKey)
	}
	return nil
}

func (s *redisSessionState) Delete(ctx context.Context, key string) error {
	redisKey := cache.SessionStateKey(s.sessionID, key)
	start := time.Now()
	err := s.client.Del(ctx, redisKey).Err()
	metrics.SessionStoreOperationDuration.WithLabelValues("redis", "del").Observe(time.Since(start).Seconds())
	if err != nil && !cache.IsMiss(err) {
		metrics.SessionStoreErrorsTotal.WithLabelValues("redis", "del").Inc()
		return cache.NewCacheError("del", err, true).WithKey(redisKey)
	}
	return nil
}

func (s *redisSessionState) Take(ctx context.Context, key string) (string, bool, error) {
	redisKey := cache.SessionStateKey(s.sessionID, key)
	start := time.Now()
	value, err := s.client.GetDel(ctx, redisKey).Result()
	metrics.SessionStoreOperationDuration.WithLabelValues("redis", "getdel").Observe(time.Since(start).Seconds())
	if cache.IsMiss(err) {
		return "", false, nil
	}
	if err != nil {
		metrics.SessionStoreErrorsTotal.WithLabelValues("redis", "getdel").Inc()
		return "", false, cache.NewCacheError("getdel", err, true).WithKey(redisKey)
	}
	return value, true, nil
}
