package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Chandra179/web-utils/configs"
)

// RedisStore implements Store over a Redis backend.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore creates a Redis-backed Store. It establishes a connection
// to the Redis server and verifies it by sending a PING.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: rdb, ctx: ctx}, nil
}

// NewRedisStoreFromConfig creates a Redis-backed Store from the loaded
// application config.
func NewRedisStoreFromConfig(cfg *configs.Config) (*RedisStore, error) {
	return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
}

// Set stores value under key with no expiration.
func (r *RedisStore) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for key, mapping redis.Nil to ErrNotFound.
func (r *RedisStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

// Delete removes key.
func (r *RedisStore) Delete(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
