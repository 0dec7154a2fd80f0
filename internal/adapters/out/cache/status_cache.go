// Package cache keeps the package status list in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	statusesKey = "parcels:statuses"

	ErrorFailedToConnect = "failed to connect to redis"
	ErrorFailedToGet     = "failed to get value from redis"
	ErrorFailedToSet     = "failed to set value in redis"
	ErrorFailedToDecode  = "failed to decode cached statuses"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStatusCache implements ports.StatusCache.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatusCache connects and pings the server before returning.
func NewRedisStatusCache(ctx context.Context, cfg Config) (*RedisStatusCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", ErrorFailedToConnect, err)
	}

	return &RedisStatusCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisStatusCache) Get(ctx context.Context) ([]parcel.Status, bool, error) {
	raw, err := c.client.Get(ctx, statusesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%s: %w", ErrorFailedToGet, err)
	}

	var ids []int
	if err = json.Unmarshal(raw, &ids); err != nil {
		logger.Log(ctx).Warn(ctx, ErrorFailedToDecode, zap.Error(err))
		return nil, false, nil
	}

	statuses := make([]parcel.Status, 0, len(ids))
	for _, id := range ids {
		status := parcel.Status(id)
		if status.Validate() != nil {
			return nil, false, nil
		}
		statuses = append(statuses, status)
	}

	return statuses, true, nil
}

// Set stores the list for the configured TTL. A zero TTL keeps it until evicted.
func (c *RedisStatusCache) Set(ctx context.Context, statuses []parcel.Status) error {
	ids := make([]int, 0, len(statuses))
	for _, status := range statuses {
		ids = append(ids, int(status))
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, statusesKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToSet, err)
	}

	return nil
}

func (c *RedisStatusCache) Close() error {
	return c.client.Close()
}
