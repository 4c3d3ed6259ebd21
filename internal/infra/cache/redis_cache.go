// Package cache implements the customer-aggregate cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tapadmin/config"
	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/lifecycle"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
)

const customerRowsKey = "tapadmin:customer_rows"

const defaultTTL = 5 * time.Minute

// redisCache implements service.AggregateCache on a Redis instance.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAggregateCache connects to Redis when a cache is configured and falls
// back to the no-op cache otherwise, so the aggregation path always has a
// cache to talk to.
func NewAggregateCache(cfg *config.Config) (service.AggregateCache, error) {
	if cfg.Cache == nil || cfg.Cache.Addr == "" {
		return NewNoopCache(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "connect to redis")
	}

	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisCache{client: client, ttl: ttl}, nil
}

func (c *redisCache) GetCustomerRows(ctx context.Context) ([]*entity.CustomerRow, bool, error) {
	raw, err := c.client.Get(ctx, customerRowsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "read cached customer rows")
	}

	var rows []*entity.CustomerRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		// A stale or truncated payload behaves like a miss.
		return nil, false, nil
	}

	return rows, true, nil
}

func (c *redisCache) SetCustomerRows(ctx context.Context, rows []*entity.CustomerRow) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return errors.Wrap(err, "encode customer rows")
	}

	if err := c.client.Set(ctx, customerRowsKey, raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "write cached customer rows")
	}

	return nil
}

func (c *redisCache) InvalidateCustomerRows(ctx context.Context) error {
	if err := c.client.Del(ctx, customerRowsKey).Err(); err != nil {
		return errors.Wrap(err, "invalidate cached customer rows")
	}

	return nil
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
