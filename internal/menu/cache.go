package menu

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKey = "menu:available"

// RedisCache holds the serialized available-menu listing. Every failure is
// logged and treated as a miss so the catalog keeps serving from MySQL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) Get(ctx context.Context) ([]MenuItemDTO, bool) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("menu cache read failed", zap.Error(err))
		return nil, false
	}

	var items []MenuItemDTO
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Warn("menu cache payload corrupt", zap.Error(err))
		return nil, false
	}

	return items, true
}

func (c *RedisCache) Set(ctx context.Context, items []MenuItemDTO) {
	data, err := json.Marshal(items)
	if err != nil {
		c.logger.Warn("menu cache marshal failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, cacheKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("menu cache write failed", zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
}
