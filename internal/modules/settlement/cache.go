// README: Read-through settlement cache backed by Redis.
package settlement

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pedelogo/internal/types"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(orderID types.ID) string {
	return "settlement:" + string(orderID)
}

func (c *RedisCache) Get(ctx context.Context, orderID types.ID) (*Settlement, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(orderID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var st Settlement
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return nil, false, err
	}
	return &st, true, nil
}

func (c *RedisCache) Set(ctx context.Context, st *Settlement) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(st.OrderID), payload, c.ttl).Err()
}
