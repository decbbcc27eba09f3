package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReadCache fronts the read endpoints. Implementations must be safe to call
// on a broken backend: a cache miss is always an acceptable answer.
type ReadCache interface {
	GetJSON(ctx context.Context, key string, dest any) bool
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

const (
	KeyAllDestinations = "destinations:all"
	KeyAllItineraries  = "itineraries:all"
)

func KeyItinerary(shareableID string) string {
	return "itinerary:" + shareableID
}

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) GetJSON(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis get %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		log.Printf("redis unmarshal %s: %v", key, err)
		return false
	}
	return true
}

func (c *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("redis marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("redis del %v: %v", keys, err)
	}
}

// NoopCache is used when no redis address is configured and in tests.
type NoopCache struct{}

func (NoopCache) GetJSON(ctx context.Context, key string, dest any) bool        { return false }
func (NoopCache) SetJSON(ctx context.Context, key string, v any, _ time.Duration) {}
func (NoopCache) Delete(ctx context.Context, keys ...string)                    {}
