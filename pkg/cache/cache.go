package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/fitclass/booking-service/internal/models"
	"github.com/redis/go-redis/v9"
)

const classListKey = "classes:all"

// NewRedisClient connects to Redis at addr. It returns nil when addr is empty
// or the server is unreachable; callers degrade gracefully by running without
// a cache.
func NewRedisClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] redis unreachable at %s, caching disabled: %v", addr, err)
		return nil
	}
	return client
}

// ClassCache holds the class catalog under a single key. A nil *ClassCache is
// valid and caches nothing.
type ClassCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClassCache(client *redis.Client, ttl time.Duration) *ClassCache {
	if client == nil {
		return nil
	}
	return &ClassCache{client: client, ttl: ttl}
}

func (c *ClassCache) Get(ctx context.Context) ([]models.Class, bool) {
	if c == nil {
		return nil, false
	}

	body, err := c.client.Get(ctx, classListKey).Bytes()
	if err != nil {
		return nil, false
	}

	var classes []models.Class
	if err := json.Unmarshal(body, &classes); err != nil {
		return nil, false
	}
	return classes, true
}

func (c *ClassCache) Set(ctx context.Context, classes []models.Class) {
	if c == nil {
		return
	}

	body, err := json.Marshal(classes)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, classListKey, body, c.ttl).Err(); err != nil {
		log.Printf("[cache] set failed: %v", err)
	}
}

// Invalidate drops the cached catalog; called after every committed booking
// so listings pick up the new slot count.
func (c *ClassCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, classListKey).Err(); err != nil {
		log.Printf("[cache] invalidate failed: %v", err)
	}
}
