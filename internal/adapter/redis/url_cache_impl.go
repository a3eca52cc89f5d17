package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/user/page-analyzer/pkg/utils"
)

const urlIDPrefix = "urlid:"

// Registered names are immutable, so the TTL only bounds cache size.
const cacheExpiry = 24 * time.Hour

// URLCacheImpl provides a concrete implementation for the URLCacheRepository interface using Redis.
type URLCacheImpl struct {
	client *redis.Client
}

// NewURLCache creates a new instance of URLCacheImpl.
func NewURLCache(client *redis.Client) *URLCacheImpl {
	return &URLCacheImpl{client: client}
}

// generateKey creates a consistent Redis key for a normalized name by hashing it.
func (c *URLCacheImpl) generateKey(name string) string {
	return fmt.Sprintf("%s%s", urlIDPrefix, utils.HashURL(name))
}

// GetID looks up the id cached for a normalized name.
func (c *URLCacheImpl) GetID(ctx context.Context, name string) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.generateKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cache entry for %s: %w", name, err)
	}
	return id, true, nil
}

// SetID caches the id assigned to a normalized name.
func (c *URLCacheImpl) SetID(ctx context.Context, name string, id int64) error {
	return c.client.Set(ctx, c.generateKey(name), strconv.FormatInt(id, 10), cacheExpiry).Err()
}
