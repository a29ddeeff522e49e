package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultFeedTTL = 5 * time.Minute

// FeedCache stores rendered RSS documents in Redis.
// Key format: feed:<show_id>
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a FeedCache wrapping the given Redis client. A ttl of
// zero selects the default.
func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	if ttl <= 0 {
		ttl = defaultFeedTTL
	}
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached feed for a show, or "" on a miss.
func (c *FeedCache) Get(ctx context.Context, showID string) (string, error) {
	val, err := c.client.Get(ctx, c.key(showID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("feed cache get: %w", err)
	}
	return val, nil
}

// Set stores a rendered feed (expires after the configured TTL).
func (c *FeedCache) Set(ctx context.Context, showID, feed string) error {
	return c.client.Set(ctx, c.key(showID), feed, c.ttl).Err()
}

// Invalidate drops the cached feed after the show's episodes change.
func (c *FeedCache) Invalidate(ctx context.Context, showID string) error {
	return c.client.Del(ctx, c.key(showID)).Err()
}

func (c *FeedCache) key(showID string) string {
	return "feed:" + showID
}
