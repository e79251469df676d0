package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

const featuredTTL = 5 * time.Minute

// FeaturedCache caches the featured-properties aggregation result.
// Key format: featured:<n>
//
// Cache failures degrade to a store read, never to an error: the cache is an
// optimisation, not a source of truth.
type FeaturedCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewFeaturedCache creates a FeaturedCache wrapping the given Redis client.
func NewFeaturedCache(client *redis.Client, log zerolog.Logger) *FeaturedCache {
	return &FeaturedCache{client: client, log: log}
}

// Get returns the cached listing for n and whether it was present.
func (c *FeaturedCache) Get(ctx context.Context, n int) ([]*domain.Property, bool) {
	raw, err := c.client.Get(ctx, c.key(n)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("featured cache read failed")
		}
		return nil, false
	}

	var items []*domain.Property
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("featured cache entry corrupt, ignoring")
		return nil, false
	}
	return items, true
}

// Set stores the listing for n with a short TTL.
func (c *FeaturedCache) Set(ctx context.Context, n int, items []*domain.Property) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("featured cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(n), raw, featuredTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("featured cache write failed")
	}
}

func (c *FeaturedCache) key(n int) string {
	return fmt.Sprintf("featured:%d", n)
}
