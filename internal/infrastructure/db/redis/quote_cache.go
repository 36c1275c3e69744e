package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gkbjregency/membership-system/internal/core/domain"
)

const quoteKey = "quote:daily"
const quoteTTL = time.Hour

// QuoteCache caches the daily quote in Redis as JSON under a single key.
type QuoteCache struct {
	client *redis.Client
}

// NewQuoteCache creates a QuoteCache wrapping the given Redis client.
func NewQuoteCache(client *redis.Client) *QuoteCache {
	return &QuoteCache{client: client}
}

// Get returns the cached quote, or (nil, nil) on a miss.
func (c *QuoteCache) Get(ctx context.Context) (*domain.Quote, error) {
	raw, err := c.client.Get(ctx, quoteKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("quote cache get: %w", err)
	}

	var q domain.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, fmt.Errorf("quote cache decode: %w", err)
	}
	return &q, nil
}

// Set stores the quote for quoteTTL.
func (c *QuoteCache) Set(ctx context.Context, q *domain.Quote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("quote cache encode: %w", err)
	}
	return c.client.Set(ctx, quoteKey, raw, quoteTTL).Err()
}
