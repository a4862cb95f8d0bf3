// Package cache implements the summary memoization layer on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/entity"
)

const keyPrefix = "finflow:summary"

// summaryCache implements the adapter.SummaryCache interface.
// Entries are namespaced by a per-user version counter; bumping the counter
// orphans every older entry, which then expires through its TTL.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:version", keyPrefix, userID)
}

func (c *summaryCache) entryKey(ctx context.Context, key adapter.SummaryCacheKey) (string, error) {
	version, err := c.client.Get(ctx, versionKey(key.UserID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read cache version: %w", err)
	}
	return fmt.Sprintf("%s:%s:v%d:%s:%s:%s", keyPrefix, key.UserID, version, key.Basis, key.Fingerprint, key.Income), nil
}

// Get returns the cached summary, or nil on a miss.
func (c *summaryCache) Get(ctx context.Context, key adapter.SummaryCacheKey) (*entity.DerivedSummary, error) {
	k, err := c.entryKey(ctx, key)
	if err != nil {
		return nil, err
	}

	payload, err := c.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary entity.DerivedSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, fmt.Errorf("failed to decode cached summary: %w", err)
	}
	return &summary, nil
}

// Set stores a summary under the user's current version.
func (c *summaryCache) Set(ctx context.Context, key adapter.SummaryCacheKey, summary *entity.DerivedSummary) error {
	k, err := c.entryKey(ctx, key)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, k, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}
	return nil
}

// Invalidate bumps the user's version counter.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summaries: %w", err)
	}
	return nil
}
