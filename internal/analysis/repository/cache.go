package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
)

const cacheKeyPrefix = "geoprofit:analysis:" // geoprofit:analysis:{kind}:{project_id}

// Cache stores analysis results in Redis with a TTL. The upstream client
// stays cache-free; this sits in the service tier so a dashboard reload
// does not re-run the engine.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a cache with the given TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(kind domain.Kind, projectID int) string {
	return fmt.Sprintf("%s%s:%d", cacheKeyPrefix, kind, projectID)
}

// Put stores a result under (kind, projectID).
func (c *Cache) Put(ctx context.Context, kind domain.Kind, projectID int, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal %s result: %w", kind, err)
	}
	if err := c.client.Set(ctx, cacheKey(kind, projectID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache %s result: %w", kind, err)
	}
	return nil
}

// Get loads a result into out. Returns domain.ErrCacheMiss when absent.
func (c *Cache) Get(ctx context.Context, kind domain.Kind, projectID int, out any) error {
	data, err := c.client.Get(ctx, cacheKey(kind, projectID)).Result()
	if err == redis.Nil {
		return domain.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("read cached %s result: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("unmarshal cached %s result: %w", kind, err)
	}
	return nil
}

// Invalidate drops every cached analysis for a project. Called when the
// project record is replaced or deleted.
func (c *Cache) Invalidate(ctx context.Context, projectID int) error {
	kinds := []domain.Kind{domain.KindFinancial, domain.KindGeospatial, domain.KindSustainability}

	pipe := c.client.Pipeline()
	for _, kind := range kinds {
		pipe.Del(ctx, cacheKey(kind, projectID))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate analyses for project %d: %w", projectID, err)
	}
	return nil
}
