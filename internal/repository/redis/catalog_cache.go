package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"herbalMart/domain"
	"herbalMart/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:all"

// CatalogSource is the repository the cache sits in front of.
type CatalogSource interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// CatalogCache keeps the full catalog snapshot in Redis for a short TTL so
// scoring calls do not hit postgres on every request. The scoring engine
// itself holds no cache; freshness is the caller's concern and lives here.
type CatalogCache struct {
	client *redis.Client
	source CatalogSource
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, source CatalogSource, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (c *CatalogCache) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	val, err := c.client.Get(ctx, catalogKey).Result()
	if err == nil {
		var products []domain.Product
		if jsonErr := json.Unmarshal([]byte(val), &products); jsonErr == nil {
			metrics.CatalogCacheHits.Inc()
			return products, nil
		}
		// corrupt entry; fall through to reload
	} else if err != redis.Nil {
		return nil, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	metrics.CatalogCacheMisses.Inc()

	products, err := c.source.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, data, c.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store catalog cache: %w", err)
	}

	return products, nil
}

// FindByID goes straight to the source: single-product reads are cheap and
// must see writes immediately.
func (c *CatalogCache) FindByID(ctx context.Context, id string) (domain.Product, error) {
	return c.source.FindByID(ctx, id)
}

// Invalidate drops the cached snapshot. Called after catalog writes.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
