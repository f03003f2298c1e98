package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"petclinic-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Key for the public catalog listing (active services with active options)
	catalogCacheKey = "catalog:services:active"

	catalogCacheTTL = 5 * time.Minute
)

// CatalogCache is a Redis read-through cache for the public service catalog.
// The catalog is read on every booking page load and changes rarely, so admin
// writes invalidate the key and the next read repopulates it. Cache failures
// are never fatal; callers fall back to the database.
type CatalogCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewCatalogCache(redisClient *redis.Client, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{
		redisClient: redisClient,
		log:         log,
	}
}

// GetServices returns the cached catalog, or found=false on miss or error.
func (c *CatalogCache) GetServices(ctx context.Context) ([]entity.Service, bool) {
	payload, err := c.redisClient.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read catalog cache: %+v", err)
		}
		return nil, false
	}

	var services []entity.Service
	if err := json.Unmarshal(payload, &services); err != nil {
		c.log.Warnf("Failed to decode catalog cache, dropping key: %+v", err)
		c.Invalidate(ctx)
		return nil, false
	}

	return services, true
}

// SetServices stores the catalog listing with a TTL.
func (c *CatalogCache) SetServices(ctx context.Context, services []entity.Service) {
	payload, err := json.Marshal(services)
	if err != nil {
		c.log.Warnf("Failed to encode catalog cache: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, catalogCacheKey, payload, catalogCacheTTL).Err(); err != nil {
		c.log.Warnf("Failed to write catalog cache: %+v", err)
	}
}

// Invalidate drops the cached catalog after an admin write.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.redisClient.Del(ctx, catalogCacheKey).Err(); err != nil {
		c.log.Warnf("Failed to invalidate catalog cache: %+v", err)
	}
}
