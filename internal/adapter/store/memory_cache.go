package store

import (
	"context"
	"time"

	"carprice-api/internal/domain/entity"

	"github.com/patrickmn/go-cache"
)

// MemoryCache keeps predictions in process. Used when no Redis is configured.
type MemoryCache struct {
	cache *cache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{cache: cache.New(ttl, 2*ttl)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (*entity.PredictionResult, bool, error) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false, nil
	}
	result := v.(entity.PredictionResult)
	return &result, true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, result *entity.PredictionResult) error {
	m.cache.Set(key, *result, cache.DefaultExpiration)
	return nil
}
