package store

import (
	"context"
	"testing"
	"time"

	"carprice-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute)

	_, ok, err := c.Get(ctx, "prediction:a")
	require.NoError(t, err)
	assert.False(t, ok)

	result := &entity.PredictionResult{PredictedPrice: 1234567, PredictedPriceFormatted: "1.234.567 TL"}
	require.NoError(t, c.Set(ctx, "prediction:a", result))

	// later changes to the caller's value do not leak into the cache
	result.PredictedPrice = 1

	got, ok, err := c.Get(ctx, "prediction:a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1234567.0, got.PredictedPrice)
	assert.Equal(t, "1.234.567 TL", got.PredictedPriceFormatted)
}

func TestMemoryCache_Expires(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(10 * time.Millisecond)

	require.NoError(t, c.Set(ctx, "k", &entity.PredictionResult{PredictedPrice: 5}))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
