package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client, 15*time.Minute), mr
}

func TestCache_PutGet(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	irr := 0.21
	in := domain.FinancialResult{
		NPV:           320000,
		IRR:           &irr,
		ROIPercentage: 28.3,
		CashFlows:     []float64{-100000, 70000, 70000},
		Source:        domain.SourceEngine,
	}
	require.NoError(t, cache.Put(ctx, domain.KindFinancial, 5, in))

	var out domain.FinancialResult
	require.NoError(t, cache.Get(ctx, domain.KindFinancial, 5, &out))
	assert.Equal(t, in, out)
}

func TestCache_MissAndKindIsolation(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	var out domain.FinancialResult
	err := cache.Get(ctx, domain.KindFinancial, 5, &out)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// A geospatial entry must not satisfy a financial lookup.
	require.NoError(t, cache.Put(ctx, domain.KindGeospatial, 5, domain.GeospatialResult{LocationScore: 8}))
	err = cache.Get(ctx, domain.KindFinancial, 5, &out)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_Expiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.KindSustainability, 3, domain.SustainabilityResult{OverallScore: 7.5}))

	mr.FastForward(16 * time.Minute)

	var out domain.SustainabilityResult
	err := cache.Get(ctx, domain.KindSustainability, 3, &out)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, domain.KindFinancial, 9, domain.FinancialResult{NPV: 1}))
	require.NoError(t, cache.Put(ctx, domain.KindGeospatial, 9, domain.GeospatialResult{LocationScore: 2}))
	require.NoError(t, cache.Invalidate(ctx, 9))

	var fin domain.FinancialResult
	assert.ErrorIs(t, cache.Get(ctx, domain.KindFinancial, 9, &fin), domain.ErrCacheMiss)
	var geo domain.GeospatialResult
	assert.ErrorIs(t, cache.Get(ctx, domain.KindGeospatial, 9, &geo), domain.ErrCacheMiss)
}
