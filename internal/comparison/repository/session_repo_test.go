package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
)

func newRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewSessionRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, []int{3, 1, 4})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	// Selection order survives storage; rankings depend on it for ties.
	assert.Equal(t, []int{3, 1, 4}, got.ProjectIDs)
}

func TestGet_UnknownSession(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Get(context.Background(), "cbdd6a40-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, []int{1, 2})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), domain.ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, []int{1, 2})
	require.NoError(t, err)

	mr.FastForward(24*time.Hour + time.Minute)

	_, err = repo.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionIDsAreUnique(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, []int{1, 2})
	require.NoError(t, err)
	b, err := repo.Create(ctx, []int{1, 2})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}
