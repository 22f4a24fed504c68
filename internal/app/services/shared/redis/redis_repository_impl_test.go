package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, &redisRepository{client: client}
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	_, repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "availability:psy-1", []string{"Segunda-08:00"}, 0))

	value, err := repo.Get(ctx, "availability:psy-1")
	require.NoError(t, err)
	assert.Equal(t, `["Segunda-08:00"]`, value)

	require.NoError(t, repo.Delete(ctx, "availability:psy-1"))
	value, err = repo.Get(ctx, "availability:psy-1")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "owner-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "owner-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	stored, err := mr.Get("lock")
	require.NoError(t, err)
	assert.Equal(t, `"owner-a"`, stored)
	assert.Equal(t, time.Minute, mr.TTL("lock"))
}

func TestRedisRepository_Expire(t *testing.T) {
	mr, repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "key", "value", time.Second))
	require.NoError(t, repo.Expire(ctx, "key", time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("key"))
}
