package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_GetSet(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	// отсутствующий ключ это промах, а не ошибка
	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	key := Key(100000, 0.005, 360)
	require.NoError(t, c.Set(ctx, key, "599.55"))

	val, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "599.55", val)

	stored, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "599.55", stored)
	assert.Equal(t, time.Minute, mr.TTL(key))
}

func TestRedis_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedis_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, ok, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "cache: redis get")

	err = c.Set(ctx, "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache: redis set")
}
