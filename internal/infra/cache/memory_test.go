package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		c := NewMemoryCache()

		_, ok, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))

		v, ok, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), v)

		hits, misses, size := c.Stats()
		assert.Equal(t, int64(1), hits)
		assert.Equal(t, int64(1), misses)
		assert.Equal(t, 1, size)
	})

	t.Run("entries expire", func(t *testing.T) {
		c := NewMemoryCache()
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		c.now = func() time.Time { return now }

		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

		now = now.Add(59 * time.Second)
		_, ok, _ := c.Get(ctx, "k")
		assert.True(t, ok)

		now = now.Add(time.Second)
		_, ok, _ = c.Get(ctx, "k")
		assert.False(t, ok)

		_, _, size := c.Stats()
		assert.Zero(t, size)
	})

	t.Run("stored value is copied", func(t *testing.T) {
		c := NewMemoryCache()
		buf := []byte("abc")
		require.NoError(t, c.Set(ctx, "k", buf, 0))
		buf[0] = 'x'

		v, _, _ := c.Get(ctx, "k")
		assert.Equal(t, []byte("abc"), v)
	})
}
