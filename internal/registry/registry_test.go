package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("finds seeded ids", func(t *testing.T) {
		d := NewDirectory("YT-101", "YT-202")

		registered, err := d.IsRegistered(ctx, "YT-101")
		require.NoError(t, err)
		assert.True(t, registered)

		registered, err = d.IsRegistered(ctx, "YT-303")
		require.NoError(t, err)
		assert.False(t, registered)
	})

	t.Run("matches regardless of case and whitespace", func(t *testing.T) {
		d := NewDirectory("yt-101")

		registered, err := d.IsRegistered(ctx, "  YT-101  ")
		require.NoError(t, err)
		assert.True(t, registered)
	})

	t.Run("ignores empty ids", func(t *testing.T) {
		d := NewDirectory("", "   ")
		assert.Equal(t, 0, d.Len())

		registered, err := d.IsRegistered(ctx, "")
		require.NoError(t, err)
		assert.False(t, registered)
	})

	t.Run("add registers new ids", func(t *testing.T) {
		d := NewDirectory()
		d.Add("yt-404")

		registered, err := d.IsRegistered(ctx, "YT-404")
		require.NoError(t, err)
		assert.True(t, registered)
		assert.Equal(t, 1, d.Len())
	})
}

// countingLookup counts delegated lookups so cache behavior is observable.
type countingLookup struct {
	inner *Directory
	calls int
	err   error
}

func (c *countingLookup) IsRegistered(ctx context.Context, id string) (bool, error) {
	c.calls++
	if c.err != nil {
		return false, c.err
	}
	return c.inner.IsRegistered(ctx, id)
}

func TestCached(t *testing.T) {
	ctx := context.Background()

	t.Run("serves repeated hits from cache", func(t *testing.T) {
		next := &countingLookup{inner: NewDirectory("YT-101")}
		c := NewCached(next, 16, time.Minute)

		for i := 0; i < 3; i++ {
			registered, err := c.IsRegistered(ctx, "yt-101")
			require.NoError(t, err)
			assert.True(t, registered)
		}

		assert.Equal(t, 1, next.calls)
	})

	t.Run("does not cache misses", func(t *testing.T) {
		next := &countingLookup{inner: NewDirectory()}
		c := NewCached(next, 16, time.Minute)

		registered, err := c.IsRegistered(ctx, "YT-303")
		require.NoError(t, err)
		assert.False(t, registered)

		// Registration lands between lookups.
		next.inner.Add("YT-303")

		registered, err = c.IsRegistered(ctx, "YT-303")
		require.NoError(t, err)
		assert.True(t, registered)
		assert.Equal(t, 2, next.calls)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		next := &countingLookup{inner: NewDirectory(), err: errors.New("directory offline")}
		c := NewCached(next, 16, time.Minute)

		_, err := c.IsRegistered(ctx, "YT-101")
		assert.Error(t, err)
	})

	t.Run("invalidate forces a fresh lookup", func(t *testing.T) {
		next := &countingLookup{inner: NewDirectory("YT-101")}
		c := NewCached(next, 16, time.Minute)

		_, err := c.IsRegistered(ctx, "YT-101")
		require.NoError(t, err)

		c.Invalidate("yt-101")

		_, err = c.IsRegistered(ctx, "YT-101")
		require.NoError(t, err)
		assert.Equal(t, 2, next.calls)
	})
}
