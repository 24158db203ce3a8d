package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "genre:1", map[string]string{"name": "Drama"}, time.Minute))

	var got map[string]string
	found, err := c.Get(ctx, "genre:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Drama", got["name"])

	require.NoError(t, c.Delete(ctx, "genre:1"))
	found, err = c.Get(ctx, "genre:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	c.now = func() time.Time { return now.Add(2 * time.Second) }

	var v int
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_DeletePattern(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	require.NoError(t, c.Set(ctx, "genres:list", []string{"a"}, 0))
	require.NoError(t, c.Set(ctx, "genres:id:1", "a", 0))
	require.NoError(t, c.Set(ctx, "directors:id:1", "d", 0))

	require.NoError(t, c.DeletePattern(ctx, "genres:*"))

	var s string
	found, _ := c.Get(ctx, "genres:id:1", &s)
	assert.False(t, found)
	found, _ = c.Get(ctx, "directors:id:1", &s)
	assert.True(t, found)
}
