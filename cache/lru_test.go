package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New[string, int](4)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, got)

	c.Set("a", 2)
	got, _ = c.Get("a")
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestEviction(t *testing.T) {
	c := New[int, int](2)

	c.Set(1, 1)
	c.Set(2, 2)
	// Touch 1 so 2 becomes the eviction candidate.
	_, _ = c.Get(1)
	c.Set(3, 3)

	_, ok := c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)

	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestUnboundedCapacity(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 10*DefaultCapacity; i++ {
		c.Set(i, i)
	}
	assert.Equal(t, 10*DefaultCapacity, c.Len())
	assert.Zero(t, c.Stats().Evictions)
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](4)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 42, c.GetOrCreate("k", create))
	assert.Equal(t, 1, calls, "create must run only on a miss")

	stats := c.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestClearPreservesStats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	_, _ = c.Get("a")
	c.Clear()

	assert.Zero(t, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Hits)

	c.ResetStats()
	assert.Zero(t, c.Stats().Hits)
	assert.Zero(t, c.Stats().Misses)
}
