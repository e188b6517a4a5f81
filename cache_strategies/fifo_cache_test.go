package cache_strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOCache(t *testing.T) {
	_, err := NewFIFOCache[string, int](0)
	require.ErrorIs(t, err, ErrInvalidCapacity)

	cache, err := NewFIFOCache[string, string](3)
	require.NoError(t, err)

	cache.Put("a", "1")
	cache.Put("b", "2")
	cache.Put("c", "3")

	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, []string{"a", "b", "c"}, cache.Keys(), "get does not reorder")

	cache.Put("b", "two")
	assert.Equal(t, []string{"a", "b", "c"}, cache.Keys(), "update does not reorder")

	cache.Put("d", "4")
	assert.Equal(t, []string{"b", "c", "d"}, cache.Keys())
	_, ok = cache.Get("a")
	assert.False(t, ok, "oldest key is evicted even though it was read")

	assert.True(t, cache.Remove("c"))
	assert.False(t, cache.Remove("c"))
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.Keys())
}

// TestMoveToFrontBeatsFIFOOnSkewedAccess 热点键被反复访问时，LRU 的命中率高于 FIFO
func TestMoveToFrontBeatsFIFOOnSkewedAccess(t *testing.T) {
	lru, err := NewLRUCache[int, int](3)
	require.NoError(t, err)
	fifo, err := NewFIFOCache[int, int](3)
	require.NoError(t, err)

	var lruHits, fifoHits int
	for i := range 60 {
		key := 0 // 热点键
		if i%2 == 1 {
			key = 1 + i%7
		}
		if _, ok := lru.Get(key); ok {
			lruHits++
		} else {
			lru.Put(key, i)
		}
		if _, ok := fifo.Get(key); ok {
			fifoHits++
		} else {
			fifo.Put(key, i)
		}
	}

	assert.Greater(t, lruHits, fifoHits)
}
