package xlru

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{name: "valid", size: 10},
		{name: "max", size: maxSize},
		{name: "zero size", size: 0, wantErr: ErrInvalidSize},
		{name: "negative size", size: -1, wantErr: ErrInvalidSize},
		{name: "too large", size: maxSize + 1, wantErr: ErrSizeExceedsMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New[string, int](Config{Size: tt.size})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestCache_GetSet(t *testing.T) {
	c, err := New[string, int](Config{Size: 2})
	require.NoError(t, err)

	_, ok := c.Get("a")
	assert.False(t, ok)

	assert.False(t, c.Set("a", 1))
	assert.False(t, c.Set("b", 2))

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// "b" 最久未访问，被淘汰
	assert.True(t, c.Set("c", 3))
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	assert.Equal(t, Stats{Hits: 1, Misses: 2}, c.Stats())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Stats{Hits: 1, Misses: 2}, c.Stats())
}

func TestCache_Nil(t *testing.T) {
	var c *Cache[string, int]

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.False(t, c.Set("a", 1))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, Stats{}, c.Stats())
	assert.NotPanics(t, c.Clear)
}

func TestCache_Concurrent(t *testing.T) {
	c, err := New[string, int](Config{Size: 64})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				key := strconv.Itoa((g + i) % 100)
				if _, ok := c.Get(key); !ok {
					c.Set(key, i)
				}
			}
		}()
	}
	wg.Wait()

	s := c.Stats()
	assert.Equal(t, uint64(8000), s.Hits+s.Misses)
	assert.LessOrEqual(t, c.Len(), 64)
}

func BenchmarkCache_Get(b *testing.B) {
	c, err := New[string, int](Config{Size: 1024})
	require.NoError(b, err)
	c.Set("192.168.1.1", 1)

	for b.Loop() {
		_, _ = c.Get("192.168.1.1")
	}
}
