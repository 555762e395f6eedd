package xlru

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxSize 缓存最大条目数上限。
const maxSize = 1 << 24 // 16,777,216

// Config 定义缓存配置。
type Config struct {
	// Size 缓存最大条目数。
	// 必须大于 0 且不超过 16,777,216。
	Size int
}

// Stats 是缓存命中统计的快照。
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache 是并发安全的固定容量 LRU 缓存，附带命中统计。
// 必须通过 [New] 创建；nil *Cache 可以安全调用，表现为永远 miss 的空缓存。
type Cache[K comparable, V any] struct {
	lru    *lru.Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New 创建新的 LRU 缓存。
// 如果 cfg.Size <= 0，返回 ErrInvalidSize。
// 如果 cfg.Size > maxSize (16,777,216)，返回 ErrSizeExceedsMax。
func New[K comparable, V any](cfg Config) (*Cache[K, V], error) {
	if cfg.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.Size > maxSize {
		return nil, ErrSizeExceedsMax
	}
	l, err := lru.New[K, V](cfg.Size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{lru: l}, nil
}

// Get 获取缓存值并更新 LRU 顺序。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c == nil {
		return value, false
	}
	value, ok = c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Set 设置缓存值。返回值表示是否触发了淘汰。
func (c *Cache[K, V]) Set(key K, value V) bool {
	if c == nil {
		return false
	}
	return c.lru.Add(key, value)
}

// Len 返回当前缓存条目数。
func (c *Cache[K, V]) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Clear 清空所有缓存条目，命中统计保持不变。
func (c *Cache[K, V]) Clear() {
	if c == nil {
		return
	}
	c.lru.Purge()
}

// Stats 返回命中统计快照。
func (c *Cache[K, V]) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
