// Package xlru 提供固定容量的泛型 LRU 缓存。
//
// xlru 基于 github.com/hashicorp/golang-lru/v2 封装，在其之上增加命中统计，
// 用于缓存候选字面量的分类结果：日志中同一地址往往反复出现，
// 命中缓存可以省去重复的解析与掩码运算。
//
// # 使用
//
//	cache, err := xlru.New[string, int](xlru.Config{Size: 1024})
//	if err != nil {
//	    return err
//	}
//	cache.Set("10.0.0.1", 1)
//	v, ok := cache.Get("10.0.0.1")
//
// nil *Cache 是合法的空缓存，调用方可以用 nil 表示"禁用缓存"，无需额外分支。
//
// 所有方法并发安全。
package xlru
