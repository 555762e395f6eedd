// Package xmatch 实现 needle 与 haystack 字面量之间的四种匹配语义。
//
// 以 h 表示 haystack 中提取的网络、n 表示 needle：
//
//   - contains: h 包含 n（例如 haystack 中的 192.168.0.0/16 包含 needle 192.168.1.1）
//   - within: n 包含 h
//   - equals: 两者规范化后相同
//   - overlaps: contains 或 within 成立
//
// 不同版本永不匹配。[Match] 是纯函数，可并发调用。
// [Predicate] 是对单个字面量的布尔判定，便于组合（例如取反）而不触及包含逻辑。
package xmatch
