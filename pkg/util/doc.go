// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址与网络模型，128 位运算、字面量分类、包含关系
//   - xlru: 带命中统计的并发安全 LRU 缓存
//   - xpool: 有界并发、按序交付结果的 worker 池
//   - xfile: 输入文件发现，递归策略、目录循环检测、路径校验
package util
