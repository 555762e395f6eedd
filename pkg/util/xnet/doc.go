// Package xnet 提供 IP 地址与网络的类型化表示以及字面量格式解析。
//
// 地址 [Addr] 由版本标记和 128 位整数（[lukechampine.com/uint128]）组成，
// V4 只使用低 32 位；网络 [Network] 是地址加前缀长度。文本解析委托给
// [net/netip]，范围与集合运算通过 [go4.org/netipx] 对接。
//
// # 字面量格式
//
// [Classify] 把一个候选字面量归入四种格式之一，或者失败：
//
//   - ip: 裸地址，结果为 /32 或 /128
//   - net: address/prefixlen，主机位必须为零
//   - oldnet: address/dotted-netmask，仅 IPv4，掩码必须左侧连续
//   - iface: address/prefixlen-or-mask，允许主机位非零，按 [InterfaceMode] 处置
//
// 格式按固定优先级 ip、net、oldnet、iface 依次尝试，第一个成功的生效：
//
//	n, form, _ := xnet.Classify("10.0.0.7/24", xnet.DefaultAccept, xnet.IfaceIP)
//	fmt.Println(n, form) // 10.0.0.7/32 iface
//
// # 包含关系
//
// [Network.Contains] 与 [Network.Overlaps] 只比较网络位，不同版本永不相交。
// IPv4-mapped IPv6 地址保持 V6，只与同样写成 ::ffff: 形式的网络比较。
//
// # 设计决策
//
//   - 规范化（[Network.Canonical]）是显式操作，iface 字面量可以携带主机位
//   - [MustComparable] 用于比较前的不变量断言，违反即 panic
//   - 所有可失败函数返回预定义错误，支持 errors.Is
package xnet
