package xnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"
)

// Network 是地址加前缀长度的网络。
//
// 不变量：前缀长度不超过地址位宽。由接口地址（iface 格式）产生的网络可能携带
// 非零主机位；规范化（[Network.Canonical]）是显式操作，不会隐式发生。
// 裸地址等价于全位宽前缀（/32 或 /128）的网络。
type Network struct {
	addr   Addr
	prefix uint8
}

// NetworkFrom 由地址和前缀长度构造网络，主机位原样保留。
// 地址无效返回 [ErrInvalidAddress]，前缀越界返回 [ErrInvalidPrefix]。
func NetworkFrom(a Addr, prefix int) (Network, error) {
	if !a.IsValid() {
		return Network{}, ErrInvalidAddress
	}
	if prefix < 0 || prefix > a.BitLen() {
		return Network{}, ErrInvalidPrefix
	}
	return Network{addr: a, prefix: uint8(prefix)}, nil
}

// HostNetwork 返回只包含 a 的全位宽网络。
func HostNetwork(a Addr) Network {
	return Network{addr: a, prefix: uint8(a.BitLen())}
}

// NetworkFromPrefix 将 [netip.Prefix] 转换为 Network，主机位原样保留。
func NetworkFromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() {
		return Network{}, ErrInvalidPrefix
	}
	a, err := AddrFromNetip(p.Addr())
	if err != nil {
		return Network{}, err
	}
	return NetworkFrom(a, p.Bits())
}

// ParseNetwork 解析 "address/prefixlen" 形式的网络，不校验主机位。
// 没有 "/" 的输入按裸地址处理。
func ParseNetwork(s string) (Network, error) {
	addrPart, lenPart, found := strings.Cut(s, "/")
	a, err := ParseAddr(addrPart)
	if err != nil {
		return Network{}, err
	}
	if !found {
		return HostNetwork(a), nil
	}
	n, err := parsePrefixLen(lenPart, a.BitLen())
	if err != nil {
		return Network{}, err
	}
	return NetworkFrom(a, n)
}

// MustParseNetwork 与 [ParseNetwork] 相同，但失败时 panic。仅用于常量初始化和测试。
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return n
}

// IsValid 报告网络是否有效。
func (n Network) IsValid() bool {
	return n.addr.IsValid()
}

// Addr 返回网络的地址部分（可能含主机位）。
func (n Network) Addr() Addr {
	return n.addr
}

// Bits 返回前缀长度。
func (n Network) Bits() int {
	return int(n.prefix)
}

// Version 返回网络的地址版本。
func (n Network) Version() Version {
	return n.addr.ver
}

// IsHost 报告网络是否为全位宽（单个地址）。
func (n Network) IsHost() bool {
	return n.IsValid() && int(n.prefix) == n.addr.BitLen()
}

// HostBitsSet 报告前缀之后是否存在非零位。
func (n Network) HostBitsSet() bool {
	if !n.IsValid() {
		return false
	}
	return !n.addr.bits.And(hostMask(n.addr.BitLen(), int(n.prefix))).IsZero()
}

// IsCanonical 报告网络主机位是否全为零。
func (n Network) IsCanonical() bool {
	return !n.HostBitsSet()
}

// Canonical 返回主机位清零后的网络。对已规范的网络是幂等的。
func (n Network) Canonical() Network {
	if !n.IsValid() {
		return n
	}
	mask := netMask(n.addr.BitLen(), int(n.prefix))
	return Network{addr: n.addr.withBits(n.addr.bits.And(mask)), prefix: n.prefix}
}

// AsHost 丢弃前缀，返回地址本身对应的全位宽网络。
func (n Network) AsHost() Network {
	if !n.IsValid() {
		return n
	}
	return HostNetwork(n.addr)
}

// First 返回网络中的第一个地址（网络地址）。
func (n Network) First() Addr {
	return n.Canonical().addr
}

// Last 返回网络中的最后一个地址（广播地址）。
func (n Network) Last() Addr {
	if !n.IsValid() {
		return Addr{}
	}
	host := hostMask(n.addr.BitLen(), int(n.prefix))
	return n.addr.withBits(n.addr.bits.Or(host))
}

// Contains 报告 o 是否是 n 的子网（或与 n 相同）。
// 两者都按规范形式比较；版本不同或任一无效时返回 false。
func (n Network) Contains(o Network) bool {
	if !n.IsValid() || n.addr.ver != o.addr.ver {
		return false
	}
	if n.prefix > o.prefix {
		return false
	}
	mask := netMask(n.addr.BitLen(), int(n.prefix))
	return n.addr.bits.And(mask).Equals(o.addr.bits.And(mask))
}

// Overlaps 报告两个网络是否相交。同版本的两个 CIDR 块要么不相交，要么一个包含另一个。
func (n Network) Overlaps(o Network) bool {
	return n.Contains(o) || o.Contains(n)
}

// Equal 报告两个网络规范化后是否相同（版本、前缀与网络位都相等）。
func (n Network) Equal(o Network) bool {
	if !n.IsValid() || !o.IsValid() {
		return false
	}
	return n.prefix == o.prefix && n.Canonical().addr == o.Canonical().addr
}

// Netip 返回对应的 [netip.Prefix]，主机位原样保留。
func (n Network) Netip() netip.Prefix {
	if !n.IsValid() {
		return netip.Prefix{}
	}
	return netip.PrefixFrom(n.addr.Netip(), int(n.prefix))
}

// Range 返回网络覆盖的地址范围。
func (n Network) Range() netipx.IPRange {
	if !n.IsValid() {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(n.First().Netip(), n.Last().Netip())
}

// String 返回 "address/prefixlen" 形式。
func (n Network) String() string {
	if !n.IsValid() {
		return "invalid Prefix"
	}
	return n.addr.String() + "/" + strconv.Itoa(int(n.prefix))
}

// MustComparable 断言 a 与 b 都满足位宽不变量且版本相同。
// 违反说明调用方存在编程错误（例如未按版本分组就比较），直接 panic。
func MustComparable(a, b Network) {
	for _, n := range [2]Network{a, b} {
		if !n.IsValid() || int(n.prefix) > n.addr.BitLen() {
			panic(fmt.Sprintf("xnet: network invariant violated: %v/%d", n.addr.ver, n.prefix))
		}
	}
	if a.addr.ver != b.addr.ver {
		panic(fmt.Sprintf("xnet: comparing %v network with %v network", a.addr.ver, b.addr.ver))
	}
}
