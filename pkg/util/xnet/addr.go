package xnet

import (
	"encoding/binary"
	"net/netip"

	"lukechampine.com/uint128"
)

// Addr 是带版本标记的 IP 地址，数值部分统一存放在 128 位无符号整数中。
//
// V4 地址只使用低 32 位。IPv4-mapped IPv6 地址（::ffff:a.b.c.d）保持为 V6，
// 不会隐式折叠为 V4。零值表示无效地址。
//
// Addr 是可比较的值类型，两个地址相等当且仅当版本与数值都相等。
type Addr struct {
	bits uint128.Uint128
	ver  Version
}

// AddrFrom4 从 4 字节（网络字节序）创建 V4 地址。
func AddrFrom4(b [4]byte) Addr {
	return AddrFromUint32(binary.BigEndian.Uint32(b[:]))
}

// AddrFromUint32 从 IPv4 的 uint32 表示创建 V4 地址。
func AddrFromUint32(v uint32) Addr {
	return Addr{bits: uint128.From64(uint64(v)), ver: V4}
}

// AddrFrom16 从 16 字节（网络字节序）创建 V6 地址。
func AddrFrom16(b [16]byte) Addr {
	return Addr{bits: uint128.FromBytesBE(b[:]), ver: V6}
}

// AddrFromNetip 将 [netip.Addr] 转换为 Addr。
// 带 zone 的地址和无效地址返回 [ErrInvalidAddress]。
// 4in6 地址保持 V6。
func AddrFromNetip(a netip.Addr) (Addr, error) {
	if !a.IsValid() || a.Zone() != "" {
		return Addr{}, ErrInvalidAddress
	}
	if a.Is4() {
		return AddrFrom4(a.As4()), nil
	}
	return AddrFrom16(a.As16()), nil
}

// ParseAddr 解析裸地址字面量（点分 IPv4 或冒号 IPv6，含 ::ffff: 映射写法）。
func ParseAddr(s string) (Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Addr{}, ErrInvalidAddress
	}
	return AddrFromNetip(a)
}

// MustParseAddr 与 [ParseAddr] 相同，但失败时 panic。仅用于常量初始化和测试。
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err.Error() + ": " + s)
	}
	return a
}

// IsValid 报告地址是否有效。
func (a Addr) IsValid() bool {
	return a.ver == V4 || a.ver == V6
}

// Version 返回地址版本。
func (a Addr) Version() Version {
	return a.ver
}

// BitLen 返回地址位宽（32 或 128），无效地址返回 0。
func (a Addr) BitLen() int {
	return a.ver.BitLen()
}

// Uint128 返回地址的整数值。
func (a Addr) Uint128() uint128.Uint128 {
	return a.bits
}

// Uint32 返回 V4 地址的 uint32 表示；非 V4 地址返回 (0, false)。
func (a Addr) Uint32() (uint32, bool) {
	if a.ver != V4 {
		return 0, false
	}
	return uint32(a.bits.Lo), true
}

// Is4In6 报告地址是否为 IPv4-mapped IPv6 地址。
func (a Addr) Is4In6() bool {
	return a.ver == V6 && a.bits.Hi == 0 && a.bits.Lo>>32 == 0xffff
}

// Netip 返回对应的 [netip.Addr]；无效地址返回零值。
func (a Addr) Netip() netip.Addr {
	switch a.ver {
	case V4:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(a.bits.Lo))
		return netip.AddrFrom4(b)
	case V6:
		var b [16]byte
		a.bits.PutBytesBE(b[:])
		return netip.AddrFrom16(b)
	default:
		return netip.Addr{}
	}
}

// Compare 按版本、数值顺序比较两个地址，返回 -1、0 或 1。
func (a Addr) Compare(b Addr) int {
	if a.ver != b.ver {
		if a.ver < b.ver {
			return -1
		}
		return 1
	}
	return a.bits.Cmp(b.bits)
}

// String 返回地址的标准文本形式；无效地址返回 "invalid IP"。
func (a Addr) String() string {
	return a.Netip().String()
}

// withBits 返回同版本、数值替换为 bits 的地址。
func (a Addr) withBits(bits uint128.Uint128) Addr {
	return Addr{bits: bits, ver: a.ver}
}
