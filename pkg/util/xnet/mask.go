package xnet

import (
	"math/bits"
	"strconv"

	"lukechampine.com/uint128"
)

// hostMask 返回 width 位地址在 prefix 前缀下的主机位掩码。
func hostMask(width, prefix int) uint128.Uint128 {
	n := width - prefix
	if n <= 0 {
		return uint128.Zero
	}
	return uint128.Max.Rsh(uint(128 - n))
}

// netMask 返回 width 位地址在 prefix 前缀下的网络位掩码。
func netMask(width, prefix int) uint128.Uint128 {
	return hostMask(width, 0).Xor(hostMask(width, prefix))
}

// parsePrefixLen 解析 "/" 之后的十进制前缀长度。
// 只接受纯数字，不接受符号与前导零（"0" 除外），且不得超过 width。
func parsePrefixLen(s string, width int) (int, error) {
	if s == "" || len(s) > 3 || (len(s) > 1 && s[0] == '0') {
		return 0, ErrInvalidPrefix
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidPrefix
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > width {
		return 0, ErrInvalidPrefix
	}
	return n, nil
}

// maskToPrefix 将点分 IPv4 掩码转换为前缀长度。
// 掩码必须是左侧连续的 1，例如 255.255.255.0；255.0.255.0 非法。
func maskToPrefix(s string) (int, error) {
	m, err := ParseAddr(s)
	if err != nil || m.Version() != V4 {
		return 0, ErrInvalidMask
	}
	v, _ := m.Uint32()
	// 连续性校验：取反后应为 2^n - 1 形式
	inverted := ^v
	if inverted&(inverted+1) != 0 {
		return 0, ErrInvalidMask
	}
	return bits.OnesCount32(v), nil
}

// isDecimal 报告 s 是否非空且全部由十进制数字组成。
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
