package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串（含 zone 的地址同样视为无效）。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidPrefix 表示前缀长度不是合法的十进制数或超出地址位宽。
	ErrInvalidPrefix = errors.New("xnet: invalid prefix length")

	// ErrInvalidMask 表示点分掩码非法：不是 IPv4、不连续，或用于 IPv6 地址。
	ErrInvalidMask = errors.New("xnet: invalid netmask")

	// ErrHostBitsSet 表示网络地址的主机位非零，且没有可接受它的格式。
	ErrHostBitsSet = errors.New("xnet: host bits set")

	// ErrNotAccepted 表示字面量语法正确，但其格式不在接受集合中。
	ErrNotAccepted = errors.New("xnet: literal form not accepted")

	// ErrUnknownForm 表示无法识别的格式名。
	ErrUnknownForm = errors.New("xnet: unknown literal form")

	// ErrUnknownInterfaceMode 表示无法识别的接口模式名。
	ErrUnknownInterfaceMode = errors.New("xnet: unknown interface mode")

	// ErrInvalidVersion 表示无效的 IP 版本。
	ErrInvalidVersion = errors.New("xnet: invalid IP version")
)
