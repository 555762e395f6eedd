package xnet

import (
	"fmt"
	"strings"
)

// Form 是字面量可满足的文法之一。
type Form uint8

const (
	// FormIP 裸地址：192.0.2.1、2001:db8::1、::ffff:192.0.2.1。
	FormIP Form = 1 << iota
	// FormNet 严格网络：address/prefixlen，主机位必须为零。
	FormNet
	// FormOldnet 点分掩码网络：address/dotted-netmask，仅 IPv4，掩码必须连续。
	FormOldnet
	// FormIface 接口地址：address/prefixlen-or-mask，允许主机位非零。
	FormIface
)

// formOrder 是接受集合的固定优先级顺序。
var formOrder = [...]Form{FormIP, FormNet, FormOldnet, FormIface}

// String 返回格式名。
func (f Form) String() string {
	switch f {
	case FormIP:
		return "ip"
	case FormNet:
		return "net"
	case FormOldnet:
		return "oldnet"
	case FormIface:
		return "iface"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

// ParseForm 解析格式名，支持别名：net|n、oldnet|o、iface|if。
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ip":
		return FormIP, nil
	case "net", "n":
		return FormNet, nil
	case "oldnet", "o":
		return FormOldnet, nil
	case "iface", "if":
		return FormIface, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownForm, s)
	}
}

// AcceptSet 是被接受格式的集合。
type AcceptSet uint8

// DefaultAccept 是默认接受集合：ip、net、iface。
const DefaultAccept = AcceptSet(FormIP | FormNet | FormIface)

// NewAcceptSet 由若干格式构造集合。
func NewAcceptSet(forms ...Form) AcceptSet {
	var s AcceptSet
	for _, f := range forms {
		s |= AcceptSet(f)
	}
	return s
}

// ParseAcceptSet 解析格式名列表，每个元素本身也可以是逗号分隔的列表。
// 空列表返回 [DefaultAccept]。
func ParseAcceptSet(values []string) (AcceptSet, error) {
	var s AcceptSet
	for _, v := range values {
		for name := range strings.SplitSeq(v, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			f, err := ParseForm(name)
			if err != nil {
				return 0, err
			}
			s |= AcceptSet(f)
		}
	}
	if s == 0 {
		return DefaultAccept, nil
	}
	return s, nil
}

// Has 报告集合是否包含 f。
func (s AcceptSet) Has(f Form) bool {
	return s&AcceptSet(f) != 0
}

// With 返回加入 forms 后的集合。
func (s AcceptSet) With(forms ...Form) AcceptSet {
	return s | NewAcceptSet(forms...)
}

// Forms 按固定优先级顺序返回集合中的格式。
func (s AcceptSet) Forms() []Form {
	out := make([]Form, 0, len(formOrder))
	for _, f := range formOrder {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String 返回逗号分隔的格式名，例如 "ip,net,iface"。
func (s AcceptSet) String() string {
	forms := s.Forms()
	names := make([]string, len(forms))
	for i, f := range forms {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// InterfaceMode 决定 iface 格式中非零主机位的处理策略。
type InterfaceMode uint8

const (
	// IfaceIP 丢弃掩码，视为全位宽地址。
	IfaceIP InterfaceMode = iota
	// IfaceNet 清零主机位，视为规范网络。
	IfaceNet
	// IfaceComplain 主机位非零时该格式失败。
	IfaceComplain
)

// String 返回模式名。
func (m InterfaceMode) String() string {
	switch m {
	case IfaceIP:
		return "ip"
	case IfaceNet:
		return "net"
	case IfaceComplain:
		return "complain"
	default:
		return fmt.Sprintf("InterfaceMode(%d)", uint8(m))
	}
}

// ParseInterfaceMode 解析接口模式名，支持别名：net|n、complain|c。
func ParseInterfaceMode(s string) (InterfaceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ip":
		return IfaceIP, nil
	case "net", "n":
		return IfaceNet, nil
	case "complain", "c":
		return IfaceComplain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterfaceMode, s)
	}
}

// Classify 按 accept 的固定优先级依次尝试各格式，返回第一个成功的结果及其格式。
//
// iface 格式按 mode 处置主机位：IfaceIP 返回全位宽地址，IfaceNet 返回规范网络，
// IfaceComplain 使该格式失败。没有格式成功时返回的错误可用 errors.Is 区分：
// 语法错误（[ErrInvalidAddress]、[ErrInvalidPrefix]、[ErrInvalidMask]）、
// 主机位非零（[ErrHostBitsSet]）和格式未被接受（[ErrNotAccepted]）。
func Classify(token string, accept AcceptSet, mode InterfaceMode) (Network, Form, error) {
	addrPart, suffix, slashed := strings.Cut(token, "/")
	a, err := ParseAddr(addrPart)
	if err != nil {
		return Network{}, 0, err
	}
	if !slashed {
		if accept.Has(FormIP) {
			return HostNetwork(a), FormIP, nil
		}
		return Network{}, 0, ErrNotAccepted
	}

	// 斜杠后为十进制时是 net 语法，否则按点分掩码（oldnet 语法）解析
	syntax := FormNet
	var prefix int
	if isDecimal(suffix) {
		prefix, err = parsePrefixLen(suffix, a.BitLen())
	} else {
		syntax = FormOldnet
		if a.Version() != V4 {
			return Network{}, 0, ErrInvalidMask
		}
		prefix, err = maskToPrefix(suffix)
	}
	if err != nil {
		return Network{}, 0, err
	}
	n := Network{addr: a, prefix: uint8(prefix)}
	hostBits := n.HostBitsSet()

	failure := ErrNotAccepted
	for _, f := range formOrder {
		if !accept.Has(f) {
			continue
		}
		switch f {
		case FormNet, FormOldnet:
			if f != syntax {
				continue
			}
			if !hostBits {
				return n, f, nil
			}
			failure = ErrHostBitsSet
		case FormIface:
			if !hostBits {
				return n, f, nil
			}
			switch mode {
			case IfaceIP:
				return n.AsHost(), f, nil
			case IfaceNet:
				return n.Canonical(), f, nil
			default:
				failure = ErrHostBitsSet
			}
		}
	}
	return Network{}, 0, failure
}
