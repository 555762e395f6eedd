package xneedle

import (
	"fmt"
	"strings"
	"unicode"

	"go4.org/netipx"

	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// Needle 是一个搜索目标：地址（全位宽网络）或网络，附带其原始文本与格式。
type Needle struct {
	Text    string
	Network xnet.Network
	Form    xnet.Form
}

// IsAddr 报告 needle 是否为单个地址。
func (n Needle) IsAddr() bool {
	return n.Network.IsHost()
}

// Set 是不可变的 needle 集合。
type Set struct {
	needles []Needle
	v4      []xnet.Network
	v6      []xnet.Network
	union   *netipx.IPSet
}

// Split 把若干参数按逗号与空白切分为 needle 文本，忽略空元素。
func Split(args ...string) []string {
	var out []string
	for _, arg := range args {
		out = append(out, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return out
}

// Parse 分类 tokens 中的每个 needle 并构建集合。
//
// accept 会额外并入 ip 与 net 格式，mode 与 haystack 使用的接口模式相同。
// 重复的 needle（分类结果相同）只保留第一个。
func Parse(tokens []string, accept xnet.AcceptSet, mode xnet.InterfaceMode) (*Set, error) {
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}
	accept = accept.With(xnet.FormIP, xnet.FormNet)

	s := &Set{}
	seen := make(map[xnet.Network]struct{}, len(tokens))
	var b netipx.IPSetBuilder
	for _, tok := range tokens {
		n, form, err := xnet.Classify(tok, accept, mode)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidNeedle, tok, err)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		s.needles = append(s.needles, Needle{Text: tok, Network: n, Form: form})
		switch n.Version() {
		case xnet.V4:
			s.v4 = append(s.v4, n)
		case xnet.V6:
			s.v6 = append(s.v6, n)
		}
		b.AddRange(n.Range())
	}

	union, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNeedle, err)
	}
	s.union = union
	return s, nil
}

// Len 返回 needle 数量（去重后）。
func (s *Set) Len() int {
	return len(s.needles)
}

// Needles 返回全部 needle 的副本，按输入顺序排列。
func (s *Set) Needles() []Needle {
	out := make([]Needle, len(s.needles))
	copy(out, s.needles)
	return out
}

// Networks 返回指定版本的 needle 网络。返回的切片不得修改。
func (s *Set) Networks(v xnet.Version) []xnet.Network {
	switch v {
	case xnet.V4:
		return s.v4
	case xnet.V6:
		return s.v6
	default:
		return nil
	}
}

// HasVersion 报告集合中是否存在指定版本的 needle。
func (s *Set) HasVersion(v xnet.Version) bool {
	return len(s.Networks(v)) > 0
}

// MayMatch 报告 n 是否与任意 needle 相交。
//
// 四种匹配模式都要求两侧相交，因此返回 false 时可以跳过逐个比较。
func (s *Set) MayMatch(n xnet.Network) bool {
	if !n.IsValid() {
		return false
	}
	return s.union.OverlapsRange(n.Range())
}
