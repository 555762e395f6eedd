package xmatch

import (
	"fmt"
	"strings"

	"github.com/ossobv/ipgrep/pkg/search/xneedle"
	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// Mode 是匹配语义。
type Mode uint8

const (
	// Contains 表示 haystack 网络包含 needle。
	Contains Mode = iota
	// Within 表示 haystack 网络位于 needle 之内。
	Within
	// Equals 表示两者规范化后相同。
	Equals
	// Overlaps 表示两者相交。
	Overlaps
)

// String 返回模式名。
func (m Mode) String() string {
	switch m {
	case Contains:
		return "contains"
	case Within:
		return "within"
	case Equals:
		return "equals"
	case Overlaps:
		return "overlaps"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode 解析模式名，支持别名 c、w、e、o。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contains", "c":
		return Contains, nil
	case "within", "w":
		return Within, nil
	case "equals", "e":
		return Equals, nil
	case "overlaps", "o":
		return Overlaps, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Match 判断 needle 与 haystack 字面量 item 在 mode 下是否匹配。
// 版本不同时返回 false。
func Match(mode Mode, needle, item xnet.Network) bool {
	if needle.Version() != item.Version() {
		return false
	}
	return compare(mode, needle, item)
}

// compare 要求两侧版本相同，否则 panic。
func compare(mode Mode, needle, item xnet.Network) bool {
	xnet.MustComparable(needle, item)
	switch mode {
	case Contains:
		return item.Contains(needle)
	case Within:
		return needle.Contains(item)
	case Equals:
		return needle.Equal(item)
	case Overlaps:
		return needle.Overlaps(item)
	default:
		panic(fmt.Sprintf("xmatch: unknown mode %d", uint8(mode)))
	}
}

// Predicate 是对单个 haystack 字面量的判定。
type Predicate func(item xnet.Network) bool

// Not 返回取反后的判定。
func (p Predicate) Not() Predicate {
	return func(item xnet.Network) bool { return !p(item) }
}

// And 返回 p 与 q 同时成立的判定。
func (p Predicate) And(q Predicate) Predicate {
	return func(item xnet.Network) bool { return p(item) && q(item) }
}

// Matcher 把匹配模式绑定到 needle 集合上。不可变，可并发使用。
type Matcher struct {
	mode    Mode
	needles *xneedle.Set
}

// New 创建 Matcher。
func New(mode Mode, needles *xneedle.Set) *Matcher {
	return &Matcher{mode: mode, needles: needles}
}

// Mode 返回匹配模式。
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Any 报告 item 是否与任意 needle 匹配。只与同版本的 needle 比较。
func (m *Matcher) Any(item xnet.Network) bool {
	if !m.needles.MayMatch(item) {
		return false
	}
	for _, n := range m.needles.Networks(item.Version()) {
		if compare(m.mode, n, item) {
			return true
		}
	}
	return false
}

// Predicate 返回 Any 对应的判定。
func (m *Matcher) Predicate() Predicate {
	return m.Any
}
