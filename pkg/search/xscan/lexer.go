package xscan

import (
	"bytes"

	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// maxLiteralLen 是不带后缀的最长地址文本：
// "ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255"。
const maxLiteralLen = 45

// Span 是行内候选字面量的字节区间 [Start, End)，Version 是按字符类推断的地址族。
type Span struct {
	Start   int
	End     int
	Version xnet.Version
}

// Text 返回 span 在 line 中对应的字节。
func (s Span) Text(line []byte) []byte {
	return line[s.Start:s.End]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isRunByte 报告 c 是否可以出现在地址主体中。
func isRunByte(c byte) bool {
	return isHex(c) || c == '.' || c == ':'
}

// followedByBoundary 报告 line[i] 是否为行尾或非字母数字字符。
func followedByBoundary(line []byte, i int) bool {
	return i >= len(line) || !isAlnum(line[i])
}

// MayContain 是行级预过滤：只有出现 "数字.数字"，或 ":" 后接十六进制数字或 ":" 时，
// 行内才可能存在地址字面量。
func MayContain(line []byte) bool {
	for i := 0; i < len(line); {
		k := bytes.IndexAny(line[i:], ".:")
		if k < 0 {
			return false
		}
		k += i
		if k+1 < len(line) {
			next := line[k+1]
			if line[k] == '.' {
				if k > 0 && isDigit(line[k-1]) && isDigit(next) {
					return true
				}
			} else if isHex(next) || next == ':' {
				return true
			}
		}
		i = k + 1
	}
	return false
}

// lexer 在一行内按从左到右的顺序产出互不重叠的候选 span。
type lexer struct {
	line  []byte
	pos   int
	masks bool // 是否把 "/a.b.c.d" 掩码后缀并入候选
}

// next 返回下一个候选；没有更多候选时 ok 为 false。
func (l *lexer) next() (span Span, ok bool) {
	line, n := l.line, len(l.line)
	for l.pos < n {
		i := l.pos
		c := line[i]
		if !isHex(c) && c != ':' {
			l.pos++
			continue
		}
		if i > 0 && isAlnum(line[i-1]) {
			// 嵌在单词中：跳过紧随的数字/点，":" 作为分隔符单独跳过
			if c == ':' {
				l.pos++
				continue
			}
			for l.pos < n && (isHex(line[l.pos]) || line[l.pos] == '.') {
				l.pos++
			}
			continue
		}

		j := i
		for j < n && isRunByte(line[j]) {
			j++
		}
		run := line[i:j]
		colon := bytes.IndexByte(run, ':')
		switch {
		case colon < 0:
			span, ok = l.v4(i, j, false)
		case colon > 0 && isDotted(run[:colon]):
			span, ok = l.v4(i, i+colon, true)
		default:
			span, ok = l.v6(i, j)
		}
		if ok {
			return span, true
		}
	}
	return Span{}, false
}

// isDotted 报告 b 是否只由数字和点组成且至少含一个点。
func isDotted(b []byte) bool {
	dots := 0
	for _, c := range b {
		switch {
		case c == '.':
			dots++
		case !isDigit(c):
			return false
		}
	}
	return dots > 0
}

// v4 处理从 i 开始、在 j 结束的 IPv4 主体。port 表示 line[j] 是 ":"。
func (l *lexer) v4(i, j int, port bool) (Span, bool) {
	line := l.line
	end := j
	for end > i && line[end-1] == '.' {
		end--
	}
	trimmed := end < j
	body := line[i:end]
	l.pos = j

	if !isDotted(body) || bytes.Count(body, []byte{'.'}) != 3 {
		return Span{}, false
	}

	if port {
		// 地址后的 ":" 不属于字面量；紧随的数字是端口，一并跳过
		k := j + 1
		for k < len(line) && isDigit(line[k]) {
			k++
		}
		l.pos = k
		return Span{Start: i, End: end, Version: xnet.V4}, true
	}

	if trimmed {
		if !followedByBoundary(line, j) {
			return Span{}, false
		}
		return Span{Start: i, End: end, Version: xnet.V4}, true
	}

	end = l.suffix(end, true)
	if end > l.pos {
		l.pos = end
	}
	if !followedByBoundary(line, end) {
		return Span{}, false
	}
	return Span{Start: i, End: end, Version: xnet.V4}, true
}

// v6 处理从 i 开始、在 j 结束的含 ":" 主体。
func (l *lexer) v6(i, j int) (Span, bool) {
	line := l.line
	l.pos = j
	end := j
	if end-i >= 2 && line[end-1] == ':' && line[end-2] != ':' {
		end--
	}
	for end > i && line[end-1] == '.' {
		end--
	}
	trimmed := end < j
	if trimmed && !followedByBoundary(line, j) {
		return Span{}, false
	}
	if !validV6Shape(line[i:end]) {
		return Span{}, false
	}
	if !trimmed {
		end = l.suffix(end, false)
		if end > l.pos {
			l.pos = end
		}
		if !followedByBoundary(line, end) {
			return Span{}, false
		}
	}
	return Span{Start: i, End: end, Version: xnet.V6}, true
}

// validV6Shape 做不调用解析器的快速形状检查：
// 至少两个 ":"，点只能出现在最后一个 ":" 之后且恰好三个，总长不超过上限。
func validV6Shape(b []byte) bool {
	if len(b) > maxLiteralLen {
		return false
	}
	colons := bytes.Count(b, []byte{':'})
	if colons < 2 {
		return false
	}
	firstDot := bytes.IndexByte(b, '.')
	if firstDot < 0 {
		return true
	}
	tail := b[bytes.LastIndexByte(b, ':')+1:]
	return firstDot > bytes.LastIndexByte(b, ':') && bytes.Count(tail, []byte{'.'}) == 3 && isDotted(tail)
}

// suffix 在 line[end] 为 "/" 时尝试并入前缀长度或点分掩码，返回新的结束位置。
//
// 掩码后缀只在 masks 开启时并入；否则地址单独成为候选，
// 扫描从 "/" 之后继续，掩码本身可作为下一个候选。
func (l *lexer) suffix(end int, v4 bool) int {
	line, n := l.line, len(l.line)
	if end >= n || line[end] != '/' {
		return end
	}
	k := end + 1
	m := k
	for m < n && isDigit(line[m]) {
		m++
	}
	if m == k {
		return end
	}
	if m+1 < n && line[m] == '.' && isDigit(line[m+1]) {
		if !v4 || !l.masks {
			l.pos = end + 1
			return end
		}
		for m < n && (isDigit(line[m]) || line[m] == '.') {
			m++
		}
		stop := m
		for m > k && line[m-1] == '.' {
			m--
		}
		if m < stop && !followedByBoundary(line, stop) {
			l.pos = stop
			return stop
		}
		return m
	}
	return m
}
