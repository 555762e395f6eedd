package xwindow

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// run 对 n 行输入执行窗口，matches 中的行号视为匹配，返回 grep 风格的输出序列。
func run(before, after, n int, matches ...int) []string {
	var out []string
	w := New(before, after, func(kind Kind, line Line) {
		switch kind {
		case KindMatch:
			out = append(out, string(line.Text)+":")
		case KindContext:
			out = append(out, string(line.Text)+"-")
		case KindSeparator:
			out = append(out, "--")
		}
	})
	hit := make(map[int]bool, len(matches))
	for _, m := range matches {
		hit[m] = true
	}
	buf := make([]byte, 0, 8)
	for i := 1; i <= n; i++ {
		// 复用同一块缓冲，验证窗口自行保存了 before 行
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		w.Push(Line{Number: i, Text: buf}, hit[i])
	}
	w.Close()
	return out
}

// =============================================================================
// 上下文与分隔符
// =============================================================================

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		before  int
		after   int
		n       int
		matches []int
		want    []string
	}{
		{
			name: "separated groups", before: 1, after: 1, n: 12, matches: []int{3, 7},
			want: []string{"2-", "3:", "4-", "--", "6-", "7:", "8-"},
		},
		{
			name: "overlapping windows merge", before: 1, after: 1, n: 12, matches: []int{3, 5},
			want: []string{"2-", "3:", "4-", "5:", "6-"},
		},
		{
			name: "adjacent windows merge", before: 1, after: 1, n: 12, matches: []int{3, 6},
			want: []string{"2-", "3:", "4-", "5-", "6:", "7-"},
		},
		{
			name: "no context no separator", n: 12, matches: []int{3, 7},
			want: []string{"3:", "7:"},
		},
		{
			name: "after only", after: 2, n: 12, matches: []int{1, 10},
			want: []string{"1:", "2-", "3-", "--", "10:", "11-", "12-"},
		},
		{
			name: "before clipped at start", before: 3, n: 5, matches: []int{2},
			want: []string{"1-", "2:"},
		},
		{
			name: "before ring wraps", before: 2, n: 12, matches: []int{10},
			want: []string{"8-", "9-", "10:"},
		},
		{
			name: "after clipped at end", after: 3, n: 5, matches: []int{4},
			want: []string{"4:", "5-"},
		},
		{
			name: "consecutive matches", before: 2, after: 2, n: 6, matches: []int{3, 4},
			want: []string{"1-", "2-", "3:", "4:", "5-", "6-"},
		},
		{
			name: "match resets owed after", after: 1, n: 8, matches: []int{2, 3, 6},
			want: []string{"2:", "3:", "4-", "--", "6:", "7-"},
		},
		{
			name: "no matches", before: 2, after: 2, n: 5,
			want: nil,
		},
		{
			name: "negative counts", before: -1, after: -1, n: 3, matches: []int{2},
			want: []string{"2:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.before, tt.after, tt.n, tt.matches...))
		})
	}
}

func TestWindow_ItemsOnMatchOnly(t *testing.T) {
	var kinds []Kind
	w := New(1, 1, func(kind Kind, line Line) {
		kinds = append(kinds, kind)
		if kind != KindMatch {
			assert.Nil(t, line.Items)
		}
	})
	w.Push(Line{Number: 1, Text: []byte("a")}, false)
	w.Push(Line{Number: 2, Text: []byte("b")}, true)
	w.Push(Line{Number: 3, Text: []byte("c")}, false)
	assert.Equal(t, []Kind{KindContext, KindMatch, KindContext}, kinds)
}

func TestWindow_CloseResets(t *testing.T) {
	var out []string
	w := New(1, 1, func(kind Kind, line Line) {
		out = append(out, fmt.Sprintf("%s %d", kind, line.Number))
	})
	w.Push(Line{Number: 1}, true)
	w.Close()
	w.Push(Line{Number: 5}, true)
	assert.Equal(t, []string{"match 1", "match 5"}, out)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "match", KindMatch.String())
	assert.Equal(t, "context", KindContext.String())
	assert.Equal(t, "separator", KindSeparator.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

// =============================================================================
// 基准测试
// =============================================================================

func BenchmarkWindow_Push(b *testing.B) {
	w := New(2, 2, func(Kind, Line) {})
	text := []byte("Oct 19 10:00:01 gw sshd[1234]: session opened")
	n := 0
	for b.Loop() {
		n++
		w.Push(Line{Number: n, Text: text}, n%50 == 0)
	}
}
