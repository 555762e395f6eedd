package xwindow

import (
	"fmt"

	"github.com/ossobv/ipgrep/pkg/search/xscan"
)

// Kind 是窗口输出事件的类型。
type Kind uint8

const (
	// KindMatch 匹配行。
	KindMatch Kind = iota + 1
	// KindContext 上下文行。
	KindContext
	// KindSeparator 分组分隔符，不携带行内容。
	KindSeparator
)

// String 返回事件类型名。
func (k Kind) String() string {
	switch k {
	case KindMatch:
		return "match"
	case KindContext:
		return "context"
	case KindSeparator:
		return "separator"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Line 是一行输入。Number 从 1 开始；Items 仅匹配行非空。
type Line struct {
	Number int
	Text   []byte
	Items  []xscan.Item
}

// Emit 接收窗口输出的事件。
// line.Text 和 line.Items 只在回调期间有效，需要保留时由回调方复制。
type Emit func(kind Kind, line Line)

// Window 是单个输入流的上下文窗口，不是并发安全的。
type Window struct {
	before int
	after  int
	emit   Emit

	ring []Line // 未输出的最近 before 行，环形存放
	head int    // ring 中最旧一行的下标
	size int

	owed int // 仍欠输出的 after 上下文行数
	last int // 最近一次输出的行号，0 表示尚未输出
}

// New 创建上下文窗口。before、after 小于 0 时按 0 处理。
func New(before, after int, emit Emit) *Window {
	before = max(before, 0)
	after = max(after, 0)
	return &Window{
		before: before,
		after:  after,
		emit:   emit,
		ring:   make([]Line, before),
	}
}

// Push 送入下一行。行号必须严格递增。
// matched 为 true 时 line 作为匹配行输出，并带出缓冲中的 before 上下文。
func (w *Window) Push(line Line, matched bool) {
	switch {
	case matched:
		first := line.Number
		if w.size > 0 {
			first = w.ring[w.head].Number
		}
		w.separate(first)
		for i := range w.size {
			w.output(KindContext, w.ring[(w.head+i)%len(w.ring)])
		}
		w.head, w.size = 0, 0
		w.output(KindMatch, line)
		w.owed = w.after
	case w.owed > 0:
		w.separate(line.Number)
		w.output(KindContext, Line{Number: line.Number, Text: line.Text})
		w.owed--
	default:
		w.remember(line)
	}
}

// Close 结束输入流，丢弃未输出的缓冲行。之后可以复用窗口处理新的流。
func (w *Window) Close() {
	w.head, w.size = 0, 0
	w.owed = 0
	w.last = 0
}

// separate 在即将输出的第一行与上次输出不相邻时插入分隔符。
// 没有上下文时 grep 不输出分隔符。
func (w *Window) separate(first int) {
	if w.before == 0 && w.after == 0 {
		return
	}
	if w.last > 0 && first > w.last+1 {
		w.emit(KindSeparator, Line{})
	}
}

func (w *Window) output(kind Kind, line Line) {
	w.emit(kind, line)
	w.last = line.Number
}

// remember 把非匹配行放入 before 环形缓冲，满时覆盖最旧一行。
// 文本被复制到槽位自己的缓冲里，调用方可以复用 line.Text。
func (w *Window) remember(line Line) {
	if w.before == 0 {
		return
	}
	idx := (w.head + w.size) % len(w.ring)
	if w.size == len(w.ring) {
		w.head = (w.head + 1) % len(w.ring)
	} else {
		w.size++
	}
	slot := &w.ring[idx]
	slot.Number = line.Number
	slot.Text = append(slot.Text[:0], line.Text...)
}
