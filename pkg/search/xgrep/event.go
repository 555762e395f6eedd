package xgrep

import (
	"fmt"

	"github.com/ossobv/ipgrep/pkg/search/xscan"
)

// EventKind 是输出事件的类型。
type EventKind uint8

const (
	// EventMatch 匹配行，Items 为命中的字面量。
	EventMatch EventKind = iota + 1
	// EventContext 上下文行。
	EventContext
	// EventSeparator 上下文分组之间的分隔。
	EventSeparator
	// EventSummary 流结束，Summary 非 nil。
	EventSummary
)

// String 返回事件类型名。
func (k EventKind) String() string {
	switch k {
	case EventMatch:
		return "match"
	case EventContext:
		return "context"
	case EventSeparator:
		return "separator"
	case EventSummary:
		return "summary"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event 是一个输入流产生的输出事件。
//
// Text 和 Items 只在 Handle 调用期间有效。
type Event struct {
	Kind    EventKind
	Source  string
	Number  int
	Text    []byte
	Items   []xscan.Item
	Summary *Summary
}

// Handler 接收输出事件。返回错误会终止搜索（例如标准输出已关闭）。
type Handler interface {
	Handle(ev Event) error
}

// HandlerFunc 把普通函数适配为 Handler。
type HandlerFunc func(ev Event) error

// Handle 调用 f(ev)。
func (f HandlerFunc) Handle(ev Event) error {
	return f(ev)
}

// Summary 是单个输入流的搜索结果。
type Summary struct {
	Name string
	// Lines 已读取的行数。
	Lines int
	// Matches 匹配行数。
	Matches int
	// Items 匹配行中命中的字面量数。
	Items int
	// Candidates 词法候选数，包括分类失败的。
	Candidates int
	// Err 打开或读取失败的原因；已读取部分的结果仍然有效。
	Err error
}

// Matched 报告是否至少有一行匹配。
func (s Summary) Matched() bool {
	return s.Matches > 0
}

// recorder 缓存事件供稍后按序回放，复制所有只在回调期间有效的数据。
type recorder struct {
	events []Event
}

func (r *recorder) Handle(ev Event) error {
	ev.Text = append([]byte(nil), ev.Text...)
	ev.Items = append([]xscan.Item(nil), ev.Items...)
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) replay(h Handler) error {
	for _, ev := range r.events {
		if err := h.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}
