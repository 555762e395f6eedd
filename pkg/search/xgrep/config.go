package xgrep

import (
	"github.com/ossobv/ipgrep/pkg/observability/xlog"
	"github.com/ossobv/ipgrep/pkg/observability/xmetrics"
	"github.com/ossobv/ipgrep/pkg/search/xmatch"
	"github.com/ossobv/ipgrep/pkg/search/xneedle"
	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// 计数器名称，在每个流结束时累加。
const (
	MetricLines      = "ipgrep.lines"
	MetricCandidates = "ipgrep.candidates"
	MetricItems      = "ipgrep.items"
	MetricMatches    = "ipgrep.matches"
)

// Config 是一次搜索的只读配置，由所有 worker 共享。
type Config struct {
	// Needles 必填。
	Needles *xneedle.Set
	Mode    xmatch.Mode
	// Accept 为 0 时使用 [xnet.DefaultAccept]。
	Accept        xnet.AcceptSet
	InterfaceMode xnet.InterfaceMode

	// Before、After 是上下文行数。
	Before int
	After  int

	// FirstMatch 读到第一条匹配行后停止读取该流（-l、-q）。
	FirstMatch bool
	// StopOnMatch 任一流匹配后不再搜索后续流（-q）。
	StopOnMatch bool

	// Workers 并行搜索的流数量，小于 2 时顺序搜索。
	Workers int
	// CacheSize 是分类缓存容量，0 表示不缓存。
	CacheSize int

	// Logger 为 nil 时使用 [xlog.Default]。
	Logger xlog.Logger
	// Observer 为 nil 时不记录观测数据。
	Observer xmetrics.Observer
}
