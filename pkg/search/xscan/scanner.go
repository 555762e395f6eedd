package xscan

import (
	"fmt"

	"github.com/ossobv/ipgrep/pkg/util/xlru"
	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// Item 是成功分类的 haystack 字面量。
type Item struct {
	Span
	Network xnet.Network
	Form    xnet.Form
}

// literal 是分类结果，作为缓存值。
type literal struct {
	network xnet.Network
	form    xnet.Form
	err     error
}

// Scanner 从文本行中提取并分类地址字面量。
// 创建后不可变（缓存除外，缓存自身并发安全），可在多个 worker 间共享。
type Scanner struct {
	accept xnet.AcceptSet
	mode   xnet.InterfaceMode
	v4     bool
	v6     bool
	cache  *xlru.Cache[string, literal]
}

// Option 定义 Scanner 的配置选项。
type Option func(*options)

type options struct {
	accept    xnet.AcceptSet
	mode      xnet.InterfaceMode
	v4, v6    bool
	cacheSize int
}

// WithAccept 设置接受的字面量格式，默认 [xnet.DefaultAccept]。
func WithAccept(accept xnet.AcceptSet) Option {
	return func(o *options) {
		if accept != 0 {
			o.accept = accept
		}
	}
}

// WithInterfaceMode 设置 iface 格式主机位的处置方式，默认 [xnet.IfaceIP]。
func WithInterfaceMode(mode xnet.InterfaceMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithVersions 限定要报告的地址族。不需要的地址族在分类前即被丢弃。
func WithVersions(v4, v6 bool) Option {
	return func(o *options) {
		o.v4, o.v6 = v4, v6
	}
}

// WithCacheSize 为分类结果启用 LRU 缓存，size <= 0 表示不缓存。
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// New 创建 Scanner。
func New(opts ...Option) (*Scanner, error) {
	o := options{accept: xnet.DefaultAccept, mode: xnet.IfaceIP, v4: true, v6: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	s := &Scanner{accept: o.accept, mode: o.mode, v4: o.v4, v6: o.v6}
	if o.cacheSize > 0 {
		cache, err := xlru.New[string, literal](xlru.Config{Size: o.cacheSize})
		if err != nil {
			return nil, fmt.Errorf("xscan: create cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Accept 返回接受的格式集合。
func (s *Scanner) Accept() xnet.AcceptSet {
	return s.accept
}

// InterfaceMode 返回接口模式。
func (s *Scanner) InterfaceMode() xnet.InterfaceMode {
	return s.mode
}

// CacheStats 返回分类缓存的命中统计；未启用缓存时为零值。
func (s *Scanner) CacheStats() xlru.Stats {
	return s.cache.Stats()
}

// AppendCandidates 把 line 中的候选 span 按从左到右的顺序追加到 dst，不做分类。
func (s *Scanner) AppendCandidates(dst []Span, line []byte) []Span {
	if !MayContain(line) {
		return dst
	}
	lx := lexer{line: line, masks: s.accept.Has(xnet.FormOldnet)}
	for {
		span, ok := lx.next()
		if !ok {
			return dst
		}
		if s.wants(span.Version) {
			dst = append(dst, span)
		}
	}
}

// AppendItems 把 line 中成功分类的字面量追加到 dst。
//
// 分类失败的候选不是错误，直接丢弃；onReject 非 nil 时会收到这些候选及失败原因，
// 供诊断使用（例如 complain 模式下报告主机位非零的接口地址）。
func (s *Scanner) AppendItems(dst []Item, line []byte, onReject func(Span, error)) []Item {
	if !MayContain(line) {
		return dst
	}
	lx := lexer{line: line, masks: s.accept.Has(xnet.FormOldnet)}
	for {
		span, ok := lx.next()
		if !ok {
			return dst
		}
		if !s.wants(span.Version) {
			continue
		}
		lit := s.classify(span.Text(line))
		if lit.err != nil {
			if onReject != nil {
				onReject(span, lit.err)
			}
			continue
		}
		dst = append(dst, Item{Span: span, Network: lit.network, Form: lit.form})
	}
}

func (s *Scanner) wants(v xnet.Version) bool {
	return (v == xnet.V4 && s.v4) || (v == xnet.V6 && s.v6)
}

func (s *Scanner) classify(tok []byte) literal {
	key := string(tok)
	if lit, ok := s.cache.Get(key); ok {
		return lit
	}
	n, form, err := xnet.Classify(key, s.accept, s.mode)
	lit := literal{network: n, form: form, err: err}
	s.cache.Set(key, lit)
	return lit
}
