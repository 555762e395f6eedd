package xgrep

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ossobv/ipgrep/pkg/observability/xlog"
	"github.com/ossobv/ipgrep/pkg/observability/xmetrics"
	"github.com/ossobv/ipgrep/pkg/search/xmatch"
	"github.com/ossobv/ipgrep/pkg/search/xscan"
	"github.com/ossobv/ipgrep/pkg/search/xwindow"
	"github.com/ossobv/ipgrep/pkg/util/xlru"
	"github.com/ossobv/ipgrep/pkg/util/xnet"
	"github.com/ossobv/ipgrep/pkg/util/xpool"
)

// ctxCheckLines 每读取这么多行检查一次取消。
const ctxCheckLines = 256

// Engine 按 Config 搜索输入流。创建后只读，可并发使用。
type Engine struct {
	cfg      Config
	scanner  *xscan.Scanner
	matcher  *xmatch.Matcher
	logger   xlog.Logger
	observer xmetrics.Observer
	complain bool
}

// New 创建搜索引擎。
//
// 扫描器只报告 needle 中出现过的地址族，其他族的字面量在分类前即被丢弃。
func New(cfg Config) (*Engine, error) {
	if cfg.Needles == nil || cfg.Needles.Len() == 0 {
		return nil, ErrNoNeedles
	}
	sc, err := xscan.New(
		xscan.WithAccept(cfg.Accept),
		xscan.WithInterfaceMode(cfg.InterfaceMode),
		xscan.WithVersions(cfg.Needles.HasVersion(xnet.V4), cfg.Needles.HasVersion(xnet.V6)),
		xscan.WithCacheSize(cfg.CacheSize),
	)
	if err != nil {
		return nil, fmt.Errorf("xgrep: %w", err)
	}
	e := &Engine{
		cfg:      cfg,
		scanner:  sc,
		matcher:  xmatch.New(cfg.Mode, cfg.Needles),
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if e.logger == nil {
		e.logger = xlog.Default()
	}
	if e.observer == nil {
		e.observer = xmetrics.NoopObserver{}
	}
	e.complain = cfg.InterfaceMode == xnet.IfaceComplain && sc.Accept().Has(xnet.FormIface)
	return e, nil
}

// CacheStats 返回分类缓存的命中统计。
func (e *Engine) CacheStats() xlru.Stats {
	return e.scanner.CacheStats()
}

// Search 搜索单个输入流，把事件按行序交给 h，最后发送 [EventSummary]。
//
// 打开或读取失败记录在 Summary.Err 中，不作为返回错误；
// 返回错误仅来自 h 或 ctx，此时不再发送 [EventSummary]。
func (e *Engine) Search(ctx context.Context, src Source, h Handler) (Summary, error) {
	if h == nil {
		return Summary{Name: src.Name}, ErrNilHandler
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := xmetrics.Start(ctx, e.observer, xmetrics.SpanOptions{
		Component: "xgrep",
		Operation: "search",
		Attrs:     []xmetrics.Attr{xmetrics.String("source", src.Name)},
	})
	sum, err := e.search(ctx, src, h)
	result := xmetrics.Result{
		Err:   err,
		Attrs: []xmetrics.Attr{xmetrics.Bool("matched", sum.Matched())},
		Counts: []xmetrics.Count{
			{Name: MetricLines, Value: int64(sum.Lines)},
			{Name: MetricCandidates, Value: int64(sum.Candidates)},
			{Name: MetricItems, Value: int64(sum.Items)},
			{Name: MetricMatches, Value: int64(sum.Matches)},
		},
	}
	if result.Err == nil {
		result.Err = sum.Err
	}
	span.End(result)
	return sum, err
}

func (e *Engine) search(ctx context.Context, src Source, h Handler) (Summary, error) {
	sum := Summary{Name: src.Name}
	if src.Open == nil {
		sum.Err = ErrNilOpen
	} else if rc, err := src.Open(); err != nil {
		sum.Err = err
	} else {
		serr := e.scan(ctx, rc, &sum, h)
		if cerr := rc.Close(); cerr != nil && sum.Err == nil {
			sum.Err = cerr
		}
		if serr != nil {
			return sum, serr
		}
	}
	if err := h.Handle(Event{Kind: EventSummary, Source: sum.Name, Summary: &sum}); err != nil {
		return sum, err
	}
	return sum, nil
}

// scan 逐行扫描 r。读取错误写入 sum.Err，返回值只来自 h 或 ctx。
func (e *Engine) scan(ctx context.Context, r io.Reader, sum *Summary, h Handler) error {
	var herr error
	win := xwindow.New(e.cfg.Before, e.cfg.After, func(kind xwindow.Kind, line xwindow.Line) {
		if herr != nil {
			return
		}
		herr = h.Handle(Event{
			Kind:   eventKind(kind),
			Source: sum.Name,
			Number: line.Number,
			Text:   line.Text,
			Items:  line.Items,
		})
	})
	defer win.Close()

	var (
		line  []byte
		items []xscan.Item
		hits  []xscan.Item
	)
	onReject := func(span xscan.Span, err error) {
		sum.Candidates++
		if e.complain && errors.Is(err, xnet.ErrHostBitsSet) {
			e.logger.Warn(ctx, "interface address has host bits set",
				xlog.Source(sum.Name),
				xlog.Line(sum.Lines),
				xlog.Literal(span.Text(line)),
			)
		}
	}

	lr := newLineReader(r)
	for {
		if sum.Lines%ctxCheckLines == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		var err error
		if line, err = lr.next(); err != nil {
			if !errors.Is(err, io.EOF) {
				sum.Err = err
			}
			return nil
		}
		sum.Lines++

		items = e.scanner.AppendItems(items[:0], line, onReject)
		sum.Candidates += len(items)
		hits = hits[:0]
		for _, it := range items {
			if e.matcher.Any(it.Network) {
				hits = append(hits, it)
			}
		}
		matched := len(hits) > 0
		win.Push(xwindow.Line{Number: sum.Lines, Text: line, Items: hits}, matched)
		if herr != nil {
			return herr
		}
		if matched {
			sum.Matches++
			sum.Items += len(hits)
			if e.cfg.FirstMatch {
				return nil
			}
		}
	}
}

// Run 依次搜索 sources，按给定顺序把事件交给 h，返回每个已搜索流的 Summary。
//
// Workers 大于 1 时多个流并行搜索，事件先在各自的缓冲中累积，
// 再按流的顺序整体回放，因此输出与顺序搜索完全一致。
// StopOnMatch 时，第一个匹配的流之后的流不再报告。
func (e *Engine) Run(ctx context.Context, sources []Source, h Handler) ([]Summary, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if e.cfg.Workers < 2 || len(sources) < 2 {
		return e.runSequential(ctx, sources, h)
	}
	return e.runParallel(ctx, sources, h)
}

func (e *Engine) runSequential(ctx context.Context, sources []Source, h Handler) ([]Summary, error) {
	sums := make([]Summary, 0, len(sources))
	for _, src := range sources {
		sum, err := e.Search(ctx, src, h)
		sums = append(sums, sum)
		if err != nil {
			return sums, err
		}
		if e.cfg.StopOnMatch && sum.Matched() {
			break
		}
	}
	return sums, nil
}

type outcome struct {
	rec *recorder
	sum Summary
}

func (e *Engine) runParallel(ctx context.Context, sources []Source, h Handler) ([]Summary, error) {
	sums := make([]Summary, 0, len(sources))
	err := xpool.Ordered(ctx, min(e.cfg.Workers, len(sources)), len(sources),
		func(ctx context.Context, i int) (outcome, error) {
			rec := &recorder{}
			sum, err := e.Search(ctx, sources[i], rec)
			return outcome{rec: rec, sum: sum}, err
		},
		func(_ int, out outcome, err error) error {
			if err != nil {
				return err
			}
			if err := out.rec.replay(h); err != nil {
				return err
			}
			sums = append(sums, out.sum)
			if e.cfg.StopOnMatch && out.sum.Matched() {
				return errStop
			}
			return nil
		},
		xpool.WithName("xgrep"),
		xpool.WithLogger(xlog.Slog(e.logger)),
	)
	if errors.Is(err, errStop) {
		err = nil
	}
	return sums, err
}

func eventKind(k xwindow.Kind) EventKind {
	switch k {
	case xwindow.KindContext:
		return EventContext
	case xwindow.KindSeparator:
		return EventSeparator
	default:
		return EventMatch
	}
}
