package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/ossobv/ipgrep/pkg/config/xconf"
	"github.com/ossobv/ipgrep/pkg/observability/xlog"
	"github.com/ossobv/ipgrep/pkg/observability/xmetrics"
	"github.com/ossobv/ipgrep/pkg/search/xgrep"
)

// search 执行搜索并把结果映射为退出码。
func search(ctx context.Context, cmd *cli.Command, o options) error {
	stdout, stderr := cmd.Root().Writer, cmd.Root().ErrWriter

	logger, cleanup, err := newLogger(o.log, stderr, o.stats)
	if err != nil {
		return usagef("%v", err)
	}
	defer func() { _ = cleanup() }()

	var observer xmetrics.Observer = xmetrics.NoopObserver{}
	var reader *sdkmetric.ManualReader
	if o.stats {
		reader = sdkmetric.NewManualReader()
		provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = provider.Shutdown(context.WithoutCancel(ctx)) }()
		if observer, err = xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(provider)); err != nil {
			return err
		}
	}

	engine, err := xgrep.New(xgrep.Config{
		Needles:       o.needles,
		Mode:          o.mode,
		Accept:        o.accept,
		InterfaceMode: o.ifaceMode,
		Before:        o.before,
		After:         o.after,
		FirstMatch:    o.style == styleQuiet || o.style == styleFiles,
		StopOnMatch:   o.style == styleQuiet,
		Workers:       o.workers,
		CacheSize:     o.cacheSize,
		Logger:        logger,
		Observer:      observer,
	})
	if err != nil {
		return err
	}

	sources, err := collectSources(o.haystacks, o.recursion, cmd.Root().Reader, func(path string, err error) {
		fmt.Fprintf(stderr, "ipgrep: %s: %s\n", path, describe(err))
	})
	if err != nil {
		return err
	}
	logger.Debug(ctx, "search started",
		slog.Int("sources", len(sources)),
		slog.String("match", o.mode.String()),
		slog.String("accept", o.accept.String()),
		slog.Int("workers", o.workers),
	)

	started := time.Now()
	p := newPrinter(stdout, stderr, o)
	sums, runErr := engine.Run(ctx, sources, p)
	flushErr := p.Flush()
	if o.stats {
		logStats(context.WithoutCancel(ctx), logger, reader, engine, len(sums), time.Since(started))
	}

	switch {
	case runErr != nil:
		fmt.Fprintf(stderr, "ipgrep: %s\n", describe(runErr))
		return &exitError{code: exitTrouble}
	case flushErr != nil:
		fmt.Fprintf(stderr, "ipgrep: write error: %s\n", describe(flushErr))
		return &exitError{code: exitTrouble}
	case p.failed:
		return &exitError{code: exitTrouble}
	}
	for _, sum := range sums {
		if sum.Matched() {
			return nil
		}
	}
	return &exitError{code: exitNoMatch}
}

// newLogger 构建诊断日志，并设为全局默认。--stats 至少需要 info 级别。
func newLogger(ls xconf.LogSettings, stderr io.Writer, stats bool) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(ls.Level).
		SetFormat(ls.Format).
		SetRotation(ls.File)
	if ls.File == "" && isTerminal(stderr) {
		b.SetReplaceAttr(xlog.OmitTime)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	if stats && logger.GetLevel() > xlog.LevelInfo {
		logger.SetLevel(xlog.LevelInfo)
	}
	xlog.SetDefault(logger)
	return logger, cleanup, nil
}

// logStats 记录计数器总和与缓存命中情况。
func logStats(ctx context.Context, logger xlog.Logger, reader *sdkmetric.ManualReader, engine *xgrep.Engine, streams int, elapsed time.Duration) {
	totals, err := xmetrics.Totals(ctx, reader)
	if err != nil {
		logger.Warn(ctx, "collect statistics failed", xlog.Err(err))
		return
	}
	attrs := []slog.Attr{
		slog.Int("streams", streams),
		xlog.Duration(elapsed),
	}
	for _, name := range slices.Sorted(maps.Keys(totals)) {
		attrs = append(attrs, slog.Int64(name, totals[name]))
	}
	cache := engine.CacheStats()
	attrs = append(attrs,
		slog.Uint64("cache.hits", cache.Hits),
		slog.Uint64("cache.misses", cache.Misses),
	)
	logger.Info(ctx, "search statistics", attrs...)
}
