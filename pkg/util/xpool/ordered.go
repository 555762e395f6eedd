package xpool

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// maxWorkers worker 数量上限。
const maxWorkers = 1 << 16

type result[T any] struct {
	value T
	err   error
}

// Ordered 用 workers 个 goroutine 执行 work(ctx, 0..n-1)，并按下标顺序调用 emit。
//
// emit 在调用方 goroutine 中串行执行，不需要额外同步。
// 参数错误时返回 [ErrNilContext]、[ErrNilHandler] 或 [ErrInvalidWorkers]。
func Ordered[T any](
	parent context.Context,
	workers, n int,
	work func(ctx context.Context, i int) (T, error),
	emit func(i int, value T, err error) error,
	opts ...Option,
) error {
	if parent == nil {
		return ErrNilContext
	}
	if work == nil || emit == nil {
		return ErrNilHandler
	}
	if workers < 1 || workers > maxWorkers {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, workers)
	}
	if n <= 0 {
		return nil
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	slots := make([]chan result[T], n)
	for i := range slots {
		slots[i] = make(chan result[T], 1)
	}
	// 已派发未交付的任务数上限
	window := make(chan struct{}, 2*workers)

	g.Go(func() error {
		var tasks errgroup.Group
		tasks.SetLimit(workers)
		defer func() { _ = tasks.Wait() }()
		for i := range n {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case window <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			tasks.Go(func() error {
				v, err := runTask(gctx, o, i, work)
				slots[i] <- result[T]{value: v, err: err}
				return nil
			})
		}
		return nil
	})

	var emitErr error
	for i := range n {
		var r result[T]
		select {
		case r = <-slots[i]:
		case <-gctx.Done():
			cancel()
			_ = g.Wait()
			if err := parent.Err(); err != nil {
				return err
			}
			return gctx.Err()
		}
		<-window
		if emitErr = emit(i, r.value, r.err); emitErr != nil {
			break
		}
	}
	cancel()
	_ = g.Wait()
	if emitErr == nil {
		return parent.Err()
	}
	return emitErr
}

// runTask 执行单个任务并把 panic 转换为错误。
func runTask[T any](ctx context.Context, o options, i int, work func(context.Context, int) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("xpool: task panic recovered",
				"name", o.name,
				"index", i,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()
	return work(ctx, i)
}
