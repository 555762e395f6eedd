package xpool

import "errors"

var (
	// ErrNilHandler 表示 work 或 emit 参数为 nil。
	ErrNilHandler = errors.New("xpool: handler cannot be nil")

	// ErrInvalidWorkers 表示 worker 数量无效。
	ErrInvalidWorkers = errors.New("xpool: invalid worker count")

	// ErrNilContext 表示 context 参数为 nil。
	ErrNilContext = errors.New("xpool: nil context")

	// ErrTaskPanic 表示任务执行时发生 panic。
	ErrTaskPanic = errors.New("xpool: task panicked")
)
