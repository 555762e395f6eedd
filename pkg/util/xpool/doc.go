// Package xpool 提供有界、保序的并发执行器。
//
// [Ordered] 用固定数量的 worker 并发执行 n 个按下标编号的任务，
// 并严格按下标顺序把结果交给 emit：先完成的任务会等待轮到自己。
// 已启动但尚未交付的任务数不超过 worker 数的两倍，缓冲结果占用的内存因此有界。
//
// # 错误语义
//
//   - 单个任务返回的错误随结果一起交给 emit，不影响其他任务
//   - emit 返回错误时停止派发新任务，取消传给任务的 context，
//     等待在途任务退出后原样返回该错误
//   - 任务 panic 被恢复并记录日志（含堆栈），以 [ErrTaskPanic] 作为该任务的错误交付
//   - 父 context 取消时返回 context 错误
//
// Ordered 返回前所有由它启动的 goroutine 都已退出。
package xpool
