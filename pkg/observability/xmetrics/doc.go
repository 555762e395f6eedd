// Package xmetrics 提供统一的观测接口（metrics + tracing）。
//
// 业务代码只依赖 [Observer]/[Span]；默认实现基于 OpenTelemetry，
// 未配置 SDK 时使用全局 no-op provider，开销可以忽略。
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xgrep",
//		Operation: "search",
//		Attrs:     []xmetrics.Attr{xmetrics.String("source", name)},
//	})
//	defer span.End(xmetrics.Result{Err: err, Counts: counts})
//
// # 指标
//
// 每个跨度记录：
//   - ipgrep.operation.total（属性 component / operation / status）
//   - ipgrep.operation.duration，单位秒
//
// [Result.Counts] 中的每一项累加到同名 Int64Counter，例如 ipgrep.lines、ipgrep.matches。
//
// [Totals] 从 SDK 的 ManualReader 汇总各计数器的总和，供 --stats 输出。
package xmetrics
