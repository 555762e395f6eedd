// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xmetrics: 观测跨度与计数器（OpenTelemetry）
//   - xrotate: 日志文件轮转
//
// 日志只写标准错误或文件，标准输出只承载搜索结果。
package observability
