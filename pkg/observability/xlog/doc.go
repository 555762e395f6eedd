// Package xlog 基于 log/slog 的结构化诊断日志。
//
// ipgrep 的 stdout 只承载搜索结果，所有诊断（complain 模式下被丢弃的接口地址、
// 目录环警告、--stats 汇总）都通过本包写到 stderr 或 --log-file 指定的轮转文件。
//
// # 创建 Logger
//
// 使用 Builder 模式，遇到第一个配置错误后后续 Set 操作被跳过，错误在 Build 时返回：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("warn").
//		SetFormat("json").
//		SetRotation("/var/log/ipgrep.log").
//		Build()
//	defer cleanup()
//
// [Builder.SetReplaceAttr] 可以改写或删除属性，例如去掉时间戳使输出适合终端。
//
// # 全局 Logger
//
// [Default] 惰性创建（stderr、Warn 级别、text 格式），[SetDefault] 替换它。
// [Debug]、[Info]、[Warn]、[Error] 是使用全局 Logger 的便利函数。
//
// # 便捷属性
//
// 通用：[Err]、[Duration]、[Component]、[Operation]、[Count]。
// 搜索相关：[Source]（输入流名）、[Line]（行号）、[Literal]（原始字面量文本）。
package xlog
