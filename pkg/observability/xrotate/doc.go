// Package xrotate 提供按大小轮转的日志文件写入器。
//
// [NewLumberjack] 基于 gopkg.in/natefinch/lumberjack.v2，默认配置面向命令行工具：
// 单文件 10MB，保留 3 个备份、7 天，不压缩。写入器并发安全，
// 可直接作为 xlog 的输出目标（--log-file）。
package xrotate
