package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口。
//
// 所有方法都接收 context.Context，属性只接受 slog.Attr，避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带固定属性的派生 Logger，派生 Logger 与父级共享级别。
	With(attrs ...slog.Attr) Logger
}

// Leveler 级别控制接口，与 Logger 分离以保持核心接口最小。
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level

	// Enabled 报告指定级别是否启用，用于在构造昂贵属性前短路。
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合 Logger 与 Leveler，由 [Builder.Build] 返回。
type LoggerWithLevel interface {
	Logger
	Leveler
}
