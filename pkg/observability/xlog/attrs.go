package xlog

import (
	"log/slog"
	"time"
)

// 标准属性 key
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"

	// KeySource 输入流名（文件路径或 "(stdin)"）
	KeySource = "source"
	// KeyLine 1 起始的行号
	KeyLine = "line"
	// KeyLiteral 行内原始字面量文本
	KeyLiteral = "literal"
)

// Err 创建错误属性；err 为 nil 时返回空属性，slog 会忽略它。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5s"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性。
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Source 创建输入流名属性。
func Source(name string) slog.Attr {
	return slog.String(KeySource, name)
}

// Line 创建行号属性。
func Line(n int) slog.Attr {
	return slog.Int(KeyLine, n)
}

// Literal 创建字面量属性。
func Literal(text []byte) slog.Attr {
	return slog.String(KeyLiteral, string(text))
}
