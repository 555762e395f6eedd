package xpool

import "log/slog"

// Option 定义 Ordered 可选配置函数类型。
type Option func(*options)

type options struct {
	logger *slog.Logger
	name   string
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
	}
}

// WithLogger 设置记录 panic 的日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithName 设置执行器名称，用于在日志中区分来源。
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
