package xgrep

import "errors"

var (
	// ErrNoNeedles 表示 Config.Needles 为空。
	ErrNoNeedles = errors.New("xgrep: no needles")

	// ErrNilHandler 表示未提供事件处理器。
	ErrNilHandler = errors.New("xgrep: nil handler")

	// ErrNilOpen 表示 Source.Open 为 nil。
	ErrNilOpen = errors.New("xgrep: source has no opener")

	// errStop 在 -q 语义下用于提前终止 Run，不会返回给调用方。
	errStop = errors.New("xgrep: stop")
)
