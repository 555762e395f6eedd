package xneedle

import "errors"

var (
	// ErrEmpty 表示没有给出任何 needle。
	ErrEmpty = errors.New("xneedle: no needles given")

	// ErrInvalidNeedle 表示某个 needle 无法按任何接受格式解析。
	ErrInvalidNeedle = errors.New("xneedle: invalid ip/net as needle")
)
