package xmatch

import "errors"

// ErrUnknownMode 表示无法识别的匹配模式名。
var ErrUnknownMode = errors.New("xmatch: unknown match mode")
