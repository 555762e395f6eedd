package xfile

import "errors"

var (
	// ErrEmptyPath 表示必需的路径参数为空。
	ErrEmptyPath = errors.New("xfile: path is required")

	// ErrInvalidPath 表示路径格式无效（如以分隔符结尾的目录路径）。
	ErrInvalidPath = errors.New("xfile: invalid path")

	// ErrNullByte 表示路径中包含空字节（\x00），内核会在空字节处截断路径。
	ErrNullByte = errors.New("xfile: path contains null byte")

	// ErrInvalidPerm 表示目录权限无效（如缺少所有者执行位，目录无法遍历）。
	ErrInvalidPerm = errors.New("xfile: invalid directory permission")

	// ErrNilVisitor 表示 Walk 的回调为 nil。
	ErrNilVisitor = errors.New("xfile: visit function is nil")

	// ErrIsDirectory 表示未开启递归时遇到目录。
	// 错误文本与 grep 一致，便于直接拼成 "path: Is a directory"。
	ErrIsDirectory = errors.New("Is a directory") //nolint:staticcheck // grep 兼容的错误文本

	// ErrDirectoryLoop 表示目录出现在自身的祖先链上。
	ErrDirectoryLoop = errors.New("warning: recursive directory loop")
)
