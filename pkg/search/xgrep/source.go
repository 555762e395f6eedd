package xgrep

import (
	"io"
	"os"
)

// StdinName 是标准输入在输出中的显示名。
const StdinName = "(stdin)"

// Source 是一个待搜索的输入流。
type Source struct {
	// Name 用于输出前缀和日志。
	Name string
	// Open 在搜索开始时调用一次，返回的流在搜索结束时关闭。
	Open func() (io.ReadCloser, error)
}

// FileSource 返回读取 path 的 Source。
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// ReaderSource 返回读取 r 的 Source，关闭时不会关闭 r。
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

// ErrorSource 返回打开即失败的 Source，用于在结果中按顺序报告遍历错误。
func ErrorSource(name string, err error) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return nil, err
		},
	}
}
