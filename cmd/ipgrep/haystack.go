package main

import (
	"errors"
	"io"

	"github.com/ossobv/ipgrep/pkg/search/xgrep"
	"github.com/ossobv/ipgrep/pkg/util/xfile"
)

// collectSources 把 haystack 参数展开为输入流列表，顺序与参数及目录遍历顺序一致。
//
// 没有参数时读取 stdin。目录循环只告警，不产生输入流；其他遍历错误
// 作为打开即失败的输入流保留在原位置，使错误与输出按顺序交错。
func collectSources(haystacks []string, rec xfile.Recursion, stdin io.Reader, warn func(path string, err error)) ([]xgrep.Source, error) {
	if len(haystacks) == 0 {
		return []xgrep.Source{xgrep.ReaderSource(xgrep.StdinName, stdin)}, nil
	}

	var sources []xgrep.Source
	err := xfile.Walk(haystacks, rec, func(path string, err error) error {
		switch {
		case path == xfile.StdinName:
			sources = append(sources, xgrep.ReaderSource(xgrep.StdinName, stdin))
		case errors.Is(err, xfile.ErrDirectoryLoop):
			warn(path, err)
		case err != nil:
			sources = append(sources, xgrep.ErrorSource(path, err))
		default:
			sources = append(sources, xgrep.FileSource(path))
		}
		return nil
	})
	return sources, err
}
