//go:build !unix

package xfile

import (
	"io/fs"
	"path/filepath"
)

// fileID 唯一标识一个目录。没有 inode 的平台上退化为解析链接后的绝对路径。
type fileID struct {
	name string
}

func identify(path string, _ fs.FileInfo) (fileID, bool) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fileID{}, false
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return fileID{}, false
	}
	return fileID{name: abs}, true
}
