//go:build unix

package xfile

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// fileID 唯一标识一个目录。
type fileID struct {
	dev uint64
	ino uint64
}

// identify 返回 path 的设备号与 inode。
func identify(path string, _ fs.FileInfo) (fileID, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fileID{}, false
	}
	return fileID{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true //nolint:unconvert // Dev 的类型随平台变化
}
