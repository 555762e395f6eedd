package xfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirPerm 默认目录权限：所有者读写执行，组读执行，其他无权限。
const DefaultDirPerm = 0750

func containsNullByte(path string) bool {
	return strings.ContainsRune(path, 0)
}

// CleanFilePath 校验并规范化一个文件（而非目录）路径。
// 拒绝空路径、含空字节的路径和以分隔符结尾的路径。
func CleanFilePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyPath
	}
	if containsNullByte(filename) {
		return "", ErrNullByte
	}
	if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is a directory path", ErrInvalidPath, filename)
	}
	cleaned := filepath.Clean(filename)
	if base := filepath.Base(cleaned); base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: no file name in %s", ErrInvalidPath, filename)
	}
	return cleaned, nil
}

// EnsureDir 以 [DefaultDirPerm] 确保 filename 的父目录存在。
func EnsureDir(filename string) error {
	return EnsureDirWithPerm(filename, DefaultDirPerm)
}

// EnsureDirWithPerm 以 perm 确保 filename 的父目录存在，已存在的目录不修改权限。
// perm 必须包含所有者执行位。
func EnsureDirWithPerm(filename string, perm os.FileMode) error {
	if filename == "" {
		return ErrEmptyPath
	}
	if containsNullByte(filename) {
		return ErrNullByte
	}
	if perm&0100 == 0 {
		return fmt.Errorf("%w: %04o missing owner execute bit", ErrInvalidPerm, perm)
	}
	dir := filepath.Dir(filename)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
