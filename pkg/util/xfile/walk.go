package xfile

import (
	"io/fs"
	"os"
	"slices"
	"strings"
)

// StdinName 是代表标准输入的路径参数。
const StdinName = "-"

// Recursion 是目录递归策略。
type Recursion uint8

const (
	// RecurseNone 不进入目录。
	RecurseNone Recursion = iota
	// RecurseDirs 进入目录，跳过遍历中遇到的符号链接。
	RecurseDirs
	// RecurseSymlinks 进入目录并跟随所有符号链接。
	RecurseSymlinks
)

// String 返回策略名。
func (r Recursion) String() string {
	switch r {
	case RecurseDirs:
		return "dirs"
	case RecurseSymlinks:
		return "symlinks"
	default:
		return "none"
	}
}

// VisitFunc 接收一个待读取的路径。err 非 nil 时该路径不可读取，
// 可能是 [ErrIsDirectory]、[ErrDirectoryLoop] 或底层的 *fs.PathError。
// 返回非 nil 错误会终止遍历。
type VisitFunc func(path string, err error) error

// Walk 依次展开 roots 并对每个可读取的文件调用 visit。
// [StdinName] 原样交付给 visit，不访问文件系统。
func Walk(roots []string, rec Recursion, visit VisitFunc) error {
	if visit == nil {
		return ErrNilVisitor
	}
	w := walker{rec: rec, visit: visit}
	for _, root := range roots {
		if root == StdinName {
			if err := visit(root, nil); err != nil {
				return err
			}
			continue
		}
		if err := w.walk(root, true, nil); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	rec   Recursion
	visit VisitFunc
}

// walk 处理单个路径。ancestors 是当前路径上已进入的目录标识。
func (w *walker) walk(path string, follow bool, ancestors []fileID) error {
	if path == "" {
		return w.visit(path, ErrEmptyPath)
	}
	if containsNullByte(path) {
		return w.visit(path, ErrNullByte)
	}

	var info fs.FileInfo
	var err error
	if follow {
		info, err = os.Stat(path)
	} else {
		info, err = os.Lstat(path)
	}
	if err != nil {
		return w.visit(path, err)
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		// 只有不跟随时 Lstat 才会看到链接本身
		return nil
	case !info.IsDir():
		return w.visit(path, nil)
	case w.rec == RecurseNone:
		return w.visit(path, ErrIsDirectory)
	}

	id, ok := identify(path, info)
	if ok && slices.Contains(ancestors, id) {
		return w.visit(path, ErrDirectoryLoop)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return w.visit(path, err)
	}
	if ok {
		ancestors = append(ancestors, id)
	}
	for _, e := range entries {
		if err := w.walk(join(path, e.Name()), w.rec == RecurseSymlinks, ancestors); err != nil {
			return err
		}
	}
	return nil
}

// join 拼接目录与文件名。与 filepath.Join 不同，它保留 dir 的原样写法，
// 使 "./a" 这样的显示名与 grep 一致。
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
