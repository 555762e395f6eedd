// Package xfile 提供 haystack 文件发现和少量文件系统工具。
//
// [Walk] 按命令行顺序展开输入路径：
//
//   - 不递归时，目录作为单独的错误条目交付（[ErrIsDirectory]）
//   - [RecurseDirs] 进入目录，遍历中遇到的符号链接一律跳过（grep -r）
//   - [RecurseSymlinks] 同时跟随符号链接指向的目录和文件（grep -R）
//   - 命令行上直接给出的路径总是跟随符号链接
//   - 目录项按文件名字典序访问，输出顺序稳定
//   - 当前路径上已出现过的目录（相同设备号和 inode）作为 [ErrDirectoryLoop] 交付并跳过
//
// 单个路径的错误交给回调处理，不中断遍历；回调返回的错误才会终止 Walk。
//
// [EnsureDir] 和 [CleanFilePath] 供日志文件等输出路径使用。
package xfile
