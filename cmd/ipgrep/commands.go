package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示命令行参数错误，退出码为 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// valueShortFlags 是带参数的短选项，组合短选项中其后的字符都属于参数。
const valueShortFlags = "aIm"

// splitContextArgs 把 -C1、-A2、-nB3 这类附带数字的上下文选项拆成
// "-C 1"、"-A 2"、"-n -B 3"，与 grep 的写法保持兼容。"--" 之后的参数原样保留。
func splitContextArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := make([]string, 0, len(args)+2)
	out = append(out, args[0])
	for i, arg := range args[1:] {
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		out = append(out, splitContextArg(arg)...)
	}
	return out
}

func splitContextArg(arg string) []string {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return []string{arg}
	}
	for i := 1; i < len(arg); i++ {
		c := arg[i]
		switch {
		case strings.IndexByte("ABC", c) >= 0:
			digits := arg[i+1:]
			if digits == "" || strings.Trim(digits, "0123456789") != "" {
				return []string{arg}
			}
			var parts []string
			if i > 1 {
				parts = append(parts, arg[:i])
			}
			return append(parts, "-"+string(c), digits)
		case strings.IndexByte(valueShortFlags, c) >= 0,
			!('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'):
			return []string{arg}
		}
	}
	return []string{arg}
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:      "ipgrep",
		Usage:     "在文本中查找 IP 地址与网络",
		UsageText: "ipgrep [选项] NEEDLES [HAYSTACK...]",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags:     createFlags(),
		Action:    cmdSearch,
		// 允许 -rn 这样的组合短选项
		UseShortOptionHandling: true,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{msg: err.Error()}
		},
		// 退出码统一由 run 映射
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Description: `NEEDLES 中的每一项可以是地址（192.168.1.1、::1）或网络（10.0.0.0/8）。
HAYSTACK 中的字面量按 --accept 指定的格式识别：

  ip      单个地址
  net     CIDR 网络，主机位必须为 0
  oldnet  点分掩码网络，例如 10.0.0.0/255.0.0.0
  iface   接口地址，例如 10.1.2.3/24，按 --interface-mode 处理

配置文件（--config 或 IPGREP_CONFIG）可以为大部分选项提供默认值，命令行优先。`,
	}
}

// createFlags 创建全部选项，分组与 grep 手册一致。
func createFlags() []cli.Flag {
	return []cli.Flag{
		// 匹配
		&cli.StringSliceFlag{
			Name:     "accept",
			Aliases:  []string{"a"},
			Usage:    "haystack 字面量格式: ip, net|n, oldnet|o, iface|if（可重复或逗号分隔）",
			Category: "匹配",
		},
		&cli.StringFlag{
			Name:     "interface-mode",
			Aliases:  []string{"I"},
			Usage:    "iface 格式的处理: ip（取地址）, net|n（取网络）, complain|c（告警并丢弃）",
			Category: "匹配",
		},
		&cli.StringFlag{
			Name:     "match",
			Aliases:  []string{"m"},
			Usage:    "匹配方式: contains|c, within|w, equals|e, overlaps|o",
			Category: "匹配",
		},

		// 输出
		&cli.BoolFlag{Name: "count", Aliases: []string{"c"}, Usage: "只输出每个输入的匹配行数", Category: "输出"},
		&cli.BoolFlag{Name: "files-with-matches", Aliases: []string{"l"}, Usage: "只输出有匹配的文件名", Category: "输出"},
		&cli.BoolFlag{Name: "only-matching", Aliases: []string{"o"}, Usage: "只输出匹配的字面量", Category: "输出"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q", "silent"}, Usage: "不输出，只设置退出码", Category: "输出"},
		&cli.BoolFlag{Name: "no-filename", Aliases: []string{"h"}, Usage: "不输出文件名前缀", Category: "输出"},
		&cli.BoolFlag{Name: "with-filename", Aliases: []string{"H"}, Usage: "总是输出文件名前缀", Category: "输出"},
		&cli.BoolFlag{Name: "line-number", Aliases: []string{"n"}, Usage: "输出行号", Category: "输出"},
		&cli.BoolFlag{Name: "null", Aliases: []string{"Z"}, Usage: "文件名后输出 NUL 而不是 ':' 或换行", Category: "输出"},
		&cli.BoolFlag{Name: "line-buffered", Usage: "每条输出后立即刷新", Category: "输出"},
		&cli.StringFlag{Name: "color", Aliases: []string{"colour"}, Usage: "高亮: auto, always, never", Category: "输出"},

		// 上下文
		&cli.IntFlag{Name: "before-context", Aliases: []string{"B"}, Usage: "输出匹配行之前的 `NUM` 行", Category: "上下文"},
		&cli.IntFlag{Name: "after-context", Aliases: []string{"A"}, Usage: "输出匹配行之后的 `NUM` 行", Category: "上下文"},
		&cli.IntFlag{Name: "context", Aliases: []string{"C"}, Usage: "输出匹配行前后各 `NUM` 行", Category: "上下文"},

		// 输入
		&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: "递归读取目录，跳过符号链接", Category: "输入"},
		&cli.BoolFlag{Name: "dereference-recursive", Aliases: []string{"R"}, Usage: "递归读取目录并跟随符号链接", Category: "输入"},
		&cli.IntFlag{Name: "workers", Usage: "并行搜索的文件数", Category: "输入"},
		&cli.IntFlag{Name: "cache-size", Usage: "字面量分类缓存容量，0 表示不缓存", Category: "输入"},

		// 诊断
		&cli.StringFlag{
			Name:     "config",
			Usage:    "从 YAML/JSON `FILE` 读取默认选项",
			Sources:  cli.EnvVars("IPGREP_CONFIG"),
			Category: "诊断",
		},
		&cli.StringFlag{Name: "log-level", Usage: "诊断日志级别: debug, info, warn, error", Category: "诊断"},
		&cli.StringFlag{Name: "log-format", Usage: "诊断日志格式: text, json", Category: "诊断"},
		&cli.StringFlag{Name: "log-file", Usage: "诊断日志写入 `FILE`（按大小轮转）", Category: "诊断"},
		&cli.BoolFlag{Name: "stats", Usage: "结束时以 info 级别记录搜索统计", Category: "诊断"},
	}
}

// cmdSearch 是根命令的 Action。
func cmdSearch(ctx context.Context, cmd *cli.Command) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	return search(ctx, cmd, opts)
}

// acceptFromFlag 把 -a 的多个取值合并为集合，供 resolveOptions 使用。
func acceptFromFlag(values []string) (xnet.AcceptSet, error) {
	set, err := xnet.ParseAcceptSet(values)
	if err != nil {
		return 0, usagef("invalid --accept: %v", err)
	}
	return set, nil
}
