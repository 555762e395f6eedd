// ipgrep 在文本中查找 IP 地址与网络，并按包含关系与给定的 needle 比较。
//
// 用法:
//
//	ipgrep [选项] NEEDLES [HAYSTACK...]
//
// NEEDLES 是逗号或空白分隔的地址/网络列表。HAYSTACK 省略或为 "-" 时读取标准输入。
//
// 匹配方式 (-m):
//
//	contains   haystack 中的网络包含 needle（默认）
//	within     haystack 中的地址/网络位于 needle 之内
//	equals     两者相同
//	overlaps   两者相交
//
// 退出码:
//
//	0: 至少一行匹配且没有错误
//	1: 没有匹配且没有错误
//	2: 出现任何错误（参数、needle、读取、写入）
//
// 示例:
//
//	ipgrep 192.168.1.1 /etc/iptables/rules.v4     # 哪些规则覆盖了这个地址
//	ipgrep -m within 10.0.0.0/8 -r /etc/nginx      # 列出 10/8 内的所有地址
//	ip -br a | ipgrep -a iface -I net 10.20.30.0/24
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// 退出码。
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitTrouble = 2
)

func init() {
	// -h 留给 --no-filename，-V 显示版本，与 grep 一致
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "显示帮助",
	}
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "显示版本",
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run 执行命令行并返回退出码，不调用 os.Exit。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp()
	app.Reader = stdin
	app.Writer = stdout
	app.ErrWriter = stderr

	err := app.Run(ctx, splitContextArgs(args))
	if err == nil {
		return exitMatch
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "ipgrep: %v\n", usageErr)
		fmt.Fprintln(stderr, "Try 'ipgrep --help' for more information.")
		return exitTrouble
	}
	fmt.Fprintf(stderr, "ipgrep: %v\n", err)
	return exitTrouble
}

// setupSignalHandler 第一次信号取消搜索，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
