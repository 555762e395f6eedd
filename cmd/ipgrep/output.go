package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/ossobv/ipgrep/pkg/search/xgrep"
)

// ANSI 颜色，与 grep 的默认 GREP_COLORS 一致。
const (
	colorMatch     = "\x1b[1;31m"
	colorLineNo    = "\x1b[0;32m"
	colorDelimiter = "\x1b[0;36m"
	colorFilename  = "\x1b[0;35m"
	colorReset     = "\x1b[0m"
)

// isTerminal 报告 w 是否为终端。
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printer 把搜索事件格式化到标准输出，实现 xgrep.Handler。
type printer struct {
	out    *bufio.Writer
	errOut io.Writer

	style        outputStyle
	withFilename bool
	lineNumber   bool
	null         bool
	color        bool
	lineBuffered bool

	// failed 记录是否有输入流读取失败
	failed bool
}

func newPrinter(stdout, stderr io.Writer, o options) *printer {
	tty := isTerminal(stdout)
	return &printer{
		out:          bufio.NewWriterSize(stdout, 64<<10),
		errOut:       stderr,
		style:        o.style,
		withFilename: o.withFilename,
		lineNumber:   o.lineNumber,
		null:         o.null,
		color:        o.color == colorAlways || (o.color == colorAuto && tty),
		lineBuffered: o.lineBuffered || tty,
	}
}

// Handle 输出单个事件。
func (p *printer) Handle(ev xgrep.Event) error {
	switch ev.Kind {
	case xgrep.EventSummary:
		return p.summary(ev.Summary)
	case xgrep.EventSeparator:
		if p.style != styleLines {
			return nil
		}
		p.delimiter("--")
		p.out.WriteByte('\n')
	case xgrep.EventMatch:
		switch p.style {
		case styleOnlyMatching:
			for _, it := range ev.Items {
				p.prefix(ev.Source, ev.Number, ':')
				p.colored(colorMatch, it.Text(ev.Text))
				p.out.WriteByte('\n')
			}
		case styleLines:
			p.prefix(ev.Source, ev.Number, ':')
			p.line(ev)
		default:
			return nil
		}
	case xgrep.EventContext:
		if p.style != styleLines {
			return nil
		}
		p.prefix(ev.Source, ev.Number, '-')
		p.line(ev)
	}
	return p.record()
}

// Flush 写出缓冲的输出。
func (p *printer) Flush() error {
	return p.out.Flush()
}

func (p *printer) summary(sum *xgrep.Summary) error {
	if sum.Err != nil {
		p.failed = true
		// 先刷新标准输出，使错误信息出现在对应位置
		if err := p.out.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(p.errOut, "ipgrep: %s: %s\n", sum.Name, describe(sum.Err))
	}
	switch p.style {
	case styleFiles:
		if !sum.Matched() {
			return nil
		}
		p.filename(sum.Name)
		if p.null {
			p.out.WriteByte(0)
		} else {
			p.out.WriteByte('\n')
		}
	case styleCount:
		if sum.Err != nil && sum.Lines == 0 {
			return nil
		}
		if p.withFilename {
			p.filename(sum.Name)
			p.separator(':')
		}
		p.out.WriteString(strconv.Itoa(sum.Matches))
		p.out.WriteByte('\n')
	default:
		return nil
	}
	return p.record()
}

// record 结束一条输出记录，行缓冲时立即刷新。
func (p *printer) record() error {
	if p.lineBuffered {
		return p.out.Flush()
	}
	return nil
}

// prefix 写文件名和行号前缀，sep 为 ':'（匹配行）或 '-'（上下文行）。
func (p *printer) prefix(name string, number int, sep byte) {
	if p.withFilename {
		p.filename(name)
		p.separator(sep)
	}
	if p.lineNumber {
		p.colored(colorLineNo, []byte(strconv.Itoa(number)))
		p.delimiter(string(sep))
	}
}

// separator 写文件名之后的分隔符；-Z 时为 NUL。
func (p *printer) separator(sep byte) {
	if p.null {
		p.out.WriteByte(0)
		return
	}
	p.delimiter(string(sep))
}

func (p *printer) filename(name string) {
	p.colored(colorFilename, []byte(name))
}

func (p *printer) delimiter(s string) {
	p.colored(colorDelimiter, []byte(s))
}

func (p *printer) colored(color string, text []byte) {
	if p.color {
		p.out.WriteString(color)
		p.out.Write(text)
		p.out.WriteString(colorReset)
		return
	}
	p.out.Write(text)
}

// line 写整行，高亮其中的匹配项。
func (p *printer) line(ev xgrep.Event) {
	if !p.color || len(ev.Items) == 0 {
		p.out.Write(ev.Text)
		p.out.WriteByte('\n')
		return
	}
	cursor := 0
	for _, it := range ev.Items {
		p.out.Write(ev.Text[cursor:it.Start])
		p.colored(colorMatch, it.Text(ev.Text))
		cursor = it.End
	}
	p.out.Write(ev.Text[cursor:])
	p.out.WriteByte('\n')
}

// describe 返回面向用户的错误描述，去掉 *fs.PathError 中重复的操作与路径。
func describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
