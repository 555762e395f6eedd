package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ossobv/ipgrep/pkg/config/xconf"
	"github.com/ossobv/ipgrep/pkg/search/xmatch"
	"github.com/ossobv/ipgrep/pkg/search/xneedle"
	"github.com/ossobv/ipgrep/pkg/util/xfile"
	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

// outputStyle 是输出方式，按优先级从高到低排列。
type outputStyle uint8

const (
	styleQuiet outputStyle = iota
	styleFiles
	styleCount
	styleOnlyMatching
	styleLines
)

// colorMode 是 --color 的取值。
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// options 是合并命令行、配置文件与默认值后的结果。
type options struct {
	needles   *xneedle.Set
	haystacks []string

	accept    xnet.AcceptSet
	ifaceMode xnet.InterfaceMode
	mode      xmatch.Mode

	style        outputStyle
	before       int
	after        int
	withFilename bool
	lineNumber   bool
	null         bool
	lineBuffered bool
	color        colorMode

	recursion xfile.Recursion
	workers   int
	cacheSize int

	stats bool
	log   xconf.LogSettings
}

// loadSettings 读取 --config 指定的文件；未指定时返回默认值。
func loadSettings(cmd *cli.Command) (xconf.Settings, error) {
	path := cmd.String("config")
	if path == "" {
		return xconf.Defaults(), nil
	}
	cfg, err := xconf.New(path)
	if err != nil {
		return xconf.Settings{}, err
	}
	return xconf.LoadSettings(cfg)
}

// resolveOptions 按"命令行 > 配置文件 > 默认值"合并选项并校验。
func resolveOptions(cmd *cli.Command) (options, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return options{}, fmt.Errorf("config: %w", err)
	}
	overlayFlags(cmd, &s)
	if err := s.Validate(); err != nil {
		return options{}, usagef("%v", err)
	}

	var o options
	if o.accept, err = acceptFromFlag(s.Accept); err != nil {
		return options{}, err
	}
	if o.ifaceMode, err = xnet.ParseInterfaceMode(s.InterfaceMode); err != nil {
		return options{}, usagef("invalid --interface-mode: %v", err)
	}
	if o.mode, err = xmatch.ParseMode(s.Match); err != nil {
		return options{}, usagef("invalid --match: %v", err)
	}

	if err := resolveContext(cmd, s, &o); err != nil {
		return options{}, err
	}
	if err := resolveRecursion(cmd, &o); err != nil {
		return options{}, err
	}
	resolveStyle(cmd, &o)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return options{}, usagef("missing NEEDLES")
	}
	o.needles, err = xneedle.Parse(xneedle.Split(args[0]), o.accept, o.ifaceMode)
	if err != nil {
		return options{}, err
	}
	o.haystacks = args[1:]

	switch {
	case cmd.Bool("no-filename"):
		o.withFilename = false
	case cmd.Bool("with-filename"):
		o.withFilename = true
	default:
		o.withFilename = len(o.haystacks) > 1 || o.recursion != xfile.RecurseNone
	}
	o.lineNumber = cmd.Bool("line-number")
	o.null = cmd.Bool("null")
	o.lineBuffered = s.LineBuffered
	o.color = colorMode(s.Color)
	o.workers = s.Workers
	o.cacheSize = s.CacheSize
	o.stats = s.Stats
	o.log = s.Log
	return o, nil
}

// overlayFlags 把显式给出的命令行选项覆盖到配置上。
func overlayFlags(cmd *cli.Command, s *xconf.Settings) {
	if cmd.IsSet("accept") {
		s.Accept = cmd.StringSlice("accept")
	}
	if cmd.IsSet("interface-mode") {
		s.InterfaceMode = cmd.String("interface-mode")
	}
	if cmd.IsSet("match") {
		s.Match = cmd.String("match")
	}
	if cmd.IsSet("workers") {
		s.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("cache-size") {
		s.CacheSize = cmd.Int("cache-size")
	}
	if cmd.IsSet("line-buffered") {
		s.LineBuffered = cmd.Bool("line-buffered")
	}
	if cmd.IsSet("color") {
		s.Color = cmd.String("color")
	}
	if cmd.IsSet("stats") {
		s.Stats = cmd.Bool("stats")
	}
	if cmd.IsSet("log-level") {
		s.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.Log.File = cmd.String("log-file")
	}
}

func resolveContext(cmd *cli.Command, s xconf.Settings, o *options) error {
	o.before, o.after = s.Context.Before, s.Context.After
	if cmd.IsSet("context") {
		if cmd.IsSet("before-context") || cmd.IsSet("after-context") {
			return usagef("-C cannot be combined with -A or -B")
		}
		o.before = cmd.Int("context")
		o.after = o.before
	}
	if cmd.IsSet("before-context") {
		o.before = cmd.Int("before-context")
	}
	if cmd.IsSet("after-context") {
		o.after = cmd.Int("after-context")
	}
	if o.before < 0 || o.after < 0 {
		return usagef("invalid context length argument")
	}
	return nil
}

func resolveRecursion(cmd *cli.Command, o *options) error {
	r, deref := cmd.Bool("recursive"), cmd.Bool("dereference-recursive")
	switch {
	case r && deref:
		return usagef("-r and -R are mutually exclusive")
	case deref:
		o.recursion = xfile.RecurseSymlinks
	case r:
		o.recursion = xfile.RecurseDirs
	default:
		o.recursion = xfile.RecurseNone
	}
	return nil
}

// resolveStyle 选出优先级最高的输出方式。除整行输出外都不需要上下文。
func resolveStyle(cmd *cli.Command, o *options) {
	switch {
	case cmd.Bool("quiet"):
		o.style = styleQuiet
	case cmd.Bool("files-with-matches"):
		o.style = styleFiles
	case cmd.Bool("count"):
		o.style = styleCount
	case cmd.Bool("only-matching"):
		o.style = styleOnlyMatching
	default:
		o.style = styleLines
	}
	if o.style != styleLines {
		o.before, o.after = 0, 0
	}
}
