package xconf

import (
	"fmt"
	"slices"
)

// maxWorkers 与 worker 池的上限一致。
const maxWorkers = 1 << 16

// Settings 是 ipgrep 可由配置文件提供的选项。从 [Defaults] 开始填充。
type Settings struct {
	Accept        []string        `koanf:"accept"`
	InterfaceMode string          `koanf:"interface_mode"`
	Match         string          `koanf:"match"`
	Context       ContextSettings `koanf:"context"`
	Workers       int             `koanf:"workers"`
	CacheSize     int             `koanf:"cache_size"`
	LineBuffered  bool            `koanf:"line_buffered"`
	Color         string          `koanf:"color"`
	Stats         bool            `koanf:"stats"`
	Log           LogSettings     `koanf:"log"`
}

// ContextSettings 上下文行数。
type ContextSettings struct {
	Before int `koanf:"before"`
	After  int `koanf:"after"`
}

// LogSettings 诊断日志。File 为空时写标准错误。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// knownKeys 是配置文件允许出现的全部叶子键。
var knownKeys = []string{
	"accept",
	"cache_size",
	"color",
	"context.after",
	"context.before",
	"interface_mode",
	"line_buffered",
	"log.file",
	"log.format",
	"log.level",
	"match",
	"stats",
	"workers",
}

// Defaults 返回内置默认值。
func Defaults() Settings {
	return Settings{
		Accept:        []string{"ip", "net", "iface"},
		InterfaceMode: "ip",
		Match:         "contains",
		Workers:       1,
		CacheSize:     4096,
		Color:         "auto",
		Log: LogSettings{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadSettings 把 c 中出现的键覆盖到默认值上并校验。c 为 nil 时返回默认值。
// 出现未知键时返回 [ErrUnknownKey]。
func LoadSettings(c Config) (Settings, error) {
	s := Defaults()
	if c == nil {
		return s, nil
	}
	for _, key := range c.Client().Keys() {
		if !slices.Contains(knownKeys, key) {
			return s, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}

	// 列表按整体替换，不与默认值逐项合并
	defaults := s.Accept
	s.Accept = nil
	if err := c.Unmarshal("", &s); err != nil {
		return Defaults(), err
	}
	if len(s.Accept) == 0 {
		s.Accept = defaults
	}
	return s, s.Validate()
}

// Validate 校验取值范围。名称类选项（accept、match 等）由使用方解析。
func (s Settings) Validate() error {
	switch {
	case s.Context.Before < 0:
		return fmt.Errorf("%w: context.before %d", ErrInvalidValue, s.Context.Before)
	case s.Context.After < 0:
		return fmt.Errorf("%w: context.after %d", ErrInvalidValue, s.Context.After)
	case s.Workers < 1 || s.Workers > maxWorkers:
		return fmt.Errorf("%w: workers %d", ErrInvalidValue, s.Workers)
	case s.CacheSize < 0:
		return fmt.Errorf("%w: cache_size %d", ErrInvalidValue, s.CacheSize)
	}
	if !slices.Contains([]string{"auto", "always", "never"}, s.Color) {
		return fmt.Errorf("%w: color %q", ErrInvalidValue, s.Color)
	}
	if !slices.Contains([]string{"text", "json"}, s.Log.Format) {
		return fmt.Errorf("%w: log.format %q", ErrInvalidValue, s.Log.Format)
	}
	return nil
}
