package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 测试数据
// =============================================================================

const testYAMLContent = `
match: within
accept: [ip, oldnet]
context:
  before: 2
  after: 3
log:
  level: debug
`

const testJSONContent = `{
  "match": "within",
  "accept": ["ip", "oldnet"],
  "context": {"before": 2, "after": 3},
  "log": {"level": "debug"}
}`

// =============================================================================
// 辅助函数
// =============================================================================

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// New
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
	}{
		{"yaml", "ipgrep.yaml", testYAMLContent, FormatYAML},
		{"yml", "ipgrep.yml", testYAMLContent, FormatYAML},
		{"json", "ipgrep.json", testJSONContent, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := createTempFile(t, tt.file, tt.content)

			cfg, err := New(path)
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Path())
			assert.Equal(t, tt.format, cfg.Format())
			assert.Equal(t, "within", cfg.Client().String("match"))
			assert.Equal(t, 3, cfg.Client().Int("context.after"))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrEmptyPath)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, ErrLoadFailed)

	_, err = New(createTempFile(t, "ipgrep.toml", "match = 'within'"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(createTempFile(t, "bad.yaml", "match: [unclosed"))
	require.ErrorIs(t, err, ErrParseFailed)

	_, err = New(createTempFile(t, "bad.json", `{"match":`))
	require.ErrorIs(t, err, ErrParseFailed)
}

func TestNew_EmptyFile(t *testing.T) {
	cfg, err := New(createTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Client().Keys())
}

func TestNew_NestedKeys(t *testing.T) {
	path := createTempFile(t, "ipgrep.yaml", "log:\n  level: info\n")

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Client().String("log.level"))

	var out struct {
		Level string `koanf:"level"`
	}
	require.NoError(t, cfg.Unmarshal("log", &out))
	assert.Equal(t, "info", out.Level)
}

// =============================================================================
// NewFromBytes
// =============================================================================

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testJSONContent), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, []string{"ip", "oldnet"}, cfg.Client().Strings("accept"))

	cfg, err = NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Client().Keys())

	_, err = NewFromBytes([]byte("x"), Format("toml"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	cfg, err := NewFromBytes([]byte("context: {before: many}\n"), FormatYAML)
	require.NoError(t, err)

	var out ContextSettings
	err = cfg.Unmarshal("context", &out)
	assert.ErrorIs(t, err, ErrUnmarshalFailed)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"/etc/ipgrep/config.json", FormatJSON, false},
		{"a.conf", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := detectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
