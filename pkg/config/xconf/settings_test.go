package xconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadYAML(t *testing.T, content string) (Settings, error) {
	t.Helper()
	cfg, err := NewFromBytes([]byte(content), FormatYAML)
	require.NoError(t, err)
	return LoadSettings(cfg)
}

func TestDefaults(t *testing.T) {
	s := Defaults()
	require.NoError(t, s.Validate())
	assert.Equal(t, []string{"ip", "net", "iface"}, s.Accept)
	assert.Equal(t, "contains", s.Match)
	assert.Equal(t, "warn", s.Log.Level)

	got, err := LoadSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadSettings_Overlay(t *testing.T) {
	s, err := loadYAML(t, testYAMLContent)
	require.NoError(t, err)

	want := Defaults()
	want.Match = "within"
	want.Accept = []string{"ip", "oldnet"}
	want.Context = ContextSettings{Before: 2, After: 3}
	want.Log.Level = "debug"
	assert.Equal(t, want, s)
}

func TestLoadSettings_AcceptReplacesDefault(t *testing.T) {
	s, err := loadYAML(t, "accept: [ip]\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"ip"}, s.Accept)

	s, err = loadYAML(t, "accept: ip,oldnet\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"ip,oldnet"}, s.Accept)

	s, err = loadYAML(t, "workers: 4\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"ip", "net", "iface"}, s.Accept)
}

func TestLoadSettings_WeakTypes(t *testing.T) {
	s, err := loadYAML(t, "workers: \"8\"\nstats: \"true\"\n")
	require.NoError(t, err)
	assert.Equal(t, 8, s.Workers)
	assert.True(t, s.Stats)
}

func TestLoadSettings_UnknownKey(t *testing.T) {
	_, err := loadYAML(t, "contxt:\n  before: 1\n")
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "contxt.before")

	_, err = loadYAML(t, "context: 3\n")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"negative before", func(s *Settings) { s.Context.Before = -1 }},
		{"negative after", func(s *Settings) { s.Context.After = -1 }},
		{"zero workers", func(s *Settings) { s.Workers = 0 }},
		{"too many workers", func(s *Settings) { s.Workers = maxWorkers + 1 }},
		{"negative cache", func(s *Settings) { s.CacheSize = -1 }},
		{"bad color", func(s *Settings) { s.Color = "sometimes" }},
		{"bad log format", func(s *Settings) { s.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidValue)
		})
	}
}

func TestLoadSettings_InvalidValue(t *testing.T) {
	_, err := loadYAML(t, "color: rainbow\n")
	assert.ErrorIs(t, err, ErrInvalidValue)
}
