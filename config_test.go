package jsonx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonx.yaml")
	content := `
version: 1.5
has_version: true
include_nulls: true
exclude_modifiers:
  - transient
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Version)
	assert.True(t, cfg.HasVersion)
	assert.True(t, cfg.IncludeNulls)
	assert.Equal(t, []string{"transient"}, cfg.ExcludeModifiers)

	engine, err := New(cfg.Options()...)
	require.NoError(t, err)

	// With only the transient modifier excluded, unexported fields are in.
	type mixed struct {
		Public int `jsonx:"public"`
		hidden int
	}
	out, err := engine.ToJSON(mixed{Public: 1, hidden: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"public":1,"hidden":2}`, out)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"defaults", Config{}, true},
		{"negative version", Config{Version: -1, HasVersion: true}, false},
		{"unknown modifier", Config{ExcludeModifiers: []string{"static"}}, false},
		{"unknown log level", Config{LogLevel: "loud"}, false},
		{"valid full", Config{Version: 2, HasVersion: true, LogLevel: "warn", ExcludeModifiers: []string{"unexported"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err))
			}
		})
	}
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv(EnvVersion, "1.0")
	t.Setenv(EnvIncludeNulls, "true")
	t.Setenv(EnvLogLevel, "error")

	cfg, err := LoadConfigFromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Version)
	assert.True(t, cfg.HasVersion)
	assert.True(t, cfg.IncludeNulls)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfigFromEnvironmentDefaults(t *testing.T) {
	t.Setenv(EnvVersion, "")
	t.Setenv(EnvIncludeNulls, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadConfigFromEnvironment()
	require.NoError(t, err)
	assert.False(t, cfg.HasVersion)
	assert.False(t, cfg.IncludeNulls)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigFromEnvironmentBadValue(t *testing.T) {
	t.Setenv(EnvVersion, "not-a-number")
	_, err := LoadConfigFromEnvironment()
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := Config{Version: 1.1, HasVersion: true, LogLevel: "info"}
	require.NoError(t, SaveConfig(cfg, path))

	back, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
