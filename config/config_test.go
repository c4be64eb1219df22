package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/fsbox/internal/tracing"
	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"FSBOX_ALLOWED_DIRECTORIES",
	"FSBOX_LOG_LEVEL",
	"FSBOX_TRACING_ENABLED",
	"FSBOX_TRACING_EXPORTER",
}

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.AllowedDirectories)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, log.LevelWarn, cfg.LogLevel())
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, tracing.ExporterNoop, cfg.Tracing.Exporter)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
allowed_directories:
  - /srv/data
  - ~/projects
log:
  level: debug
tracing:
  enabled: true
  exporter: stdout
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/srv/data", "~/projects"}, cfg.AllowedDirectories)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, tracing.ExporterStdout, cfg.Tracing.Exporter)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
allowed_directories: [/from/file]
log:
  level: info
`)
	t.Setenv("FSBOX_ALLOWED_DIRECTORIES", "/a,/b")
	t.Setenv("FSBOX_LOG_LEVEL", "error")
	t.Setenv("FSBOX_TRACING_ENABLED", "true")
	t.Setenv("FSBOX_TRACING_EXPORTER", "stdout")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, cfg.AllowedDirectories)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
}

func TestLoad_FileValuesSurviveUnsetEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "allowed_directories: [/from/file]\n")
	t.Setenv("FSBOX_LOG_LEVEL", "info")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/from/file"}, cfg.AllowedDirectories)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, "allowed_dirs: [/tmp]\n"))
		require.Error(t, err)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("FSBOX_TRACING_ENABLED", "maybe")
		_, err := Load("")
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			modify: func(c *Config) { c.AddDirectories("/tmp") },
		},
		{
			name:    "no directories",
			modify:  func(c *Config) {},
			wantErr: "at least one allowed directory is required",
		},
		{
			name:    "blank directories",
			modify:  func(c *Config) { c.AllowedDirectories = []string{" ", ""} },
			wantErr: "at least one allowed directory is required",
		},
		{
			name: "unknown log level",
			modify: func(c *Config) {
				c.AddDirectories("/tmp")
				c.Log.Level = "loud"
			},
			wantErr: `unknown log level "loud"`,
		},
		{
			name: "unknown exporter",
			modify: func(c *Config) {
				c.AddDirectories("/tmp")
				c.Tracing.Exporter = "zipkin"
			},
			wantErr: `unsupported trace exporter "zipkin"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_AddDirectories(t *testing.T) {
	cfg := Default()
	cfg.AddDirectories("/a", "", "  ", "/b")
	assert.Equal(t, []string{"/a", "/b"}, cfg.AllowedDirectories)
}

func TestConfig_Roots(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	cfg := Default()
	cfg.AddDirectories(dir, dir)
	roots, err := cfg.Roots()
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, roots.Dirs())

	cfg = Default()
	cfg.AddDirectories(filepath.Join(dir, "missing"))
	_, err = cfg.Roots()
	assert.Error(t, err)
}
