package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/etapa/internal/config/colors"
	"github.com/thenoetrevino/etapa/internal/models"
)

// isolate points config discovery at an empty temp dir and clears ETAPA_* overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("ETAPA_CONFIG", "")
	for _, key := range []string{
		"ETAPA_DB_PATH", "ETAPA_ADDR", "ETAPA_LOG_LEVEL", "ETAPA_LOG_FILE",
		"ETAPA_DEFAULT_STAGES", "ETAPA_POSITION_BASE",
		"ETAPA_EVENTS_BROADCAST_BUFFER", "ETAPA_EVENTS_CLIENT_BUFFER",
	} {
		t.Setenv(key, "")
	}
	// godotenv reads .env from the working directory
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "etapa")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, models.DefaultStages, cfg.Pipeline.DefaultStages)
	assert.Equal(t, 0, cfg.Pipeline.PositionBase)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 100, cfg.Events.BroadcastBuffer)
	assert.Equal(t, "default", cfg.Theme.Preset)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `server:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
database:
  path: /tmp/etapa-test.db
pipeline:
  default_stages: [New, Phone Screen, Onsite]
  position_base: 1
theme:
  preset: monochrome
  accent: "#FF0000"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/tmp/etapa-test.db", cfg.Database.Path)
	assert.Equal(t, []string{"New", "Phone Screen", "Onsite"}, cfg.Pipeline.DefaultStages)
	assert.Equal(t, 1, cfg.Pipeline.PositionBase)
	assert.Equal(t, "#FF0000", cfg.Theme.Accent)
	assert.Equal(t, "#FFFFFF", cfg.Theme.ColumnBorder, "unset colors come from the preset")
	assert.Equal(t, "info", cfg.Log.Level, "missing sections keep defaults")
}

func TestLoadConfigThemePreset(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "theme:\n  preset: monochrome\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, *colors.Monochrome(), cfg.Theme)
}

func TestLoadConfigDefaultTheme(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, *colors.Default(), cfg.Theme)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("ETAPA_DEFAULT_STAGES", " Applied , Interview,, Hired ")
	t.Setenv("ETAPA_POSITION_BASE", "1")
	t.Setenv("ETAPA_ADDR", ":7000")
	t.Setenv("ETAPA_DB_PATH", "/tmp/override.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"Applied", "Interview", "Hired"}, cfg.Pipeline.DefaultStages)
	assert.Equal(t, 1, cfg.Pipeline.PositionBase)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/override.db", cfg.Database.Path)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ETAPA_ADDR=:6000\n"), 0o644))
	// t.Setenv registered an empty value; unset so godotenv may fill it
	require.NoError(t, os.Unsetenv("ETAPA_ADDR"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Addr)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{"duplicate stages", "pipeline:\n  default_stages: [Applied, applied]\n", nil, models.ErrDuplicateStage},
		{"empty stage list", "pipeline:\n  default_stages: []\n", nil, models.ErrNoStages},
		{"bad position base", "", map[string]string{"ETAPA_POSITION_BASE": "2"}, models.ErrInvalidPositionBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.content != "" {
				writeConfig(t, dir, tt.content)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "server: [not, a, map")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("ETAPA_POSITION_BASE", "one")
	_, err = Load()
	assert.Error(t, err)
}

func TestExplicitConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n"), 0o644))
	t.Setenv("ETAPA_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidateLog(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}
