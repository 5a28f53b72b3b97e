package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/chores/internal/config/colors"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// newFlags mirrors the persistent flags registered by the root command
func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("chores", pflag.ContinueOnError)
	fs.String("dbpath", "test.db", "")
	fs.String(ConfigFlag, "", "")
	fs.String("log-level", "info", "")
	fs.String("theme", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

// isolate points the default config location at an empty temp dir
// and clears CHORES_* variables
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"CHORES_DB_PATH", "CHORES_LOG_LEVEL", "CHORES_LOG_FILE", "CHORES_SQL_DIR", "CHORES_THEME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// ============================================================================
// TESTS
// ============================================================================

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "chores", "config.yaml"), `db_path: /var/lib/chores.db
log_level: debug
theme:
  preset: monochrome
  accent: "#00FF00"
`)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/chores.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "monochrome", cfg.ColorScheme.Preset)
	assert.Equal(t, "#00FF00", cfg.ColorScheme.Accent)
	// Unspecified colors come from the preset
	assert.Equal(t, colors.Monochrome().Normal, cfg.ColorScheme.Normal)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "chores", "config.yaml"), "db_path: file.db\nlog_level: warn\n")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "file.db", cfg.DBPath, "unset flag defaults do not override the file")
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv("CHORES_DB_PATH", "env.db")
	cfg, err = Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.DBPath, "environment overrides the file")
	assert.Equal(t, "warn", cfg.LogLevel)

	cfg, err = Load(newFlags(t, "--dbpath", "flag.db", "--log-level", "error"))
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.DBPath, "flags override the environment")
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadThemeFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("CHORES_THEME", "dragon")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, *colors.Dragon(), cfg.ColorScheme)
}

func TestLoadExplicitConfigFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeConfig(t, path, "sql_dir: /opt/chores/sql\n")

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "/opt/chores/sql", cfg.SQLDir)

	_, err = Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err, "an explicit config file must exist")
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "chores", "config.yaml"), "db_path: [unterminated\n")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	dir := isolate(t)

	path, explicit, err := Path(nil)
	require.NoError(t, err)
	assert.False(t, explicit)
	assert.Equal(t, filepath.Join(dir, "chores", "config.yaml"), path)

	path, explicit, err = Path(newFlags(t, "--config", "/tmp/x.yaml"))
	require.NoError(t, err)
	assert.True(t, explicit)
	assert.Equal(t, "/tmp/x.yaml", path)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "chores", "config.yaml")

	cfg := Default()
	cfg.DBPath = "saved.db"
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestYAML(t *testing.T) {
	out, err := Default().YAML()
	require.NoError(t, err)
	assert.Contains(t, out, "db_path: test.db")
	assert.Contains(t, out, "log_level: info")
	assert.Contains(t, out, "preset: default")
	assert.NotContains(t, out, "sql_dir")
}
