package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestNewWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v, err := New("")
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestNewReadsYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
filter:
  inverted_by_default: false
  ignore_case: true
  smart_case: true
  max_position_history: 16
view:
  parent_dir:
    root: true
  hide_dot_files: false
logging:
  level: debug
  file: /tmp/rfilter.log
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.False(t, cfg.Filter.InvertedByDefault)
	assert.True(t, cfg.Filter.IgnoreCase)
	assert.True(t, cfg.Filter.SmartCase)
	assert.Equal(t, 16, cfg.Filter.MaxPositionHistory)
	assert.Equal(t, Default().Filter.HistorySize, cfg.Filter.HistorySize)
	assert.True(t, cfg.View.ParentDir.Root)
	assert.True(t, cfg.View.ParentDir.NonRoot)
	assert.False(t, cfg.View.HideDotFiles)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/rfilter.log", cfg.Logging.File)
}

func TestNewMissingExplicitFileFails(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RFILTER_FILTER_IGNORE_CASE", "true")
	t.Setenv("RFILTER_VIEW_PARENT_DIR_NON_ROOT", "false")

	v, err := New("")
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.True(t, cfg.Filter.IgnoreCase)
	assert.False(t, cfg.View.ParentDir.NonRoot)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v, err := New("")
	require.NoError(t, err)
	v.Set("filter.history_size", -1)
	v.Set("logging.level", "loud")

	_, err = Load(v)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
	assert.Contains(t, err.Error(), "2 validation errors")
}

func TestSettingsConversion(t *testing.T) {
	cfg := Default()
	cfg.Filter.IgnoreCase = true

	s := cfg.Settings()

	assert.True(t, s.FilterInvertedByDefault)
	assert.True(t, s.Case.IgnoreCase)
	assert.False(t, s.ParentDirVisible(true))
	assert.True(t, s.ParentDirVisible(false))
	assert.Equal(t, cfg.Filter.MaxPositionHistory, s.MaxPositionHistory)
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "rfilter"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "rfilter", "config.yaml"), ConfigFile())
	assert.Equal(t, filepath.Join(dir, "rfilter", "history.yaml"), HistoryFile())
}
