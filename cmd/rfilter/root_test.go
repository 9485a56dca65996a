package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
filter:
  ignore_case: false
logging:
  level: warn
view:
  watch: true
`), 0o644))

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--ignore-case", "--watch=false", "--log-file", "/tmp/rfilter.log"}))

	cfg, err := loadConfig(cmd, cfgFile)
	require.NoError(t, err)

	assert.True(t, cfg.Filter.IgnoreCase)
	assert.False(t, cfg.View.Watch)
	assert.Equal(t, "warn", cfg.Logging.Level, "unset flags keep the file value")
	assert.Equal(t, "/tmp/rfilter.log", cfg.Logging.File)
}

func TestLoadConfigDefaultsWithoutFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.View.Watch)
	assert.True(t, cfg.Filter.InvertedByDefault)
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "loud"}))

	_, err := loadConfig(cmd, "")
	require.Error(t, err)
}

func TestRootCmdRejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"a", "b"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.Error(t, cmd.Execute())
}
