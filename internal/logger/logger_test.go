package logger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutFileDiscards(t *testing.T) {
	log, err := New(Options{})
	require.NoError(t, err)

	assert.False(t, log.Enabled())
	assert.NoError(t, log.Close())
}

func TestNewWritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rfilter.log")

	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Info("local filter accepted", "pattern", "go")
	log.V(1).Info("debug noise")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "local filter accepted", record[MessageKey])
	assert.Equal(t, "go", record["pattern"])
	assert.Contains(t, record, TimeStampKey)
	assert.Contains(t, record, PIDKey)
}

func TestNewDebugLevelEnablesVerbosity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfilter.log")

	log, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)
	defer log.Close()

	assert.True(t, log.V(1).Enabled())
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty", File: filepath.Join(t.TempDir(), "x.log")})
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	assert.Equal(t, logr.Discard(), FromContext(context.Background()))

	path := filepath.Join(t.TempDir(), "rfilter.log")
	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)
	defer log.Close()

	ctx := WithLogger(context.Background(), log.Logger)
	assert.True(t, FromContext(ctx).Enabled())
}
