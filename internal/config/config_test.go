package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bfvm.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 32, c.VM.MemorySize)
	level, err := c.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
	assert.False(t, c.Dump.Enabled)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[vm]
memory_size = 30000

[log]
level = "debug"

[dump]
enabled = true
snapshot = "state.cbor"
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30000, c.VM.MemorySize)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Dump.Enabled)
	assert.Equal(t, "state.cbor", c.Dump.Snapshot)
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	c, err := Load(writeConfig(t, "[dump]\nenabled = true\n"))
	require.NoError(t, err)
	assert.Equal(t, 32, c.VM.MemorySize)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[vm\nmemory_size = 1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[vm]\nmemory_size = 0\n"))
	assert.ErrorContains(t, err, "memory_size must be positive")

	_, err = Load(writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	assert.ErrorContains(t, err, "invalid log level")
}
