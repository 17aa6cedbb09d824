package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-config", "/etc/gopass.json",
		"-data-dir", "/data",
		"-runtime-dir", "/run/gopass",
		"-lock-timeout", "45m",
		"-sync-interval", "10m",
	})
	require.NoError(t, err)

	assert.Equal(t, "/etc/gopass.json", cfg.JSONFilePath)
	assert.Equal(t, "/data", cfg.Storage.DataDir)
	assert.Equal(t, "/run/gopass", cfg.Agent.RuntimeDir)
	assert.Equal(t, 45*time.Minute, cfg.Agent.LockTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Agent.SyncInterval)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "/tmp/c.json"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_Unknown(t *testing.T) {
	_, err := ParseFlags([]string{"-listen", ":8080"})
	assert.Error(t, err)
}
