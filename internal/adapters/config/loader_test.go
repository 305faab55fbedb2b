package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/adapters/config"
	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/relay/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
queue:
  endpoint: http://10.0.0.1:8773/services/SimpleWorkflow/
  domain: LoadbalancingDomain
  taskList: lb-i-1234
  connectTimeout: 10s
messaging:
  address: 127.0.0.1:6380
  replyTimeout: 30s
storage:
  root: /tmp/servo
cache:
  ttl: 2m
workers: 4
activities:
  Ops.setConfig:
    channel: set-config
    cache: true
  Ops.getHealth:
    channel: get-health
    default: Health
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.1:8773/services/SimpleWorkflow/", cfg.Queue.Endpoint)
	assert.Equal(t, "LoadbalancingDomain", cfg.Queue.Domain)
	assert.Equal(t, "lb-i-1234", cfg.Queue.TaskList)
	assert.Equal(t, 10*time.Second, cfg.Queue.ConnectTimeout)
	assert.Equal(t, domain.DefaultRegion, cfg.Queue.Region)
	assert.Equal(t, "127.0.0.1:6380", cfg.Messaging.Address)
	assert.Equal(t, 30*time.Second, cfg.Messaging.ReplyTimeout)
	assert.Equal(t, "/tmp/servo", cfg.Storage.Root)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, domain.DefaultFailureClass, cfg.FailureClass)

	require.Len(t, cfg.Routes, 2)
	assert.Equal(t, "Ops.getHealth", cfg.Routes[0].Activity)
	require.NotNil(t, cfg.Routes[0].Default)
	assert.Equal(t, "Health", *cfg.Routes[0].Default)
	assert.Equal(t, "Ops.setConfig", cfg.Routes[1].Activity)
	assert.True(t, cfg.Routes[1].Cache)
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	_, err := config.Load(writeConfig(t, `version: "2"`))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedConfigVersion)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "workers: [1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero workers", "workers: 0"},
		{"zero ttl", "cache:\n  ttl: 0s"},
		{"negative reply timeout", "messaging:\n  replyTimeout: -1s"},
		{"empty root", "storage:\n  root: \"\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_ExplicitMissingFile(t *testing.T) {
	loader := config.NewLoader(logger.NewWithOutput(io.Discard))

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_DiscoversWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	loader := config.NewLoader(logger.NewWithOutput(io.Discard))

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("workers: 2\n"), 0o600))
	cfg, err = loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}
