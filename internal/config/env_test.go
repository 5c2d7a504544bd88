package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_ENCRYPTION_KEY": "storage_secret",
		"APP_VERSION":        "1.2.3",
		"APP_SUPPORT_EMAIL":  "help@snapcram.app",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DSN": "/var/data/snapcram.db",

		"WORKERS_REFRESH_INTERVAL": "5m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "storage_secret", cfg.App.EncryptionKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "help@snapcram.app", cfg.App.SupportEmail)

	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/var/data/snapcram.db", cfg.Storage.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	t.Setenv("SERVER_ADDRESS", "localhost:8080")

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Empty(t, cfg.Storage.DSN)
	assert.Zero(t, cfg.Workers.RefreshInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
