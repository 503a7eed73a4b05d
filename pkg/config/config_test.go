package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_APIConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("API_BASE_URL", "http://test-backend:9090/api")
	os.Setenv("API_TIMEOUT_SECONDS", "3")
	defer func() {
		os.Unsetenv("API_BASE_URL")
		os.Unsetenv("API_TIMEOUT_SECONDS")
	}()

	// Load config
	cfg, err := Load()
	assert.NoError(t, err)

	// Verify API config
	assert.Equal(t, "http://test-backend:9090/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("API_BASE_URL")
	os.Unsetenv("SESSION_BACKEND")
	os.Unsetenv("LOCATION_PROVIDER")

	cfg, err := Load()
	assert.NoError(t, err)

	// Verify defaults
	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, "file", cfg.Session.Backend)
	assert.Equal(t, "none", cfg.Location.Provider)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestLoad_SessionBackend(t *testing.T) {
	os.Setenv("SESSION_BACKEND", "redis")
	os.Setenv("SESSION_REDIS_KEY", "kiosk:session")
	defer func() {
		os.Unsetenv("SESSION_BACKEND")
		os.Unsetenv("SESSION_REDIS_KEY")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "kiosk:session", cfg.Session.RedisKey)
}
