package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "KOT_ACCESS_TOKEN", "KOT_BASE_URL", "KOT_HTTP_TIMEOUT", "KOT_MAX_RETRIES"} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOT_ACCESS_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "tok", cfg.KingOfTime.AccessToken)
	assert.Equal(t, "https://api.kingtime.jp/v1.0", cfg.KingOfTime.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.KingOfTime.Timeout)
	assert.Equal(t, 3, cfg.KingOfTime.MaxRetries)
}

func TestLoad_MissingToken(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingToken)
	assert.Contains(t, err.Error(), "KOT_ACCESS_TOKEN")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("KOT_ACCESS_TOKEN", "tok")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KOT_BASE_URL", "http://localhost:9999/v1.0")
	t.Setenv("KOT_HTTP_TIMEOUT", "5s")
	t.Setenv("KOT_MAX_RETRIES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://localhost:9999/v1.0", cfg.KingOfTime.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.KingOfTime.Timeout)
	assert.Equal(t, 5, cfg.KingOfTime.MaxRetries)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]struct {
		key, value string
	}{
		"timeout":          {"KOT_HTTP_TIMEOUT", "soon"},
		"retries":          {"KOT_MAX_RETRIES", "many"},
		"negative retries": {"KOT_MAX_RETRIES", "-1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("KOT_ACCESS_TOKEN", "tok")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrMissingToken)
		})
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
log_level: warn
king_of_time:
  access_token: file-token
  base_url: https://sandbox.example/v1.0
  timeout: 10s
  max_retries: 4
`)
	t.Setenv("KOT_ACCESS_TOKEN", "env-token")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "env-token", cfg.KingOfTime.AccessToken)
	assert.Equal(t, "https://sandbox.example/v1.0", cfg.KingOfTime.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.KingOfTime.Timeout)
	assert.Equal(t, 4, cfg.KingOfTime.MaxRetries)
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnv(t)

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "king_of_time: ["))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "king_of_time:\n  access_token: tok\n  timeout: later\n"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "log_level: debug\n"))
	assert.ErrorIs(t, err, ErrMissingToken)
}
