package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 30, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, 2500, cfg.Console.ToastMillis)
	assert.Equal(t, "KRW", cfg.Console.CurrencySuffix)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console.log", cfg.Logging.File)
	assert.False(t, cfg.Telegram.Enabled)

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 2500*time.Millisecond, cfg.ToastDuration())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
backend:
  base_url: http://10.0.0.5:9000/
  timeout_seconds: 5
console:
  toast_millis: 1000
  currency_suffix: USD
logging:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "http://10.0.0.5:9000/", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Equal(t, time.Second, cfg.ToastDuration())
	assert.Equal(t, "USD", cfg.Console.CurrencySuffix)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "base_url without scheme",
			yaml:    "backend:\n  base_url: not-a-url\n",
			wantErr: "invalid backend.base_url",
		},
		{
			name:    "telegram enabled without token",
			yaml:    "telegram:\n  enabled: true\n  chat_id: 42\n",
			wantErr: "telegram.bot_token is required",
		},
		{
			name:    "telegram enabled without chat id",
			yaml:    "telegram:\n  enabled: true\n  bot_token: 12345:abc\n",
			wantErr: "telegram.chat_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
