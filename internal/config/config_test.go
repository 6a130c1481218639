package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9090
  legacy_status_200: true
database:
  dsn: postgres://avo@localhost/avo
jwt:
  secret: file-secret
  signin_ttl: 2h
redis:
  addr: localhost:6379
rate_limit:
  window: 30s
  ip_limit: 3
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.LegacyStatus200)
	assert.Equal(t, "postgres://avo@localhost/avo", cfg.DSN)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.SignInTTL)
	assert.Equal(t, 168*time.Hour, cfg.ElevationTTL, "unset values keep defaults")
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 3, cfg.RateLimitIP)
	assert.Equal(t, 5, cfg.RateLimitEmail)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: file-secret
`)
	t.Setenv("AVO_JWT_SECRET", "env-secret")
	t.Setenv("AVO_APP_PORT", "7000")
	t.Setenv("AVO_JWT_ELEVATION_TTL", "72h")
	t.Setenv("AVO_SMTP_HOST", "smtp.example.com")
	t.Setenv("AVO_RATE_LIMIT_EMAIL_LIMIT", "0")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.ElevationTTL)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 0, cfg.RateLimitEmail)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("AVO_JWT_SECRET", "only-env")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.SignInTTL)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing secret",
			body:    "app:\n  port: 8080\n",
			wantErr: "jwt secret is required",
		},
		{
			name:    "bad duration",
			body:    "jwt:\n  secret: s\n  signin_ttl: soon\n",
			wantErr: "invalid JWT signin TTL",
		},
		{
			name:    "non-positive ttl",
			body:    "jwt:\n  secret: s\n  elevation_ttl: 0s\n",
			wantErr: "jwt elevation ttl must be positive",
		},
		{
			name:    "bcrypt cost out of range",
			body:    "jwt:\n  secret: s\npassword:\n  bcrypt_cost: 99\n",
			wantErr: "bcrypt cost 99 out of range",
		},
		{
			name:    "twilio without credentials",
			body:    "jwt:\n  secret: s\ntwilio:\n  enabled: true\n",
			wantErr: "twilio enabled without account sid",
		},
		{
			name:    "malformed yaml",
			body:    "jwt: [",
			wantErr: "could not parse config yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
