package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "http://localhost:5033/api", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)

	assert.Equal(t, "cookie", cfg.Session.Store)
	assert.Equal(t, "cww_session", cfg.Session.CookieName)
	assert.Equal(t, "cww_lang", cfg.Session.LanguageCookie)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Session.SecureCookies)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)

	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
backend:
  base_url: "https://api.example.com/api"
  timeout: "10s"
session:
  store: "redis"
  cookie_name: "wallet_sid"
  secret: "file-secret"
  ttl: "12h"
  secure_cookies: true
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
log:
  level: "debug"
  pretty: true
i18n:
  default_language: "pl"
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "https://api.example.com/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)

	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "wallet_sid", cfg.Session.CookieName)
	assert.Equal(t, "file-secret", cfg.Session.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.True(t, cfg.Session.SecureCookies)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "pl", cfg.I18n.DefaultLanguage)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CWW_SERVER_PORT", "3000")
	t.Setenv("CWW_BACKEND_BASE_URL", "http://backend.internal/api")
	t.Setenv("CWW_SESSION_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "http://backend.internal/api", cfg.Backend.BaseURL)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
}

func TestRedisConfig_Addr(t *testing.T) {
	redisCfg := RedisConfig{
		Host: "redis.local",
		Port: 6380,
	}

	assert.Equal(t, "redis.local:6380", redisCfg.Addr())
}
