package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "user-onboarding", cfg.AppName)
	require.Equal(t, "postgres", cfg.Storage)
	require.Equal(t, "fixed", cfg.PasswordEncoding)
	require.Equal(t, 10*time.Minute, cfg.UserCacheTTL)
	require.Empty(t, cfg.ESAddrs())
	require.Empty(t, cfg.CORSOrigins())
	require.False(t, cfg.PasswordHashStrict)
	require.Empty(t, cfg.TrustedProxyList())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE", "Memory")
	t.Setenv("PASSWORD_ENCODING", "LEGACY")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("USER_CACHE_TTL", "30s")
	t.Setenv("MAIL_SEND_ENABLED", "false")
	t.Setenv("ELASTICSEARCH_ADDRS", "http://es1:9200, ,http://es2:9200")
	t.Setenv("HTTP_LOG_ENABLED", "not-a-bool")
	t.Setenv("PASSWORD_HASH_STRICT", "true")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8,127.0.0.1")

	cfg := Load()
	require.Equal(t, "memory", cfg.Storage)
	require.Equal(t, "legacy", cfg.PasswordEncoding)
	require.Equal(t, int32(25), cfg.DBMaxConns)
	require.Equal(t, 30*time.Second, cfg.UserCacheTTL)
	require.False(t, cfg.MailSendEnabled)
	require.False(t, cfg.HTTPLogEnabled)
	require.Equal(t, []string{"http://es1:9200", "http://es2:9200"}, cfg.ESAddrs())
	require.True(t, cfg.PasswordHashStrict)
	require.Equal(t, []string{"10.0.0.0/8", "127.0.0.1"}, cfg.TrustedProxyList())
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d", DBSSLMode: "disable"}
	require.Equal(t, "postgres://u:p@h:5432/d?sslmode=disable", cfg.PostgresDSN())
}
