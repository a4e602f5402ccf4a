package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PROXY_CNAME_TARGET", "proxy.pixeltrack.io.")
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg = &Config{Environment: "production"}
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())

	cfg = &Config{Environment: "staging"}
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadWithOptions(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("DB_HOST", "testhost")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "pixel_test")
	t.Setenv("CLICKHOUSE_ADDR", "ch1:9000, ch2:9000")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("API_ENDPOINT", "https://api.example.com/")

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "testhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "testuser", cfg.Database.User)
	assert.Equal(t, "testpass", cfg.Database.Password)
	assert.Equal(t, "pixel_test", cfg.Database.DBName)
	assert.Equal(t, []string{"ch1:9000", "ch2:9000"}, cfg.ClickHouse.Addr)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, []byte(testSecret), cfg.Security.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Security.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.Security.RefreshTokenTTL)
	assert.Equal(t, "proxy.pixeltrack.io", cfg.DNS.ProxyTarget)
	assert.Equal(t, "pxt", cfg.DNS.RecordPrefix)
	assert.Empty(t, cfg.DNS.Nameserver)
	assert.Equal(t, "https://graph.facebook.com", cfg.Facebook.GraphBaseURL)
	assert.Equal(t, "v20.0", cfg.Facebook.APIVersion)
	assert.Equal(t, 30*time.Second, cfg.Facebook.Timeout)
	assert.Equal(t, time.Minute, cfg.Monitoring.DatabaseCheckInterval)
	assert.Equal(t, 5*time.Minute, cfg.Monitoring.SystemMetricsInterval)
	assert.Equal(t, "https://api.example.com", cfg.APIEndpoint)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, VERSION, cfg.Version)
}

func TestLoadWithOptions_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PROXY_CNAME_TARGET", "proxy.pixeltrack.io")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")
}

func TestLoadWithOptions_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")
	t.Setenv("PROXY_CNAME_TARGET", "proxy.pixeltrack.io")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoadWithOptions_MissingProxyTarget(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PROXY_CNAME_TARGET", "")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROXY_CNAME_TARGET is required")
}

func TestLoadWithOptions_AccessTTLOutOfRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_TTL", "30m")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_TTL")
}

func TestLoadWithOptions_EnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "JWT_SECRET=" + testSecret + "\nPROXY_CNAME_TARGET=edge.example.net\nSERVER_PORT=7070\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(wd) }()

	// make sure the process environment does not shadow the file
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("PROXY_CNAME_TARGET", "")
	os.Unsetenv("PROXY_CNAME_TARGET")
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("SERVER_PORT")

	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.test"})
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "edge.example.net", cfg.DNS.ProxyTarget)
}

func TestLoadWithOptions_MissingEnvFileIsIgnored(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadWithOptions(LoadOptions{EnvFile: ".env.does-not-exist"})
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a:1", "b:2"}, splitList("a:1, ,b:2,"))
	assert.Nil(t, splitList(""))
}
