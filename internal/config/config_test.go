package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadConfig_Defaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeoutSecs)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.Equal(t, CacheMemory, cfg.Cache.Driver)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 3600, cfg.Cache.TTLSecs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "loancalc", cfg.OTEL.ServiceName)
	assert.Empty(t, cfg.OTEL.Endpoint)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("LOANCALC_SERVER_PORT", "9090")
	t.Setenv("LOANCALC_CACHE_DRIVER", "redis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, CacheRedis, cfg.Cache.Driver)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	testChdir(t, dir)
	yaml := "server:\n  port: 7070\nlog:\n  level: debug\n  format: console\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_InvalidDriver(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("LOANCALC_CACHE_DRIVER", "memcached")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func validDefaults() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
		Cache:     CacheConfig{Driver: CacheMemory},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "cache disabled", mutate: func(c *Config) { c.Cache.Driver = CacheNone }},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, wantError: true},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = 70000 }, wantError: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }, wantError: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantError: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Cache.Driver = "disk" }, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// testChdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func testChdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Fatal(err)
		}
	})
}
