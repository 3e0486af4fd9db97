package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/store"
)

// isolate points every lookup location at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	for _, k := range []string{
		"CAREERFIT_STORE_BACKEND", "CAREERFIT_STORE_PATH",
		"CAREERFIT_STORE_REDIS_ADDR", "CAREERFIT_LOG_LEVEL",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("store", "", "")
	fs.String("db", "", "")
	fs.String("log-level", "", "")
	fs.String("log-file", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, store.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(dir, "data", "careerfit", "careerfit.db"), cfg.Store.Path)
	assert.Equal(t, "localhost:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "careerfit:", cfg.Store.Redis.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, filepath.Join(dir, "data", "careerfit", "careerfit.log"), cfg.Log.File)
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "careerfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  backend: redis
  redis:
    addr: redis.internal:6380
    db: 2
    ttl: 24h
log:
  level: debug
`), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, store.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, 24*time.Hour, cfg.Store.Redis.TTL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFileFromWorkingDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("store:\n  backend: memory\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, store.BackendMemory, cfg.Store.Backend)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "careerfit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: redis\n"), 0o644))
	t.Setenv("CAREERFIT_STORE_BACKEND", "memory")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, store.BackendMemory, cfg.Store.Backend)
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("CAREERFIT_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CAREERFIT_LOG_LEVEL") })

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestFlagsOverrideEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CAREERFIT_STORE_BACKEND", "redis")

	fs := testFlags()
	dbPath := filepath.Join(dir, "custom.db")
	require.NoError(t, fs.Parse([]string{"--store", "sqlite", "--db", dbPath}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, store.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, dbPath, cfg.Store.Path)
}

func TestUnsetFlagsKeepDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", testFlags())
	require.NoError(t, err)
	assert.Equal(t, store.BackendSQLite, cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Store: StoreConfig{Backend: "sqlite", Path: "/tmp/x.db"},
			Log:   LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"memory needs nothing", func(c *Config) { c.Store.Backend = "memory"; c.Store.Path = "" }, ""},
		{"unknown backend", func(c *Config) { c.Store.Backend = "etcd" }, "store.backend"},
		{"sqlite without path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"redis without addr", func(c *Config) { c.Store.Backend = "redis" }, "store.redis.addr"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStoreOptions(t *testing.T) {
	cfg := Config{Store: StoreConfig{
		Backend: "redis",
		Path:    "/tmp/x.db",
		Redis:   RedisConfig{Addr: "r:1", DB: 3, Prefix: "p:", TTL: time.Minute},
	}}
	opts := cfg.StoreOptions()
	assert.Equal(t, "redis", opts.Backend)
	assert.Equal(t, "/tmp/x.db", opts.Path)
	assert.Equal(t, store.RedisOptions{Addr: "r:1", DB: 3, Prefix: "p:", TTL: time.Minute}, opts.Redis)
}
