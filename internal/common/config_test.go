package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 2, config.Provider.RateLimit)
	assert.Equal(t, 30*time.Second, config.Provider.RequestTimeout)
	assert.Equal(t, 8, config.News.MaxArticles)
	assert.Equal(t, 6*time.Hour, config.News.CacheTTL)
	assert.Equal(t, 60*time.Second, config.News.RenderTimeout)
	assert.True(t, config.News.Headless)
	assert.Equal(t, "./data", config.Snapshots.Dir)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, config.Validate())
}

func TestLoadFromFiles_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scrynt.toml")

	content := `
environment = "production"

[server]
port = 9100
host = "0.0.0.0"

[news]
max_articles = 12

[logging]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.True(t, config.IsProduction())
	assert.Equal(t, 9100, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 12, config.News.MaxArticles)
	assert.Equal(t, "debug", config.Logging.Level)

	// Unset values keep their defaults
	assert.Equal(t, 2, config.Provider.RateLimit)
	assert.Equal(t, "./data", config.Snapshots.Dir)
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")

	require.NoError(t, os.WriteFile(base, []byte("[server]\nport = 9100\n"), 0644))
	require.NoError(t, os.WriteFile(override, []byte("[server]\nport = 9200\n"), 0644))

	config, err := LoadFromFiles(base, override)
	require.NoError(t, err)

	assert.Equal(t, 9200, config.Server.Port)
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SCRYNT_SERVER_PORT", "9300")
	t.Setenv("SCRYNT_SERVER_HOST", "127.0.0.1")
	t.Setenv("SCRYNT_LOG_LEVEL", "warn")
	t.Setenv("SCRYNT_LOG_OUTPUT", "stdout, file")
	t.Setenv("SCRYNT_NEWS_CACHE_TTL", "30m")
	t.Setenv("SCRYNT_SNAPSHOTS_DIR", "/tmp/snapshots")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 9300, config.Server.Port)
	assert.Equal(t, "127.0.0.1", config.Server.Host)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, []string{"stdout", "file"}, config.Logging.Output)
	assert.Equal(t, 30*time.Minute, config.News.CacheTTL)
	assert.Equal(t, "/tmp/snapshots", config.Snapshots.Dir)
}

func TestApplyEnvOverrides_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("SCRYNT_SERVER_PORT", "not-a-number")
	t.Setenv("SCRYNT_NEWS_CACHE_TTL", "not-a-duration")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, 6*time.Hour, config.News.CacheTTL)
}

func TestApplyFlagOverrides(t *testing.T) {
	tests := []struct {
		name     string
		port     int
		host     string
		wantPort int
		wantHost string
	}{
		{"both set", 9400, "0.0.0.0", 9400, "0.0.0.0"},
		{"port only", 9400, "", 9400, "localhost"},
		{"host only", 0, "0.0.0.0", 8000, "0.0.0.0"},
		{"neither", 0, "", 8000, "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := NewDefaultConfig()
			ApplyFlagOverrides(config, tt.port, tt.host)

			assert.Equal(t, tt.wantPort, config.Server.Port)
			assert.Equal(t, tt.wantHost, config.Server.Host)
		})
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	config := NewDefaultConfig()
	config.Server.Port = 0
	assert.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.Logging.Level = "verbose"
	assert.Error(t, config.Validate())

	config = NewDefaultConfig()
	config.Provider.ScreenerURL = "not a url"
	assert.Error(t, config.Validate())
}
