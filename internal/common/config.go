package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Provider    ProviderConfig  `toml:"provider"`
	News        NewsConfig      `toml:"news"`
	Snapshots   SnapshotsConfig `toml:"snapshots"`
	Logging     LoggingConfig   `toml:"logging"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"min=1,max=65535"`
	Host string `toml:"host" validate:"required"`
}

// ProviderConfig contains upstream screener API configuration
type ProviderConfig struct {
	ScreenerURL    string        `toml:"screener_url" validate:"required,url"`
	UserAgent      string        `toml:"user_agent"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	RateLimit      int           `toml:"rate_limit" validate:"min=1"` // Requests per second
}

// NewsConfig contains news page rendering and cache configuration
type NewsConfig struct {
	URL           string        `toml:"url" validate:"required,url"`
	MaxArticles   int           `toml:"max_articles" validate:"min=1"`
	CacheTTL      time.Duration `toml:"cache_ttl"`
	RenderTimeout time.Duration `toml:"render_timeout"`
	Headless      bool          `toml:"headless"`
}

// SnapshotsConfig contains CSV snapshot export configuration
type SnapshotsConfig struct {
	Dir string `toml:"dir" validate:"required"`
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"oneof=debug info warn error"` // "debug", "info", "warn", "error"
	Format string   `toml:"format"`                                       // "json" or "text"
	Output []string `toml:"output"`                                       // "stdout", "file"
}

// NewDefaultConfig creates a configuration with default values.
// Technical parameters are hardcoded here for production stability.
// Only user-facing settings should be exposed in scrynt.toml.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8000,
			Host: "localhost",
		},
		Provider: ProviderConfig{
			ScreenerURL:    "https://stockanalysis.com/api/screener/s/bd/marketCap%2BpeRatio%2BpegRatio%2BfcfYield%2Broe%2Broa%2Brevenue%2BoperatingIncome%2BnetIncome%2Bfcf%2Beps%2Bsector%2BpeForward%2BpbRatio%2BpsRatio%2BepsGrowth3Y%2BrevenueGrowth3Y%2BdebtEquity%2Bbeta%2BdividendYield%2BpayoutRatio%2BdividendGrowth%2BanalystRatings%2BanalystCount%2BpriceTarget%2BpriceTargetChange%2Bch1w%2Bch1m%2Bch6m%2BchYTD%2Bch1y%2Bch3y%2Bprice.json",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			RequestTimeout: 30 * time.Second,
			RateLimit:      2,
		},
		News: NewsConfig{
			URL:           "https://stockanalysis.com/news/all-stocks/",
			MaxArticles:   8,
			CacheTTL:      6 * time.Hour,
			RenderTimeout: 60 * time.Second,
			Headless:      true,
		},
		Snapshots: SnapshotsConfig{
			Dir: "./data",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: []string{"stdout", "file"},
		},
	}
}

// LoadFromFile loads configuration with priority: default -> file -> env -> CLI
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// default -> file1 -> file2 -> ... -> env -> CLI. Later files override
// earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	// Start with defaults
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier files)
	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// Apply environment variables (overrides all file configs)
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Environment configuration (highest priority: SCRYNT_ENV, fallback: GO_ENV)
	if env := os.Getenv("SCRYNT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("SCRYNT_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("SCRYNT_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Provider configuration
	if screenerURL := os.Getenv("SCRYNT_PROVIDER_SCREENER_URL"); screenerURL != "" {
		config.Provider.ScreenerURL = screenerURL
	}
	if userAgent := os.Getenv("SCRYNT_PROVIDER_USER_AGENT"); userAgent != "" {
		config.Provider.UserAgent = userAgent
	}
	if requestTimeout := os.Getenv("SCRYNT_PROVIDER_REQUEST_TIMEOUT"); requestTimeout != "" {
		if rt, err := time.ParseDuration(requestTimeout); err == nil {
			config.Provider.RequestTimeout = rt
		}
	}
	if rateLimit := os.Getenv("SCRYNT_PROVIDER_RATE_LIMIT"); rateLimit != "" {
		if rl, err := strconv.Atoi(rateLimit); err == nil {
			config.Provider.RateLimit = rl
		}
	}

	// News configuration
	if newsURL := os.Getenv("SCRYNT_NEWS_URL"); newsURL != "" {
		config.News.URL = newsURL
	}
	if maxArticles := os.Getenv("SCRYNT_NEWS_MAX_ARTICLES"); maxArticles != "" {
		if ma, err := strconv.Atoi(maxArticles); err == nil {
			config.News.MaxArticles = ma
		}
	}
	if cacheTTL := os.Getenv("SCRYNT_NEWS_CACHE_TTL"); cacheTTL != "" {
		if ttl, err := time.ParseDuration(cacheTTL); err == nil {
			config.News.CacheTTL = ttl
		}
	}
	if renderTimeout := os.Getenv("SCRYNT_NEWS_RENDER_TIMEOUT"); renderTimeout != "" {
		if rt, err := time.ParseDuration(renderTimeout); err == nil {
			config.News.RenderTimeout = rt
		}
	}
	if headless := os.Getenv("SCRYNT_NEWS_HEADLESS"); headless != "" {
		if h, err := strconv.ParseBool(headless); err == nil {
			config.News.Headless = h
		}
	}

	// Snapshots configuration
	if snapshotsDir := os.Getenv("SCRYNT_SNAPSHOTS_DIR"); snapshotsDir != "" {
		config.Snapshots.Dir = snapshotsDir
	}

	// Logging configuration
	if level := os.Getenv("SCRYNT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("SCRYNT_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("SCRYNT_LOG_OUTPUT"); output != "" {
		// Split comma-separated output types
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			trimmed := strings.TrimSpace(o)
			if trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
