package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level repogauge configuration.
type Config struct {
	API    API    `mapstructure:"api"`
	Cache  Cache  `mapstructure:"cache"`
	Output Output `mapstructure:"output"`
}

// API defines GitHub API client settings.
type API struct {
	// BaseURL is the REST API endpoint, overridable for GitHub Enterprise.
	BaseURL string `mapstructure:"base_url"`

	// Token is an explicit API token. When empty, the TokenEnv variable
	// is consulted instead.
	Token string `mapstructure:"token"`

	// TokenEnv is the environment variable holding the API token.
	TokenEnv string `mapstructure:"token_env"`

	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Cache defines fetch cache settings.
type Cache struct {
	Enabled  bool `mapstructure:"enabled"`
	TTLHours int  `mapstructure:"ttl_hours"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// ResolveToken returns the API token, preferring the explicit config value
// over the configured environment variable.
func (a API) ResolveToken() string {
	if a.Token != "" {
		return a.Token
	}
	if a.TokenEnv != "" {
		return os.Getenv(a.TokenEnv)
	}
	return ""
}

// Timeout returns the request timeout as a duration.
func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// TTL returns the cache freshness window as a duration.
func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("api.base_url", DefaultAPI.BaseURL)
	v.SetDefault("api.token_env", DefaultAPI.TokenEnv)
	v.SetDefault("api.timeout_seconds", DefaultAPI.TimeoutSeconds)
	v.SetDefault("cache.enabled", DefaultCache.Enabled)
	v.SetDefault("cache.ttl_hours", DefaultCache.TTLHours)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite fetch cache.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
