// Package config provides configuration loading and defaults for repogauge.
package config

// DefaultConfigDir is the default location for repogauge configuration.
const DefaultConfigDir = "~/.config/repogauge"

// DefaultDBName is the filename for the SQLite fetch cache.
const DefaultDBName = "repogauge.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultAPI holds the default GitHub API settings.
var DefaultAPI = API{
	BaseURL:        "https://api.github.com",
	TokenEnv:       "GITHUB_TOKEN",
	TimeoutSeconds: 30,
}

// DefaultCache holds the default fetch cache settings.
var DefaultCache = Cache{
	Enabled:  true,
	TTLHours: 6,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
