package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".folio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:        "S.X.SUN",
		Owner:        "Sixia Sun",
		ContentDir:   "public",
		Port:         8080,
		FeedURL:      "http://127.0.0.1:5000",
		FetchTimeout: 10,
		CodeStyle:    "onedark",
		LogLevel:     LogInfo,
	}
}

// Timeout returns FetchTimeout as a duration. Zero disables the limit.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}
