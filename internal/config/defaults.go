package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values
const (
	// Catalog defaults
	DefaultCatalogOwner = "effect-native"
	DefaultCatalogRepo  = "examples"
	// DefaultCatalogRef is empty: the default branch is resolved at
	// scaffold time instead of being hardcoded here.
	DefaultCatalogRef = ""

	// Endpoint defaults
	DefaultCodeloadBaseURL = "https://codeload.github.com"
	DefaultAPIBaseURL      = "https://api.github.com"

	// Cache defaults
	DefaultCacheEnabled = true
	DefaultCacheTTL     = 24 * time.Hour

	// Scaffold defaults
	DefaultGitInit = true

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".create-effect-native-app"
	}
	return filepath.Join(home, ".create-effect-native-app")
}

// CacheDir returns the cache directory path
func CacheDir() string {
	return filepath.Join(ConfigDir(), "cache")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Owner: DefaultCatalogOwner,
			Repo:  DefaultCatalogRepo,
			Ref:   DefaultCatalogRef,
		},
		Codeload: CodeloadConfig{
			BaseURL: DefaultCodeloadBaseURL,
		},
		GitHub: GitHubConfig{
			APIBaseURL: DefaultAPIBaseURL,
		},
		Cache: CacheConfig{
			Enabled:   DefaultCacheEnabled,
			TTL:       DefaultCacheTTL,
			Directory: CacheDir(),
		},
		Scaffold: ScaffoldConfig{
			GitInit: DefaultGitInit,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
