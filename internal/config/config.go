package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config represents the application configuration
type Config struct {
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Codeload CodeloadConfig `mapstructure:"codeload" yaml:"codeload"`
	GitHub   GitHubConfig   `mapstructure:"github" yaml:"github"`
	Cache    CacheConfig    `mapstructure:"cache" yaml:"cache"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// CatalogConfig points at the repository templates and examples are
// fetched from. LocalRoot, when set, skips the network entirely and
// scaffolds from a checkout on disk.
type CatalogConfig struct {
	Owner     string `mapstructure:"owner" yaml:"owner"`
	Repo      string `mapstructure:"repo" yaml:"repo"`
	Ref       string `mapstructure:"ref" yaml:"ref"`
	LocalRoot string `mapstructure:"local_root" yaml:"local_root"`
}

// CodeloadConfig contains tarball download settings
type CodeloadConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// GitHubConfig contains REST API settings for ref resolution
type GitHubConfig struct {
	APIBaseURL string `mapstructure:"api_base_url" yaml:"api_base_url"`
	Token      string `mapstructure:"token" yaml:"token"`
}

// CacheConfig contains default-branch cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// ScaffoldConfig contains post-materialization settings
type ScaffoldConfig struct {
	GitInit        bool   `mapstructure:"git_init" yaml:"git_init"`
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and fills defaults for values
// that are missing or out of range.
func (c *Config) Validate() error {
	if c.Catalog.Owner == "" {
		c.Catalog.Owner = DefaultCatalogOwner
	}
	if c.Catalog.Repo == "" {
		c.Catalog.Repo = DefaultCatalogRepo
	}

	if c.Codeload.BaseURL == "" {
		c.Codeload.BaseURL = DefaultCodeloadBaseURL
	} else if err := validateBaseURL(c.Codeload.BaseURL); err != nil {
		return fmt.Errorf("invalid codeload.base_url: %w", err)
	}

	if c.GitHub.APIBaseURL == "" {
		c.GitHub.APIBaseURL = DefaultAPIBaseURL
	} else if err := validateBaseURL(c.GitHub.APIBaseURL); err != nil {
		return fmt.Errorf("invalid github.api_base_url: %w", err)
	}

	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Cache.Directory == "" {
		c.Cache.Directory = CacheDir()
	}

	switch c.Scaffold.PackageManager {
	case "", "pnpm", "npm", "yarn", "bun":
	default:
		return fmt.Errorf("invalid scaffold.package_manager: %q is not one of pnpm, npm, yarn, bun", c.Scaffold.PackageManager)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
