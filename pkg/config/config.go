/*
Package config manages TOML config for SymServe services.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/finboard/symserve/internal/utils"
	"github.com/finboard/symserve/pkg/search"
)

// Config holds the entire config structure
type Config struct {
	Search  SearchConfig  `toml:"search"`
	API     APIConfig     `toml:"api"`
	Catalog CatalogConfig `toml:"catalog"`
	CLI     CliConfig     `toml:"cli"`
}

// SearchConfig has the knobs every search surface inherits.
type SearchConfig struct {
	MaxResults  int    `toml:"max_results"`
	DebounceMs  int    `toml:"debounce_ms"`
	MinQuery    int    `toml:"min_query"`
	Placeholder string `toml:"placeholder"`
}

// APIConfig points at the dashboard backend. An empty base URL runs
// catalog-only.
type APIConfig struct {
	BaseURL   string `toml:"base_url"`
	TimeoutMs int    `toml:"timeout_ms"`
}

// CatalogConfig locates the reference data.
type CatalogConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive picker options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	ShowScores   bool `toml:"show_scores"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults:  8,
			DebounceMs:  250,
			MinQuery:    2,
			Placeholder: "Search companies...",
		},
		API: APIConfig{
			BaseURL:   "",
			TimeoutMs: 4000,
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		CLI: CliConfig{
			DefaultLimit: 8,
			ShowScores:   true,
		},
	}
}

// SearchOptions converts the [search] section into session options.
func (c *Config) SearchOptions() search.Options {
	opts := search.DefaultOptions()
	if c.Search.MaxResults > 0 {
		opts.MaxResults = c.Search.MaxResults
	}
	if c.Search.DebounceMs > 0 {
		opts.Debounce = time.Duration(c.Search.DebounceMs) * time.Millisecond
	}
	if c.Search.MinQuery > 0 {
		opts.MinQuery = c.Search.MinQuery
	}
	if c.Search.Placeholder != "" {
		opts.Placeholder = c.Search.Placeholder
	}
	return opts
}

// APITimeout returns the remote lookup timeout as a duration.
func (c *Config) APITimeout() time.Duration {
	if c.API.TimeoutMs <= 0 {
		return 0
	}
	return time.Duration(c.API.TimeoutMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/symserve
// 2. executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "symserve")
	if utils.DirWritable(primaryPath) {
		return primaryPath, nil
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/symserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Unknown keys are ignored and missing
// sections keep their defaults, so old config files stay valid.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		log.Warnf("Failed to parse config from %s: %v. Using defaults for all sections.", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	f, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(config)
}

// Update changes the search section values and saves to file
func (c *Config) Update(configPath string, maxResults, debounceMs, minQuery *int) error {
	if maxResults != nil {
		c.Search.MaxResults = *maxResults
	}
	if debounceMs != nil {
		c.Search.DebounceMs = *debounceMs
	}
	if minQuery != nil {
		c.Search.MinQuery = *minQuery
	}
	if configPath == "" {
		return nil
	}
	return SaveConfig(c, configPath)
}
