// Package config provides application configuration for colorvane.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the colorvane configuration.
type Config struct {
	CatalogPath  string       `toml:"catalog_path"`  // Catalog data file
	ArtifactPath string       `toml:"artifact_path"` // Generated Go artifact
	SourceURL    string       `toml:"source_url"`    // External dataset URL (empty = built-in default)
	UserAgent    string       `toml:"user_agent"`    // Identifying header for dataset fetches
	FetchTimeout string       `toml:"fetch_timeout"` // HTTP timeout (e.g. "30s")
	NameLanguage string       `toml:"name_language"` // BCP 47 tag for title casing (default "en")
	Server       ServerConfig `toml:"server"`
}

// ServerConfig holds settings for colorvane serve.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		CatalogPath:  filepath.Join("data", "colors.catalog"),
		ArtifactPath: filepath.Join("colornamer", "colornamer.go"),
		NameLanguage: "en",
		Server: ServerConfig{
			Host: "localhost",
			Port: 7461,
		},
	}
}

// FetchTimeoutDuration returns the parsed fetch timeout (default: 30s).
func (c Config) FetchTimeoutDuration() time.Duration {
	if c.FetchTimeout != "" {
		if d, err := time.ParseDuration(c.FetchTimeout); err == nil {
			return d
		}
	}
	return 30 * time.Second
}

// Path returns the config file location:
// os.UserConfigDir()/colorvane/config.toml.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "colorvane", "config.toml"), nil
}

// Load reads the config file, or returns defaults if it does not exist.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at an explicit path. A missing file yields
// the defaults without error; unset fields fall back to defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = Default().CatalogPath
	}
	if cfg.ArtifactPath == "" {
		cfg.ArtifactPath = Default().ArtifactPath
	}
	if cfg.NameLanguage == "" {
		cfg.NameLanguage = "en"
	}
	return cfg, nil
}

// Save writes the config to the default location.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(cfg)
}
