package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Config is the effective configuration
type Config struct {
	Search  SearchConfig  `koanf:"search" toml:"search"`
	Display DisplayConfig `koanf:"display" toml:"display"`

	// Sources lists the files that were merged, lowest priority first
	Sources []string `koanf:"-" toml:"-"`
}

// SearchConfig holds defaults for a search request
type SearchConfig struct {
	Filename   string   `koanf:"filename" toml:"filename"`
	Output     string   `koanf:"output" toml:"output"`
	IgnoreCase bool     `koanf:"ignorecase" toml:"ignorecase"`
	Regex      bool     `koanf:"regex" toml:"regex"`
	Exclude    []string `koanf:"exclude" toml:"exclude"`
	Strict     bool     `koanf:"strict" toml:"strict"`
}

// DisplayConfig controls console output
type DisplayConfig struct {
	Color  bool   `koanf:"color" toml:"color"`
	Quiet  bool   `koanf:"quiet" toml:"quiet"`
	Styles string `koanf:"styles" toml:"styles"`
}

// Dump renders cfg as TOML
func Dump(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Defaults returns the embedded default configuration file
func Defaults() string {
	return string(defaultConfig)
}
