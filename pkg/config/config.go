// Package config loads the fontinstall configuration: embedded
// defaults overlaid with an optional user TOML file.
package config

import (
	_ "embed"
	"os"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/LiteObject/WindowsUtils/pkg/errors"
)

//go:embed default.toml
var defaultConfig []byte

// Config is the merged application configuration.
type Config struct {
	Install   InstallConfig   `toml:"install"`
	Discovery DiscoveryConfig `toml:"discovery"`
	Store     StoreConfig     `toml:"store"`
}

// InstallConfig configures conflict handling.
type InstallConfig struct {
	// Overwrite is the default overwrite policy: yes, no or ask
	Overwrite string `toml:"overwrite"`

	// Match is the duplicate-name matching policy: fold or exact
	Match string `toml:"match"`
}

// DiscoveryConfig configures the folder walk.
type DiscoveryConfig struct {
	// ExtraExtensions adds recognized extensions beyond the built-in set
	ExtraExtensions []string `toml:"extra_extensions"`
}

// StoreConfig configures the font store.
type StoreConfig struct {
	// FontDir overrides the platform font directory
	FontDir string `toml:"font_dir"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	// The embedded defaults are compiled in and always parse
	_ = toml.Unmarshal(defaultConfig, &cfg)
	return &cfg
}

// Load returns the defaults overlaid with the TOML file at path.
// With an empty path the user config under the XDG config directory
// is used when present; a missing user config is not an error, a
// missing explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		found, err := xdg.SearchConfigFile("fontinstall/config.toml")
		if err != nil {
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}
	return cfg, nil
}
