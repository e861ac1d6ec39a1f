package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffstory/fs"
	"github.com/spf13/viper"
)

// Config holds user-overridable defaults for the diffstory CLI.
type Config struct {
	Context int    `mapstructure:"context"`
	Style   string `mapstructure:"style"`
}

// Defaults returns the built-in configuration used when no config file
// is present or a field is left unset.
func Defaults() Config {
	return Config{
		Context: 3,
		Style:   "unified",
	}
}

// LoadConfig reads configPath (or the default config file under
// fs.DefaultCacheDir) and overlays it onto Defaults. A missing file is
// not an error; the defaults are returned unchanged.
func LoadConfig(configPath string) (Config, error) {
	cfg := Defaults()

	path := configPath
	if path == "" {
		path = filepath.Join(fs.DefaultCacheDir(), "config.yaml")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("diffstory: stat config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("diffstory: read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("diffstory: parse config %s: %w", path, err)
	}

	return cfg, nil
}
