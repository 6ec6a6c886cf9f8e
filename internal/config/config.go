// Package config loads the ninepatch command's defaults from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Name of the per-directory config file, also used under the XDG config home.
const Name = "ninechat.toml"

type Config struct {
	Width     int    `koanf:"width"`      // default target width for scale
	Height    int    `koanf:"height"`     // default target height for scale
	OutputDir string `koanf:"output_dir"` // where relative outputs are written; empty means cwd
	Profile   string `koanf:"profile"`    // pkg/profile mode, "none" disables
}

// Default returns the configuration used when no file sets a key.
func Default() *Config {
	return &Config{
		Width:   200,
		Height:  80,
		Profile: "none",
	}
}

// Load reads every config file that exists, in increasing priority:
// $XDG_CONFIG_HOME/ninechat/ninechat.toml, then ./ninechat.toml.
func Load() (*Config, error) {
	return load(paths()...)
}

// LoadFile reads a single config file, which must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return load(path)
}

func load(paths ...string) (*Config, error) {
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.OutputDir = expandPath(cfg.OutputDir)
	return cfg, nil
}

func paths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "ninechat", Name),
		Name,
	}
}

func (c *Config) validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: negative default size %dx%d", c.Width, c.Height)
	}
	return nil
}

// Resolve joins a relative output path onto OutputDir.
func (c *Config) Resolve(path string) string {
	if c.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
