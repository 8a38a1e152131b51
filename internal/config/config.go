// Package config loads user preferences for the wrrc CLI.
//
// Preferences live in $XDG_CONFIG_HOME/wrrc/config.toml (falling back to
// ~/.config/wrrc/config.toml). An explicit path may point at a TOML or YAML
// file; the format is chosen by extension.
//
//	max_elements = 8
//	format = "json"
//	styled = false
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/wrrc/pkg/chain"
	apperr "github.com/matzehuels/wrrc/pkg/errors"
	"github.com/matzehuels/wrrc/pkg/report"
)

const (
	appName     = "wrrc"
	defaultFile = "config.toml"
)

// Config holds CLI preferences. Flags override these values.
type Config struct {
	// MaxElements caps the repeater count accepted by commands. Values above
	// chain.MaxElements are clamped.
	MaxElements int `toml:"max_elements" yaml:"max_elements"`

	// Format is the default output format for gen (table, json, yaml).
	Format string `toml:"format" yaml:"format"`

	// Styled renders tables with lipgloss when writing to a terminal.
	Styled *bool `toml:"styled" yaml:"styled"`
}

// Default returns the built-in preferences.
func Default() Config {
	styled := true
	return Config{
		MaxElements: chain.MaxElements,
		Format:      report.FormatTable,
		Styled:      &styled,
	}
}

// StyledOutput reports whether styled tables are enabled.
func (c Config) StyledOutput() bool {
	return c.Styled == nil || *c.Styled
}

// Dir returns the configuration directory using the XDG convention.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Load reads preferences from path. An empty path means the default file,
// which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, defaultFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data as TOML or YAML depending on ext (".toml", ".yaml",
// ".yml") and fills unset fields with defaults.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".toml", "":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "decode toml")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "unsupported config extension %q", ext)
	}
	return cfg.withDefaults()
}

func (c Config) withDefaults() (Config, error) {
	def := Default()
	switch {
	case c.MaxElements == 0:
		c.MaxElements = def.MaxElements
	case c.MaxElements < 0:
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "max_elements must be positive, got %d", c.MaxElements)
	case c.MaxElements > chain.MaxElements:
		c.MaxElements = chain.MaxElements
	}

	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "format must be one of %s, got %q", strings.Join(report.Formats, ", "), c.Format)
	}
	c.Format = format

	if c.Styled == nil {
		c.Styled = def.Styled
	}
	return c, nil
}
