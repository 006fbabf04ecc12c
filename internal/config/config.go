// pattern: Imperative Shell

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

const appName = "treeview"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Config struct {
	Theme      string     `yaml:"theme"`
	LogLevel   string     `yaml:"log_level"`
	Color      string     `yaml:"color"`
	Highlight  string     `yaml:"highlight"`
	MarkSuffix string     `yaml:"mark_suffix"`
	ShowHelp   bool       `yaml:"show_help"`
	Keys       KeysConfig `yaml:"keys"`
}

// KeysConfig overrides key bindings per action. An empty list keeps the
// default keys for that action.
type KeysConfig struct {
	Quit     []string `yaml:"quit"`
	Up       []string `yaml:"up"`
	Down     []string `yaml:"down"`
	Describe []string `yaml:"describe"`
	Toggle   []string `yaml:"toggle"`
	Expand   []string `yaml:"expand"`
	Collapse []string `yaml:"collapse"`
	Mark     []string `yaml:"mark"`
	Help     []string `yaml:"help"`
}

func DefaultConfig() Config {
	return Config{
		Theme:      "mocha",
		LogLevel:   "info",
		Color:      ColorAuto,
		MarkSuffix: " *",
		ShowHelp:   true,
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

// LoadFromDir loads config.yaml from dir.
func LoadFromDir(dir string) (Config, error) {
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", configPath, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Color == "" {
		c.Color = def.Color
	}
}

// Validate checks enumerated and formatted fields.
func (c *Config) Validate() error {
	switch c.Theme {
	case "latte", "frappe", "macchiato", "mocha":
	default:
		return fmt.Errorf("theme must be one of latte, frappe, macchiato, mocha, got: %s", c.Theme)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be 'auto', 'always' or 'never', got: %s", c.Color)
	}

	if c.Highlight != "" && !hexColorPattern.MatchString(c.Highlight) {
		return fmt.Errorf("highlight must be a #rrggbb color, got: %s", c.Highlight)
	}

	return nil
}

// DataDir returns the directory holding the log file. An explicit config
// directory doubles as the data directory.
func DataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "state", appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName, "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appName, "config.yaml")
	}

	return filepath.Join(home, ".config", appName, "config.yaml")
}
