package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeslides/log"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yaml"
	envPrefix      = "CODESLIDES_"
)

// ThemeMode is the user's theme preference. ThemeSystem follows the terminal
// background.
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeDark   ThemeMode = "dark"
	ThemeLight  ThemeMode = "light"
)

var validThemes = map[ThemeMode]bool{
	ThemeSystem: true,
	ThemeDark:   true,
	ThemeLight:  true,
}

// SupportedLanguages are loaded into the highlighter at start-up.
var SupportedLanguages = []string{"javascript", "typescript", "tsx", "jsx"}

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".codeslides"), nil
}

// DefaultPath returns the config file location inside GetConfigDir.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Config represents the application configuration
type Config struct {
	// DefaultDeck is the deck shown at start-up. Empty means the first built-in deck.
	DefaultDeck string `yaml:"default_deck" koanf:"default_deck"`
	// Theme is one of system, dark or light.
	Theme ThemeMode `yaml:"theme" koanf:"theme"`
	// DarkStyle and LightStyle are the highlighter styles used per resolved theme.
	DarkStyle  string `yaml:"dark_style" koanf:"dark_style"`
	LightStyle string `yaml:"light_style" koanf:"light_style"`
	// Language is the highlighter language used for slide code.
	Language string `yaml:"language" koanf:"language"`
	// AnimationDurationMs is the length of a slide transition.
	AnimationDurationMs int `yaml:"animation_duration_ms" koanf:"animation_duration_ms"`
	// AnimationStagger spreads the start of inserted lines over this share of the duration.
	AnimationStagger float64 `yaml:"animation_stagger" koanf:"animation_stagger"`
	LineNumbers      bool    `yaml:"line_numbers" koanf:"line_numbers"`
	// SplitView is the initial split view state of the presenter.
	SplitView bool `yaml:"split_view" koanf:"split_view"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultDeck:         "",
		Theme:               ThemeSystem,
		DarkStyle:           "monokai",
		LightStyle:          "github",
		Language:            "tsx",
		AnimationDurationMs: 800,
		AnimationStagger:    0.3,
		LineNumbers:         true,
		SplitView:           true,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CODESLIDES_*). A missing file is created
// with the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if os.IsNotExist(err) {
		if saveErr := cfg.Save(path); saveErr != nil {
			log.WarningLog.Printf("failed to save default config: %v", saveErr)
		}
	} else {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of system, dark, light", c.Theme)
	}
	if c.DarkStyle == "" || c.LightStyle == "" {
		return fmt.Errorf("dark_style and light_style are required")
	}
	supported := false
	for _, lang := range SupportedLanguages {
		if lang == c.Language {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("invalid language %q: must be one of %s", c.Language, strings.Join(SupportedLanguages, ", "))
	}
	if c.AnimationDurationMs < 0 {
		return fmt.Errorf("animation_duration_ms must be non-negative")
	}
	if c.AnimationStagger < 0 || c.AnimationStagger > 1 {
		return fmt.Errorf("animation_stagger must be between 0 and 1")
	}
	return nil
}

// Styles returns every highlighter style the configuration can ask for.
func (c *Config) Styles() []string {
	if c.DarkStyle == c.LightStyle {
		return []string{c.DarkStyle}
	}
	return []string{c.DarkStyle, c.LightStyle}
}

// StyleFor returns the highlighter style for a resolved dark or light theme.
func (c *Config) StyleFor(dark bool) string {
	if dark {
		return c.DarkStyle
	}
	return c.LightStyle
}
