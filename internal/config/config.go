package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Notification NotificationConfig `yaml:"notification"`
	Idle         IdleConfig         `yaml:"idle"`
	Sound        SoundConfig        `yaml:"sound"`
	Assets       AssetsConfig       `yaml:"assets"`
	Logging      LoggingConfig      `yaml:"logging"`
}

type NotificationConfig struct {
	Title      string `yaml:"title"`
	InputTitle string `yaml:"input_title"`
	DisplayMs  int    `yaml:"display_ms"`
	FadeMs     int    `yaml:"fade_ms"`

	// SuppressWhenFocused skips the toast entirely when the window that
	// triggered it is already in the foreground (user is watching).
	SuppressWhenFocused bool `yaml:"suppress_when_focused"`
}

type IdleConfig struct {
	// ThresholdSeconds is how long without keyboard/mouse input the user
	// must be before the toast display time is extended.
	ThresholdSeconds int `yaml:"threshold_seconds"`
	ExtendDisplayMs  int `yaml:"extend_display_ms"`
}

type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

type AssetsConfig struct {
	// Dir overrides the asset search root. Empty means <exe dir>/assets.
	Dir string `yaml:"dir"`
}

type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Notification: NotificationConfig{
			Title:               "knock knock!",
			InputTitle:          "Input required",
			DisplayMs:           3000,
			FadeMs:              1000,
			SuppressWhenFocused: true,
		},
		Idle: IdleConfig{
			ThresholdSeconds: 120,
			ExtendDisplayMs:  3000,
		},
		Sound: SoundConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        defaultLogDir(),
			MaxSizeMB:  5,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(configDir, "knock"), nil
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from disk, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil // return defaults if we can't determine path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // no config file, use defaults
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config at %s: %w", path, err)
	}

	return cfg, nil
}

// Init creates a default config file if one doesn't exist.
func Init() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
