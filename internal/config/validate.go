package config

import (
	"fmt"
	"strings"
)

// Validate enforces required values before any command runs with them.
func Validate(cfg Config) error {
	if cfg.Notification.DisplayMs <= 0 {
		return fmt.Errorf("notification.display_ms must be greater than 0")
	}

	if cfg.Notification.FadeMs <= 0 {
		return fmt.Errorf("notification.fade_ms must be greater than 0")
	}

	if cfg.Idle.ThresholdSeconds < 0 {
		return fmt.Errorf("idle.threshold_seconds must not be negative")
	}

	if cfg.Idle.ExtendDisplayMs < 0 {
		return fmt.Errorf("idle.extend_display_ms must not be negative")
	}

	return validateLogging(cfg.Logging)
}

func validateLogging(logging LoggingConfig) error {
	switch strings.ToLower(logging.Level) {
	case "error", "warn", "info", "debug":
		// valid
	default:
		return fmt.Errorf("logging.level must be one of error, warn, info, debug")
	}

	if logging.MaxSizeMB <= 0 {
		return fmt.Errorf("logging.max_size_mb must be greater than 0")
	}

	if logging.MaxBackups <= 0 {
		return fmt.Errorf("logging.max_backups must be greater than 0")
	}

	if strings.TrimSpace(logging.Dir) == "" {
		return fmt.Errorf("logging.dir is required")
	}

	return nil
}
