package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type logDirResolverOptions struct {
	GOOS         string
	getenv       func(string) string
	userHomeDir  func() (string, error)
	userCacheDir func() (string, error)
}

func defaultLogDir() string {
	return resolveDefaultLogDir(logDirResolverOptions{})
}

func resolveDefaultLogDir(opts logDirResolverOptions) string {
	goos := strings.TrimSpace(opts.GOOS)
	if goos == "" {
		goos = runtime.GOOS
	}

	getenv := opts.getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	userHomeDir := opts.userHomeDir
	if userHomeDir == nil {
		userHomeDir = os.UserHomeDir
	}

	userCacheDir := opts.userCacheDir
	if userCacheDir == nil {
		userCacheDir = os.UserCacheDir
	}

	switch goos {
	case "windows":
		if localAppData := strings.TrimSpace(getenv("LOCALAPPDATA")); localAppData != "" {
			return filepath.Join(localAppData, "knock", "Logs")
		}

		cacheDir, err := userCacheDir()
		if err != nil || strings.TrimSpace(cacheDir) == "" {
			return "logs"
		}
		return filepath.Join(cacheDir, "knock", "Logs")
	case "darwin":
		home, err := userHomeDir()
		if err != nil || strings.TrimSpace(home) == "" {
			return "logs"
		}
		return filepath.Join(home, "Library", "Logs", "knock")
	default:
		if stateHome := strings.TrimSpace(getenv("XDG_STATE_HOME")); stateHome != "" {
			return filepath.Join(stateHome, "knock", "logs")
		}

		home, err := userHomeDir()
		if err != nil || strings.TrimSpace(home) == "" {
			return "logs"
		}
		return filepath.Join(home, ".local", "state", "knock", "logs")
	}
}
