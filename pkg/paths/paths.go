// Package paths provides centralized path handling for neaten.
// It resolves user supplied destinations to absolute paths and locates
// neaten's own settings and log files following the XDG Base Directory
// specification.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/neaten/pkg/errors"
)

// Environment variable names
const (
	// EnvNeatenConfigDir overrides the XDG config directory for neaten
	EnvNeatenConfigDir = "NEATEN_CONFIG_DIR"

	// EnvNeatenConfigFile points at a settings file outside the config directory
	EnvNeatenConfigFile = "NEATEN_CONFIG_FILE"

	// EnvNeatenStateDir overrides the XDG state directory for neaten
	EnvNeatenStateDir = "NEATEN_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// NeatenDirName is the directory name for neaten-specific files
	NeatenDirName = "neaten"

	// SettingsFileName is the name of the user settings file
	SettingsFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "neaten.log"
)

// ConfigDir returns the directory holding the user settings file.
func ConfigDir() string {
	if dir := os.Getenv(EnvNeatenConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, NeatenDirName)
}

// SettingsFile returns the path of the user settings file. The file may
// not exist.
func SettingsFile() string {
	if file := os.Getenv(EnvNeatenConfigFile); file != "" {
		return ExpandHome(file)
	}
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// StateDir returns the directory for state files such as the log.
func StateDir() string {
	if dir := os.Getenv(EnvNeatenStateDir); dir != "" {
		return ExpandHome(dir)
	}
	// xdg caches its values at init, so honour a late XDG_STATE_HOME
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, NeatenDirName)
	}
	return filepath.Join(xdg.StateHome, NeatenDirName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Resolve returns an absolute, cleaned version of path. A leading ~ is
// expanded and relative paths are joined to the directory returned by getwd.
func Resolve(path string, getwd func() (string, error)) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path is empty")
	}

	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if getwd == nil {
		getwd = os.Getwd
	}
	cwd, err := getwd()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
	}
	return filepath.Join(cwd, path), nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// ~user forms are left alone
	if !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
