package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.nibble)
	ConfigDir string

	// ConfigFile is the settings file (~/.nibble/config.toml)
	ConfigFile string

	// KeybindsFile is the key binding overrides file (~/.nibble/keybinds.json)
	KeybindsFile string

	// LogDir holds the application log
	LogDir string
)

// Initialize sets up the global paths under ~/.nibble.
// Only the directory is created; every file in it is optional.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".nibble")
	ConfigFile = filepath.Join(ConfigDir, "config.toml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogDir = filepath.Join(ConfigDir, "logs")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// LogFile returns the default application log path
func LogFile() string {
	return filepath.Join(LogDir, "nibble.log")
}
