package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "hxcm"

	// SettingsFileName is the name of the settings file inside the application directory
	SettingsFileName = AppName + ".toml"

	// TargetFolderName is the hidden folder under a target directory that receives applied configs
	TargetFolderName = ".helix"
)

// GetApplicationDirectory returns the hxcm settings directory path.
// Linux: ~/.config/hxcm (via os.UserConfigDir, honours XDG_CONFIG_HOME)
// macOS: ~/Library/Application Support/hxcm
// Windows: C:\Users\{username}\AppData\Roaming\hxcm
func GetApplicationDirectory() (string, error) {
	baseDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	return filepath.Join(baseDir, AppName), nil
}

// GetSettingsFile returns the default settings file path.
func GetSettingsFile() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, SettingsFileName), nil
}

// GetDataDirectory returns the default local configs repository path.
// Linux/others: $XDG_DATA_HOME/hxcm or ~/.local/share/hxcm
// Windows: C:\Users\{username}\AppData\Local\hxcm (via os.UserCacheDir)
func GetDataDirectory() (string, error) {
	if runtime.GOOS == "windows" {
		baseDir, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("failed to get data directory: %w", err)
		}

		return filepath.Join(baseDir, AppName), nil
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, AppName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", AppName), nil
}
