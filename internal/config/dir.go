// Package config provides the configuration file and directory handling for notion-llms-txt.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the notion-llms-txt configuration directory.
//
// Resolution:
//   - $NOTION_LLMS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/notion-llms-txt if set (respects XDG on any platform)
//   - %AppData%/notion-llms-txt on Windows
//   - ~/.config/notion-llms-txt on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("NOTION_LLMS_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "notion-llms-txt")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "notion-llms-txt")
		}
	}

	// macOS and Linux: ~/.config/notion-llms-txt
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "notion-llms-txt")
}
