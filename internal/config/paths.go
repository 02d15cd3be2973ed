package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Paths contains commonly used file paths.
type Paths struct {
	Database string // Session/state SQLite database
	LogFile  string // Application log file
}

// GetPaths returns all commonly used paths based on config.
func GetPaths(cfg *Config) Paths {
	return Paths{
		Database: filepath.Join(cfg.BaseDir, "skilldeck.db"),
		LogFile:  filepath.Join(cfg.BaseDir, "skilldeck.log"),
	}
}

// DefaultBaseDir returns the default base directory under the XDG data
// home (falling back to ~/.skilldeck when XDG resolution fails).
func DefaultBaseDir() string {
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "skilldeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".skilldeck"
	}
	return filepath.Join(home, ".skilldeck")
}
