// Package config handles configuration loading and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global tuplepanel directory.
	GlobalDirName = ".tuplepanel"

	// SettingsFileName is the settings file within the global directory.
	SettingsFileName = "settings.yaml"

	// PanelLogFileName is the panel's own diagnostic log file.
	PanelLogFileName = "tuplepanel.log"
)

// DefaultProfile is the Tuple profile used when none is configured.
const DefaultProfile = "0"

// GlobalDir returns the path to the global tuplepanel directory (~/.tuplepanel/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// PanelLogFile returns the path to the panel's diagnostic log.
func PanelLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, PanelLogFileName), nil
}

// TupleLogFile returns the per-profile log the Tuple CLI writes
// (~/.local/share/tuple/<profile>/log.txt).
func TupleLogFile(profile string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if profile == "" {
		profile = DefaultProfile
	}
	return filepath.Join(home, ".local", "share", "tuple", profile, "log.txt"), nil
}

// EnsureGlobalDir creates the global tuplepanel directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
