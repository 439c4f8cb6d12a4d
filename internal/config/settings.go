package config

import (
	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

// LoadSettings loads panel settings from ~/.tuplepanel/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// ResolveLogPath returns the Tuple log location for the given settings:
// the explicit override when set, otherwise the per-profile default.
func ResolveLogPath(s *models.Settings) (string, error) {
	if s.LogPath != "" {
		return s.LogPath, nil
	}
	return TupleLogFile(s.Profile)
}
