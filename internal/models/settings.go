package models

import "time"

// Settings represents panel configuration.
// This corresponds to ~/.tuplepanel/settings.yaml.
type Settings struct {
	Version int `yaml:"version"`

	// TupleBinary is the executable invoked for every command. Empty means
	// lookup "tuple" in PATH.
	TupleBinary string `yaml:"tuple_binary"`

	// Profile selects the Tuple profile whose log is tailed.
	Profile string `yaml:"profile"`

	// LogPath overrides the derived per-profile log location when set.
	LogPath string `yaml:"log_path,omitempty"`

	PollIntervalMS    int    `yaml:"poll_interval_ms"`
	CommandTimeoutSec int    `yaml:"command_timeout_sec"`
	RefreshDelayMS    int    `yaml:"refresh_delay_ms"`
	LogLevel          string `yaml:"log_level"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:           1,
		TupleBinary:       "tuple",
		Profile:           "0",
		PollIntervalMS:    2000,
		CommandTimeoutSec: 30,
		RefreshDelayMS:    500,
		LogLevel:          "info",
	}
}

// PollInterval returns the refresh cadence as a duration.
func (s *Settings) PollInterval() time.Duration {
	if s.PollIntervalMS <= 0 {
		return 2 * time.Second
	}
	return time.Duration(s.PollIntervalMS) * time.Millisecond
}

// CommandTimeout returns the per-command execution deadline.
func (s *Settings) CommandTimeout() time.Duration {
	if s.CommandTimeoutSec <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.CommandTimeoutSec) * time.Second
}

// RefreshDelay returns how long to wait after a command completes before
// re-parsing the log, so the CLI has a chance to finish writing it.
func (s *Settings) RefreshDelay() time.Duration {
	if s.RefreshDelayMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(s.RefreshDelayMS) * time.Millisecond
}
