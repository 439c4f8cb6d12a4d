package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

func TestLoadYAMLOrDefaultMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TupleBinary != "tuple" || s.Profile != "0" {
		t.Errorf("got %+v, want defaults", s)
	}
	if s.PollInterval() != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", s.PollInterval())
	}
	if s.CommandTimeout() != 30*time.Second {
		t.Errorf("CommandTimeout = %v, want 30s", s.CommandTimeout())
	}
	if s.RefreshDelay() != 500*time.Millisecond {
		t.Errorf("RefreshDelay = %v, want 500ms", s.RefreshDelay())
	}
}

func TestLoadYAMLSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `version: 1
tuple_binary: /opt/tuple/bin/tuple
profile: "2"
poll_interval_ms: 1000
command_timeout_sec: 10
refresh_delay_ms: 250
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TupleBinary != "/opt/tuple/bin/tuple" {
		t.Errorf("TupleBinary = %q", s.TupleBinary)
	}
	if s.Profile != "2" {
		t.Errorf("Profile = %q", s.Profile)
	}
	if s.PollInterval() != time.Second {
		t.Errorf("PollInterval = %v, want 1s", s.PollInterval())
	}
	if s.CommandTimeout() != 10*time.Second {
		t.Errorf("CommandTimeout = %v, want 10s", s.CommandTimeout())
	}
}

func TestLoadYAMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadYAMLOrDefault(path, models.NewSettings); err == nil {
		t.Error("malformed YAML should return an error")
	}
}

func TestResolveLogPath(t *testing.T) {
	s := models.NewSettings()
	s.LogPath = "/tmp/custom.log"

	got, err := ResolveLogPath(s)
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/custom.log" {
		t.Errorf("override ignored: got %q", got)
	}

	s.LogPath = ""
	s.Profile = "3"
	got, err = ResolveLogPath(s)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("tuple", "3", "log.txt")
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, want) {
		t.Errorf("got %q, want absolute path ending in %q", got, want)
	}
}
