package tuple

import (
	"errors"
	"testing"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

func labels(actions []models.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label
	}
	return out
}

func TestReconcileDaemonOff(t *testing.T) {
	s := models.NewSessionState()

	actions := Reconcile(s)
	if len(actions) != 1 {
		t.Fatalf("daemon off: got %d actions %v, want 1", len(actions), labels(actions))
	}
	if actions[0].Label != "Start Daemon" || actions[0].Command != CmdOn {
		t.Errorf("got %+v, want the start-daemon action", actions[0])
	}
}

func TestReconcileIdle(t *testing.T) {
	s := models.NewSessionState()
	s.DaemonRunning = true

	actions := Reconcile(s)
	want := []string{"Join Call", "New Call", "Stop Daemon"}
	got := labels(actions)
	if len(got) != len(want) {
		t.Fatalf("idle: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !actions[0].NeedsTarget {
		t.Error("join action must require a target")
	}
	if actions[2].Command != CmdOff {
		t.Errorf("stop daemon issues %q, want %q", actions[2].Command, CmdOff)
	}
}

func TestReconcileInCall(t *testing.T) {
	s := models.NewSessionState()
	s.DaemonRunning = true
	s.InCall = true

	actions := Reconcile(s)
	want := []string{"End Call", "Share Screen", "Mute", "Stop Daemon"}
	got := labels(actions)
	if len(got) != len(want) {
		t.Fatalf("in call: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if actions[1].Command != CmdShare || actions[2].Command != CmdMute {
		t.Errorf("toggle commands = %q/%q, want share/mute", actions[1].Command, actions[2].Command)
	}
}

func TestReconcileToggleLabels(t *testing.T) {
	s := models.NewSessionState()
	s.DaemonRunning = true
	s.InCall = true
	s.Muted = true
	s.Sharing = true

	actions := Reconcile(s)
	if actions[1].Label != "Unshare Screen" || actions[1].Command != CmdUnshare {
		t.Errorf("sharing toggle = %+v, want Unshare Screen/unshare", actions[1])
	}
	if actions[2].Label != "Unmute" || actions[2].Command != CmdUnmute {
		t.Errorf("mute toggle = %+v, want Unmute/unmute", actions[2])
	}
}

func TestReconcileNeverLeaksActions(t *testing.T) {
	callCommands := map[string]bool{CmdEnd: true, CmdMute: true, CmdUnmute: true, CmdShare: true, CmdUnshare: true}

	// Not in call: no call controls in either daemon state.
	for _, daemon := range []bool{false, true} {
		s := models.NewSessionState()
		s.DaemonRunning = daemon
		for _, a := range Reconcile(s) {
			if callCommands[a.Command] {
				t.Errorf("daemon=%v: call control %q leaked while not in call", daemon, a.Command)
			}
		}
	}

	// Daemon running: the start action must never appear.
	s := models.NewSessionState()
	s.DaemonRunning = true
	for _, inCall := range []bool{false, true} {
		s.InCall = inCall
		for _, a := range Reconcile(s) {
			if a.Command == CmdOn {
				t.Errorf("inCall=%v: start-daemon action leaked while daemon is running", inCall)
			}
		}
	}
}

func TestValidateJoinTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://tuple.app/alice", "https://tuple.app/alice", false},
		{"  https://tuple.app/alice  ", "https://tuple.app/alice", false},
		{"", "", true},
		{"   ", "", true},
		{"\t\n", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateJoinTarget(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrEmptyJoinTarget) {
				t.Errorf("ValidateJoinTarget(%q) err = %v, want ErrEmptyJoinTarget", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateJoinTarget(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ValidateJoinTarget(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
