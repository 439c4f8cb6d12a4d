package tuple

import (
	"errors"
	"strings"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

// ErrEmptyJoinTarget is returned when a join is triggered with no call URL.
var ErrEmptyJoinTarget = errors.New("call URL is required")

// Reconcile maps a session snapshot to the ordered list of controls valid for
// it. It is memoryless: the full list is recomputed on every refresh instead
// of rebinding handlers per state.
//
// Three mutually exclusive presentation states exist: daemon off, daemon on
// but idle, and in a call. Controls invalid for the state are omitted, never
// disabled.
func Reconcile(s models.SessionState) []models.Action {
	if !s.DaemonRunning {
		return []models.Action{
			{Label: "Start Daemon", Command: CmdOn},
		}
	}

	if !s.InCall {
		return []models.Action{
			{Label: "Join Call", Command: CmdJoin, NeedsTarget: true},
			{Label: "New Call", Command: CmdNew},
			{Label: "Stop Daemon", Command: CmdOff},
		}
	}

	share := models.Action{Label: "Share Screen", Command: CmdShare}
	if s.Sharing {
		share = models.Action{Label: "Unshare Screen", Command: CmdUnshare}
	}
	mute := models.Action{Label: "Mute", Command: CmdMute}
	if s.Muted {
		mute = models.Action{Label: "Unmute", Command: CmdUnmute}
	}

	return []models.Action{
		{Label: "End Call", Command: CmdEnd},
		share,
		mute,
		{Label: "Stop Daemon", Command: CmdOff},
	}
}

// ValidateJoinTarget trims and checks the join input. An empty target is a
// validation failure; the command must not be issued.
func ValidateJoinTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", ErrEmptyJoinTarget
	}
	return t, nil
}
