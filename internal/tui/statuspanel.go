package tui

import (
	"strings"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

// renderStatusPanel renders the session summary lines: login, daemon,
// signaler phase, call, mic and personal URL.
func renderStatusPanel(s models.SessionState) string {
	var lines []string

	if s.LoggedIn {
		lines = append(lines, statusOKStyle.Render("✓ Logged In"))
	} else {
		lines = append(lines, statusBadStyle.Render("✗ Not Logged In"))
	}

	if s.DaemonRunning {
		lines = append(lines, statusOKStyle.Render("✓ Daemon Running"))
	} else {
		lines = append(lines, statusDimStyle.Render("✗ Daemon Off"))
	}

	lines = append(lines, renderSignaler(s.SignalerState))

	if s.InCall {
		lines = append(lines, statusOKStyle.Render("✓ In Call"))
	} else {
		lines = append(lines, statusDimStyle.Render("No Call"))
	}

	// Mic state is meaningless outside a call.
	switch {
	case !s.InCall:
		lines = append(lines, statusDimStyle.Render("Mic: N/A"))
	case s.Muted:
		lines = append(lines, statusBadStyle.Render("Muted"))
	default:
		lines = append(lines, statusOKStyle.Render("Unmuted"))
	}

	if s.PersonalURL != "" {
		lines = append(lines, urlStyle.Render(s.PersonalURL))
	} else {
		lines = append(lines, statusDimStyle.Render("No URL"))
	}

	return strings.Join(lines, "\n")
}

func renderSignaler(state string) string {
	label := titleCase(state)
	switch state {
	case models.SignalerConnected:
		return statusOKStyle.Render("✓ " + label)
	case models.SignalerConnecting, models.SignalerSynchronizing:
		return statusWarnStyle.Render(label)
	default:
		return statusDimStyle.Render(label)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
