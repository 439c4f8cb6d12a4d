package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	// Validation/read errors take precedence.
	if m.err != nil {
		return statusBarStyle.
			Background(colorRed).
			Width(width).
			Render(" " + m.err.Error())
	}

	// Transient notices (busy, URL copied).
	if m.notice != "" {
		return statusBarStyle.
			Background(colorYellow).
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
			Width(width).
			Render(" " + m.notice)
	}

	left := " " + keyHints(m)

	right := ""
	if m.commandRunning {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("● Running") + " "
	} else {
		right = lipgloss.NewStyle().Foreground(colorDim).Render("● Idle") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func keyHints(m *Model) string {
	if m.joinInput.Focused() {
		return keyHint("Enter", "join") + "  " + keyHint("Esc", "cancel")
	}

	base := keyHint("q", "quit") + "  " + keyHint("j/k", "navigate") + "  " +
		keyHint("Enter", "trigger")
	if m.state.PersonalURL != "" {
		base += "  " + keyHint("c", "copy URL")
	}
	return base + "  " + keyHint("C", "clear") + "  " + keyHint("PgUp/PgDn", "scroll")
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
