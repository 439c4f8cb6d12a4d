package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

// renderActions renders the reconciled action list with the selection cursor.
// The join action carries the call-target input on the line below it.
func renderActions(actions []models.Action, cursor int, input textinput.Model) string {
	if len(actions) == 0 {
		return statusDimStyle.Render("(no actions)")
	}

	var lines []string
	for i, a := range actions {
		prefix := "  "
		style := actionStyle
		if i == cursor {
			prefix = "▸ "
			style = selectedActionStyle
		}
		lines = append(lines, prefix+style.Render(a.Label))
		if a.NeedsTarget {
			lines = append(lines, "    "+input.View())
		}
	}
	return strings.Join(lines, "\n")
}
