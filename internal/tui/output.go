package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/x/ansi"
)

// OutputView shows issued commands and their captured output. Failed command
// output is rendered in red; the view sticks to the bottom unless the user
// has scrolled away.
type OutputView struct {
	viewport     viewport.Model
	lines        []string
	width        int
	userScrolled bool
}

// NewOutputView creates an empty output pane.
func NewOutputView() *OutputView {
	vp := viewport.New(80, 10)
	return &OutputView{viewport: vp}
}

// SetSize updates the pane dimensions.
func (o *OutputView) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	o.width = width
	o.viewport.Width = width
	o.viewport.Height = height
	o.refresh()
}

// AppendCommand echoes the command line being issued.
func (o *OutputView) AppendCommand(cmd string) {
	o.lines = append(o.lines, outputCmdStyle.Render("$ "+cmd))
	o.refresh()
}

// Append adds captured command output, one styled line per log line.
func (o *OutputView) Append(text string, failed bool) {
	style := outputTextStyle
	if failed {
		style = outputErrStyle
	}
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		o.lines = append(o.lines, style.Render(line))
	}
	o.refresh()
}

// AppendNotice adds a single informational line.
func (o *OutputView) AppendNotice(text string) {
	o.lines = append(o.lines, outputCmdStyle.Render(text))
	o.refresh()
}

// Clear empties the pane.
func (o *OutputView) Clear() {
	o.lines = nil
	o.userScrolled = false
	o.refresh()
}

// PageUp scrolls up and pins the view until PageDown reaches the bottom again.
func (o *OutputView) PageUp() {
	o.viewport.HalfPageUp()
	o.userScrolled = !o.viewport.AtBottom()
}

// PageDown scrolls down; reaching the bottom re-enables auto-follow.
func (o *OutputView) PageDown() {
	o.viewport.HalfPageDown()
	o.userScrolled = !o.viewport.AtBottom()
}

// View renders the pane content.
func (o *OutputView) View() string {
	return o.viewport.View()
}

func (o *OutputView) refresh() {
	truncated := make([]string, len(o.lines))
	for i, line := range o.lines {
		truncated[i] = ansi.Truncate(line, o.width, "…")
	}
	o.viewport.SetContent(strings.Join(truncated, "\n"))
	if !o.userScrolled {
		o.viewport.GotoBottom()
	}
}
