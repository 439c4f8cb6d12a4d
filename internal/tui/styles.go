package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)
)

// Status panel styles.
var (
	statusOKStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	statusBadStyle  = lipgloss.NewStyle().Foreground(colorRed)
	statusWarnStyle = lipgloss.NewStyle().Foreground(colorYellow)
	statusDimStyle  = lipgloss.NewStyle().Foreground(colorDim)
	urlStyle        = lipgloss.NewStyle().Foreground(colorCyan)
)

// Action list styles.
var (
	actionStyle = lipgloss.NewStyle().Foreground(colorWhite)

	selectedActionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Output pane styles.
var (
	outputCmdStyle  = lipgloss.NewStyle().Foreground(colorDim)
	outputErrStyle  = lipgloss.NewStyle().Foreground(colorRed)
	outputTextStyle = lipgloss.NewStyle()
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
