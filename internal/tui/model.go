package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
	"github.com/tuplepanel-io/tuplepanel/internal/tuple"
	"github.com/tuplepanel-io/tuplepanel/internal/watcher"
)

// busyNotice is shown when a command is triggered while one is in flight.
const busyNotice = "A command is already running. Please wait for it to complete."

// Model is the root Bubbletea model for the panel.
type Model struct {
	settings *models.Settings
	parser   *tuple.Parser
	runner   *tuple.Runner
	logPath  string
	log      *slog.Logger

	// Derived state
	state   models.SessionState
	actions []models.Action
	cursor  int

	// Join call input
	joinInput textinput.Model

	// Output pane
	output *OutputView

	// One command in flight at a time.
	commandRunning bool

	// UI state
	width  int
	height int
	err    error
	notice string

	// Collaborators
	program *programRef
	watch   *watcher.Watcher
}

// NewModel creates the initial panel model.
func NewModel(settings *models.Settings, logPath string, log *slog.Logger, w *watcher.Watcher, program *programRef) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter call URL..."
	ti.CharLimit = 200
	ti.Width = 40

	state := models.NewSessionState()
	return Model{
		settings:  settings,
		parser:    tuple.NewParser(log),
		runner:    tuple.NewRunner(settings.TupleBinary, settings.CommandTimeout(), log),
		logPath:   logPath,
		log:       log,
		state:     state,
		actions:   tuple.Reconcile(state),
		joinInput: ti,
		output:    NewOutputView(),
		program:   program,
		watch:     w,
	}
}

// Init returns the initial commands: first parse, poll ticker, log watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		refreshCmd(m.parser, m.logPath, m.state),
		pollTick(m.settings.PollInterval()),
		watchLogCmd(m.watch, m.program),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PollTickMsg:
		return m, tea.Batch(
			refreshCmd(m.parser, m.logPath, m.state),
			pollTick(m.settings.PollInterval()),
		)

	case RefreshNowMsg, LogChangedMsg:
		return m, refreshCmd(m.parser, m.logPath, m.state)

	case StateMsg:
		m.state = msg.State
		m.actions = tuple.Reconcile(msg.State)
		if m.cursor >= len(m.actions) {
			m.cursor = len(m.actions) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		if m.joinInput.Focused() && !m.selectedNeedsTarget() {
			m.joinInput.Blur()
		}
		return m, nil

	case CommandDoneMsg:
		m.commandRunning = false
		m.output.Append(msg.Result.Output, msg.Result.Failed)
		return m, refreshAfter(m.settings.RefreshDelay())

	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case NoticeMsg:
		m.notice = msg.Text
		return m, clearNoticeAfter(3 * time.Second)

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The join input captures text while focused.
	if m.joinInput.Focused() {
		switch {
		case key.Matches(msg, inputKeys.Quit):
			return m, m.doQuit()
		case key.Matches(msg, inputKeys.Cancel):
			m.joinInput.Blur()
			return m, nil
		case key.Matches(msg, inputKeys.Submit):
			cmd := m.submitJoin()
			return m, cmd
		default:
			var cmd tea.Cmd
			m.joinInput, cmd = m.joinInput.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, panelKeys.Quit):
		return m, m.doQuit()

	case key.Matches(msg, panelKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, panelKeys.Down):
		if m.cursor < len(m.actions)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, panelKeys.Trigger):
		cmd := m.triggerSelected()
		return m, cmd

	case key.Matches(msg, panelKeys.CopyURL):
		if m.state.PersonalURL == "" {
			m.notice = "No personal URL yet"
			return m, clearNoticeAfter(3 * time.Second)
		}
		return m, copyURLCmd(m.state.PersonalURL)

	case key.Matches(msg, panelKeys.ClearOutput):
		m.output.Clear()
		return m, nil

	case key.Matches(msg, panelKeys.ScrollUp):
		m.output.PageUp()
		return m, nil

	case key.Matches(msg, panelKeys.ScrollDown):
		m.output.PageDown()
		return m, nil
	}

	return m, nil
}

// triggerSelected issues the selected action's command. The join action first
// focuses its input; a second Enter submits it.
func (m *Model) triggerSelected() tea.Cmd {
	if len(m.actions) == 0 {
		return nil
	}
	a := m.actions[m.cursor]
	if a.NeedsTarget {
		m.joinInput.Focus()
		return textinput.Blink
	}
	return m.runCommand(a.Command, "")
}

func (m *Model) submitJoin() tea.Cmd {
	target, err := tuple.ValidateJoinTarget(m.joinInput.Value())
	if err != nil {
		m.err = err
		return clearErrorAfter(3 * time.Second)
	}
	m.joinInput.Blur()
	return m.runCommand(tuple.CmdJoin, target)
}

// runCommand dispatches one Tuple invocation, rejecting the trigger when one
// is already in flight.
func (m *Model) runCommand(command, target string) tea.Cmd {
	if m.commandRunning {
		m.notice = busyNotice
		return clearNoticeAfter(3 * time.Second)
	}
	m.commandRunning = true
	m.output.AppendCommand(strings.Join(tuple.Argv(m.settings.TupleBinary, command, target), " "))
	return runCommandCmd(m.runner, command, target)
}

func (m *Model) selectedNeedsTarget() bool {
	return m.cursor < len(m.actions) && m.actions[m.cursor].NeedsTarget
}

// doQuit stops the watcher and exits.
func (m *Model) doQuit() tea.Cmd {
	m.watch.Close()
	m.program.Clear()
	return tea.Quit
}

func (m *Model) updateDimensions() {
	inner := m.width - 4 // panel borders + padding
	if inner < 10 {
		inner = 10
	}
	m.joinInput.Width = inner - 6
	m.output.SetSize(inner, m.outputHeight())
}

// outputHeight is what remains after header, status panel, actions and bar.
func (m *Model) outputHeight() int {
	used := 1 + // header
		8 + // status panel with border
		len(m.actions) + 3 + // action list with border, join input line
		2 + // output border
		1 // status bar
	h := m.height - used
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the panel.
func (m Model) View() string {
	if m.width < 40 || m.height < 20 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render("Terminal too small (need 40x20)")
	}

	inner := m.width - 4
	if inner < 10 {
		inner = 10
	}

	header := headerStyle.Render(" ● Tuple") +
		statusDimStyle.Render("  profile "+m.settings.Profile)

	status := panelBorderStyle.Width(inner).Render(renderStatusPanel(m.state))
	actions := panelBorderStyle.Width(inner).Render(
		panelTitleStyle.Render("Actions") + "\n" +
			renderActions(m.actions, m.cursor, m.joinInput))
	output := panelBorderStyle.Width(inner).Render(
		panelTitleStyle.Render("Output") + "\n" + m.output.View())

	bar := renderStatusBar(&m, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, status, actions, output, bar)
}
