package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
	"github.com/tuplepanel-io/tuplepanel/internal/tuple"
	"github.com/tuplepanel-io/tuplepanel/internal/watcher"
)

func refreshCmd(p *tuple.Parser, path string, prev models.SessionState) tea.Cmd {
	return func() tea.Msg {
		return StateMsg{State: p.Parse(path, prev)}
	}
}

func runCommandCmd(r *tuple.Runner, command, target string) tea.Cmd {
	return func() tea.Msg {
		return CommandDoneMsg{Result: r.Run(context.Background(), command, target)}
	}
}

// watchLogCmd forwards watcher events into the program until the watcher is
// closed on quit.
func watchLogCmd(w *watcher.Watcher, program *programRef) tea.Cmd {
	return func() tea.Msg {
		go func() {
			for range w.Events() {
				program.Send(LogChangedMsg{})
			}
		}()
		return nil
	}
}

func copyURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to copy URL: %w", err)}
		}
		return NoticeMsg{Text: "URL copied to clipboard"}
	}
}

func pollTick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(_ time.Time) tea.Msg {
		return PollTickMsg{}
	})
}

// refreshAfter schedules the post-command re-parse, delayed so the CLI can
// finish writing its log first.
func refreshAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RefreshNowMsg{}
	})
}

func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

func clearNoticeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return ClearNoticeMsg{}
	})
}
