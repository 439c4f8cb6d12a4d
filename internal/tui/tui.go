// Package tui implements the interactive status panel for the Tuple CLI.
package tui

import (
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
	"github.com/tuplepanel-io/tuplepanel/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the panel against the given Tuple log file.
func Run(settings *models.Settings, logPath string, log *slog.Logger) error {
	ref := &programRef{}
	w := watcher.New(logPath, log)
	defer w.Close()

	model := NewModel(settings, logPath, log, w, ref)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	_, err := p.Run()
	return err
}
