package tui

import (
	"github.com/tuplepanel-io/tuplepanel/internal/models"
	"github.com/tuplepanel-io/tuplepanel/internal/tuple"
)

// StateMsg carries a freshly parsed session snapshot.
type StateMsg struct {
	State models.SessionState
}

// CommandDoneMsg carries the captured outcome of a Tuple invocation.
type CommandDoneMsg struct {
	Result tuple.Result
}

// LogChangedMsg signals the watcher saw the Tuple log change.
type LogChangedMsg struct{}

// PollTickMsg is the periodic refresh tick.
type PollTickMsg struct{}

// RefreshNowMsg requests an immediate re-parse (delayed post-command refresh).
type RefreshNowMsg struct{}

// ErrorMsg carries an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}

// NoticeMsg carries a transient informational notice.
type NoticeMsg struct {
	Text string
}

// ClearNoticeMsg clears the notice display.
type ClearNoticeMsg struct{}
