// Package tuple contains the core logic of the panel: deriving session state
// from the Tuple CLI's log file, mapping state to the controls that are valid
// to present, and invoking the CLI.
package tuple

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/tuplepanel-io/tuplepanel/internal/models"
)

// PersonalURLBase is prepended to the slug from a "personal URL slug" line.
const PersonalURLBase = "https://tuple.app/"

// Markers the parser looks for in log lines. The log has no schema; unknown
// lines are ignored.
const (
	markerAuthYes   = "saved auth token: yes"
	markerAuthNo    = "saved auth token: no"
	markerDaemonUp  = "daemon loop started"
	markerSignaler  = "signaler state changed:"
	markerSlug      = "personal URL slug"
	markerSlugAdded = "added"
	markerCommand   = "command '"
)

// Command tokens that affect call lifecycle and toggles.
const (
	CmdOn      = "on"
	CmdOff     = "off"
	CmdNew     = "new"
	CmdJoin    = "join"
	CmdEnd     = "end"
	CmdMute    = "mute"
	CmdUnmute  = "unmute"
	CmdShare   = "share"
	CmdUnshare = "unshare"
)

// Parser derives a SessionState snapshot from the Tuple log. It is a pure
// function of the file contents plus the previous snapshot: the whole file is
// replayed on every call and nothing is kept between calls.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a parser that reports read faults to log.
func NewParser(log *slog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse replays the log file at path and returns a fresh snapshot.
//
// prev supplies the DaemonRunning fallback used when the log contains neither
// a start nor an off marker. A missing file yields the default state (plus
// that fallback); a file that exists but cannot be read yields prev unchanged
// so the refresh loop keeps its last known state instead of crashing.
func (p *Parser) Parse(path string, prev models.SessionState) models.SessionState {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := models.NewSessionState()
			s.DaemonRunning = prev.DaemonRunning
			return s
		}
		p.log.Warn("cannot open tuple log", "path", path, "error", err)
		return prev
	}
	defer f.Close()

	s, err := p.parse(f, prev)
	if err != nil {
		p.log.Warn("cannot read tuple log", "path", path, "error", err)
		return prev
	}
	return s
}

func (p *Parser) parse(r io.Reader, prev models.SessionState) (models.SessionState, error) {
	s := models.NewSessionState()
	s.DaemonRunning = prev.DaemonRunning

	// InCall is deliberately not carried over: it is reasserted only if the
	// current full-file scan contains a call start with no later end/off.
	started := false
	stopped := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		if strings.Contains(line, markerAuthYes) {
			s.LoggedIn = true
		} else if strings.Contains(line, markerAuthNo) {
			s.LoggedIn = false
		}

		if strings.Contains(line, markerDaemonUp) {
			started = true
			stopped = false
		}

		if rest, ok := after(line, markerSignaler); ok {
			if states := strings.Split(rest, "->"); len(states) > 1 {
				s.SignalerState = strings.TrimSpace(states[1])
			}
		}

		if strings.Contains(line, markerSlug) && strings.Contains(line, markerSlugAdded) {
			if parts := strings.Split(line, "'"); len(parts) >= 2 {
				s.PersonalURL = PersonalURLBase + parts[1]
			}
		}

		if rest, ok := after(line, markerCommand); ok {
			cmd, _, _ := strings.Cut(rest, "'")
			s.LastCommand = cmd
			switch cmd {
			case CmdNew, CmdJoin:
				s.InCall = true
				s.Muted = false
				s.Sharing = false
			case CmdEnd:
				s.InCall = false
				s.Muted = false
				s.Sharing = false
			case CmdMute:
				s.Muted = true
			case CmdUnmute:
				s.Muted = false
			case CmdShare:
				s.Sharing = true
			case CmdUnshare:
				s.Sharing = false
			case CmdOff:
				// Hard reset. A later "daemon loop started" in file order
				// still re-asserts the daemon.
				stopped = true
				started = false
				s.SignalerState = models.SignalerDisconnected
				s.InCall = false
			}
		}
	}
	if err := sc.Err(); err != nil {
		return models.SessionState{}, err
	}

	if stopped {
		s.DaemonRunning = false
	} else if started {
		s.DaemonRunning = true
	}
	return s, nil
}

// after returns the text following the first occurrence of marker.
func after(line, marker string) (string, bool) {
	_, rest, ok := strings.Cut(line, marker)
	return rest, ok
}
