package models

// Signaler states the Tuple daemon reports. The token set is open ended; the
// parser stores whatever the log says and the UI treats unrecognized values
// as neutral.
const (
	SignalerUnknown       = "unknown"
	SignalerConnected     = "connected"
	SignalerConnecting    = "connecting"
	SignalerSynchronizing = "synchronizing"
	SignalerDisconnected  = "disconnected"
)

// SessionState is a snapshot of the Tuple session as inferred from its log
// file. It is rebuilt from scratch on every refresh.
type SessionState struct {
	// LoggedIn reflects the most recent auth-token line.
	LoggedIn bool

	// DaemonRunning is the only field carried across refreshes when the log
	// is silent about the daemon.
	DaemonRunning bool

	// SignalerState is the right-hand side of the latest transition line.
	SignalerState string

	// PersonalURL is the user's reusable call link, once the log reveals it.
	PersonalURL string

	InCall      bool
	LastCommand string

	// Muted and Sharing track in-call toggles. Both reset when a call starts
	// or ends.
	Muted   bool
	Sharing bool
}

// NewSessionState returns the default snapshot: logged out, daemon off,
// signaler unknown.
func NewSessionState() SessionState {
	return SessionState{
		SignalerState: SignalerUnknown,
	}
}
