package models

// Action is one control the panel offers for the current session state.
type Action struct {
	// Label is the text shown in the action list.
	Label string

	// Command is the Tuple CLI subcommand the action issues.
	Command string

	// NeedsTarget marks actions that require a call URL before dispatch.
	NeedsTarget bool
}
