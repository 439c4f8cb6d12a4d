package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuplepanel-io/tuplepanel/internal/config"
	"github.com/tuplepanel-io/tuplepanel/internal/logging"
	"github.com/tuplepanel-io/tuplepanel/internal/models"
	"github.com/tuplepanel-io/tuplepanel/internal/tuple"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current Tuple session state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if flagProfile != "" {
		settings.Profile = flagProfile
	}

	logPath, err := config.ResolveLogPath(settings)
	if err != nil {
		return fmt.Errorf("failed to resolve tuple log path: %w", err)
	}

	parser := tuple.NewParser(logging.Discard())
	state := parser.Parse(logPath, models.NewSessionState())

	fmt.Printf("Log:       %s\n", logPath)
	fmt.Printf("Logged in: %s\n", yesNo(state.LoggedIn))
	fmt.Printf("Daemon:    %s\n", onOff(state.DaemonRunning))
	fmt.Printf("Signaler:  %s\n", state.SignalerState)
	fmt.Printf("In call:   %s\n", yesNo(state.InCall))
	if state.InCall {
		fmt.Printf("Mic:       %s\n", mutedLabel(state.Muted))
		fmt.Printf("Sharing:   %s\n", yesNo(state.Sharing))
	}
	if state.PersonalURL != "" {
		fmt.Printf("URL:       %s\n", state.PersonalURL)
	}

	fmt.Println("\nAvailable actions:")
	for _, a := range tuple.Reconcile(state) {
		fmt.Printf("  %-16s tuple %s\n", a.Label, a.Command)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "running"
	}
	return "off"
}

func mutedLabel(muted bool) string {
	if muted {
		return "muted"
	}
	return "unmuted"
}
