// Package cli implements the tuplepanel CLI commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuplepanel-io/tuplepanel/internal/config"
	"github.com/tuplepanel-io/tuplepanel/internal/logging"
	"github.com/tuplepanel-io/tuplepanel/internal/tui"
)

var flagProfile string

var rootCmd = &cobra.Command{
	Use:   "tuplepanel",
	Short: "Status panel and remote control for the Tuple CLI",
	Long: `Tuplepanel tails the Tuple CLI's log file, derives the current session
state from it, and presents a small always-current control panel for
starting the daemon, joining and ending calls, and toggling mute and
screen sharing.`,
	RunE: runPanel,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Tuple profile whose log is tailed")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

func runPanel(cmd *cobra.Command, args []string) error {
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

	if err := config.EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	panelLog, err := config.PanelLogFile()
	if err != nil {
		return err
	}
	log, closer := logging.New(panelLog, logging.ParseLevel(settings.LogLevel))
	defer closer.Close()

	log.Info("panel starting", "log_path", logPath, "profile", settings.Profile)
	return tui.Run(settings, logPath, log)
}
