package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hintermann/knock/internal/config"
	"github.com/hintermann/knock/internal/hook"
	"github.com/hintermann/knock/internal/logging"
	"github.com/hintermann/knock/internal/state"
	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:    "cleanup",
	Hidden: true,
	Short:  "Remove saved session state (SessionEnd hook)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		initializeCommandLogging(cmd.ErrOrStderr(), cfg.Logging, logging.RoleCLI)

		payload := hook.Read(cmd.InOrStdin())
		if payload.SessionID == "" {
			return nil
		}

		if err := state.Delete(payload.SessionID); err != nil {
			slog.Warn("delete state file", "error", err, "session", payload.SessionID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
