package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hintermann/knock/internal/config"
	"github.com/hintermann/knock/internal/focus"
	"github.com/hintermann/knock/internal/hook"
	"github.com/hintermann/knock/internal/logging"
	"github.com/hintermann/knock/internal/spawn"
	"github.com/hintermann/knock/internal/state"
	"github.com/spf13/cobra"
)

var notifySession string

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Show the completion toast (Stop hook)",
	Long: `Show a toast announcing that the agent finished. The session id comes
from the hook payload on stdin, or from --session for integrations that
have no payload (the opencode plugin).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotify(cmd, false)
	},
}

var inputCmd = &cobra.Command{
	Use:    "input",
	Hidden: true,
	Short:  "Show the needs-input toast (Notification hook)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNotify(cmd, true)
	},
}

func runNotify(cmd *cobra.Command, input bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	initializeCommandLogging(cmd.ErrOrStderr(), cfg.Logging, logging.RoleCLI)

	payload := hook.Read(cmd.InOrStdin())
	session := payload.SessionID
	if session == "" {
		session = notifySession
	}

	if suppressed(cfg, session) {
		slog.Info("caller window focused, suppressing toast", "session", session)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve own executable: %w", err)
	}

	argv := []string{exe, "show", "--session", session}
	if input {
		argv = append(argv, "--input")
	}
	if payload.Message != "" {
		argv = append(argv, "--message", payload.Message)
	}

	if err := spawn.Detached(argv); err != nil {
		return fmt.Errorf("spawn toast process: %w", err)
	}

	slog.Debug("toast process spawned", "session", session, "input", input)
	return nil
}

// suppressed reports whether the toast should be skipped because the
// user is already looking at the caller's window.
func suppressed(cfg config.Config, session string) bool {
	if !cfg.Notification.SuppressWhenFocused || session == "" {
		return false
	}

	st, err := state.Load(session, state.DefaultProbes())
	if err != nil || st.Target == 0 {
		return false
	}
	return st.Target == focus.Foreground()
}

func init() {
	notifyCmd.Flags().StringVar(&notifySession, "session", "", "Session id when no hook payload is piped")
	inputCmd.Flags().StringVar(&notifySession, "session", "", "Session id when no hook payload is piped")

	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(inputCmd)
}
