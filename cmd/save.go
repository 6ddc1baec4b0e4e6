package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hintermann/knock/internal/callerapp"
	"github.com/hintermann/knock/internal/config"
	"github.com/hintermann/knock/internal/hook"
	"github.com/hintermann/knock/internal/logging"
	"github.com/hintermann/knock/internal/state"
	"github.com/hintermann/knock/internal/uia"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:    "save",
	Hidden: true,
	Short:  "Snapshot the active window for the current session (UserPromptSubmit hook)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		initializeCommandLogging(cmd.ErrOrStderr(), cfg.Logging, logging.RoleCLI)

		payload := hook.Read(cmd.InOrStdin())
		if payload.SessionID == "" {
			slog.Warn("save: no session id in hook payload, nothing to do")
			return nil
		}

		st := snapshotState(payload.Prompt)

		if err := state.Save(payload.SessionID, st); err != nil {
			// A hook must never fail the agent; log and move on.
			slog.Error("save state", "error", err, "session", payload.SessionID)
			return nil
		}

		slog.Debug("state saved",
			"session", payload.SessionID,
			"target", st.Target,
			"tab", st.TabIdentity,
			"caller_exe", st.CallerExe)
		return nil
	},
}

// snapshotState captures everything needed to come back later: the
// window that was focused when the prompt was submitted, the selected
// terminal tab if that window is a terminal host, and the application
// hosting the session.
func snapshotState(prompt string) state.State {
	st := state.State{
		Target: callerWindow,
		Prompt: prompt,
	}

	probes := state.DefaultProbes()
	if st.Target != 0 && probes.ClassName(st.Target) == state.TerminalWindowClass {
		if loc, err := uia.NewLocator(); err == nil {
			st.TabIdentity = loc.SelectedTabIdentity(st.Target)
			loc.Close()
		}
	}

	st.CallerExe = callerapp.Find(callerapp.LiveTree())
	return st
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
