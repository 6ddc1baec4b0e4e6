package cmd

import (
	"fmt"
	"os"

	"github.com/hintermann/knock/internal/focus"
	"github.com/spf13/cobra"
)

var Version = "dev"

// callerWindow is the foreground window at the moment the process
// started. Captured before anything else runs: by the time a hook
// command reads stdin the user may already have switched away.
var callerWindow uintptr

var rootCmd = &cobra.Command{
	Use:     "knock",
	Short:   "Click-to-return toast notifications for coding agents",
	Version: Version,
	Long: `knock shows a small toast window when a coding agent finishes or needs
input. Clicking the toast jumps back to the terminal or editor that ran
the agent, including the exact Windows Terminal tab.

Agent hooks drive it:
  knock save       UserPromptSubmit: remember the active window and tab
  knock notify     Stop: show the completion toast
  knock input      Notification: show the needs-input toast
  knock cleanup    SessionEnd: drop the saved state

  knock agent init claude project   Install the hooks for an agent`,
}

func Execute() {
	callerWindow = focus.Foreground()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
