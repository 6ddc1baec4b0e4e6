package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hintermann/knock/internal/activate"
	"github.com/hintermann/knock/internal/assets"
	"github.com/hintermann/knock/internal/config"
	"github.com/hintermann/knock/internal/idle"
	"github.com/hintermann/knock/internal/logging"
	"github.com/hintermann/knock/internal/notifier"
	"github.com/hintermann/knock/internal/state"
	"github.com/hintermann/knock/internal/toast"
	"github.com/spf13/cobra"
)

var (
	showSession string
	showMessage string
	showInput   bool
)

// showCmd runs inside the detached toast process; it owns the window
// for its whole lifetime and exits when the toast is dismissed.
var showCmd = &cobra.Command{
	Use:    "show",
	Hidden: true,
	Short:  "Run the toast window (internal)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		initializeCommandLogging(cmd.ErrOrStderr(), cfg.Logging, logging.RoleToast)

		runToast(cfg)
		return nil
	},
}

func runToast(cfg config.Config) {
	var st state.State
	if showSession != "" {
		loaded, err := state.Load(showSession, state.DefaultProbes())
		if err != nil {
			slog.Info("no saved state for session", "session", showSession, "error", err)
		} else {
			st = loaded
		}
		defer func() {
			if err := state.Delete(showSession); err != nil {
				slog.Warn("delete state file", "error", err)
			}
		}()
	}

	title := cfg.Notification.Title
	if showInput {
		title = cfg.Notification.InputTitle
	}

	message := showMessage
	if message == "" {
		message = st.Prompt
	}
	message = toast.Sanitize(message)

	found := assets.Discover(cfg.Assets.Dir)

	fontFamily := "Segoe UI"
	if found.FontFile != "" {
		if family := assets.LoadPrivateFont(found.FontFile); family != "" {
			fontFamily = family
			defer assets.UnloadPrivateFont(found.FontFile)
		}
	}

	icon := assets.ExtractAppIcon(st.CallerExe)
	defer assets.DestroyAppIcon(icon)

	if cfg.Sound.Enabled {
		assets.PlaySound(found.SoundFile)
	}

	params := toast.Params{
		Title:      title,
		Message:    message,
		Input:      showInput,
		FontFamily: fontFamily,
		Icon:       toast.Handle(icon),
		IconPath:   found.IconFile,
		Display:    displayDuration(cfg),
		Fade:       time.Duration(cfg.Notification.FadeMs) * time.Millisecond,
		Activate: func() {
			activate.New(slog.Default()).Activate(activate.Target{
				Window:       st.Target,
				TerminalHost: st.TerminalHost,
				TabIdentity:  st.TabIdentity,
			})
		},
	}

	clicked, err := toast.Show(params)
	if err != nil {
		slog.Warn("toast window unavailable, using system notification", "error", err)
		if err := notifier.Fallback(title, message); err != nil {
			slog.Error("fallback notification", "error", err)
		}
		return
	}

	slog.Info("toast dismissed", "session", showSession, "clicked", clicked)
}

// displayDuration extends the configured display time when the user
// has been idle: a toast that appears to an empty chair should still
// be up when they come back.
func displayDuration(cfg config.Config) time.Duration {
	display := time.Duration(cfg.Notification.DisplayMs) * time.Millisecond

	threshold := time.Duration(cfg.Idle.ThresholdSeconds) * time.Second
	if threshold <= 0 {
		return display
	}

	away, err := idle.Duration()
	if err != nil || away < threshold {
		return display
	}

	extended := display + time.Duration(cfg.Idle.ExtendDisplayMs)*time.Millisecond
	slog.Debug("user idle, extending display", "away", away, "display", extended)
	return extended
}

func init() {
	showCmd.Flags().StringVar(&showSession, "session", "", "Session id to load state for")
	showCmd.Flags().StringVar(&showMessage, "message", "", "Message text override")
	showCmd.Flags().BoolVar(&showInput, "input", false, "Use needs-input styling")

	rootCmd.AddCommand(showCmd)
}
