// Package activate brings the caller's window back to the foreground
// after a toast click, working around the focus-stealing protections
// that normally block a background process from taking focus.
package activate

import "log/slog"

// Target describes where focus should go.
type Target struct {
	// Window is the window to bring to the foreground.
	Window uintptr
	// TerminalHost, when non-zero, is a terminal window whose tabs can
	// be re-selected; TabIdentity names the tab.
	TerminalHost uintptr
	TabIdentity  string
}

// Sequencer runs the focus transfer. The platform funcs are injected so
// the dispatch logic is testable anywhere.
type Sequencer struct {
	// IsWindow reports whether a handle still names a live window.
	IsWindow func(handle uintptr) bool
	// Raise runs the focus transfer protocol against a window.
	Raise func(handle uintptr)
	// SelectTab re-selects a tab inside a terminal host window and
	// reports whether the tab was found.
	SelectTab func(host uintptr, identity string) bool
	// Restore un-minimizes a window if it is iconic.
	Restore func(handle uintptr)

	Log *slog.Logger
}

// New returns a sequencer wired to the platform implementation.
func New(log *slog.Logger) *Sequencer {
	return &Sequencer{
		IsWindow:  isWindow,
		Raise:     raise,
		SelectTab: selectTab,
		Restore:   restore,
		Log:       log,
	}
}

// Activate transfers focus to the target. Terminal hosts get their tab
// re-selected after the raise; a dead or missing target is a logged
// no-op, never an error, because the toast is already gone.
func (s *Sequencer) Activate(t Target) {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}

	switch {
	case t.TerminalHost != 0 && t.TabIdentity != "":
		if !s.IsWindow(t.TerminalHost) {
			log.Info("terminal host window gone, nothing to activate",
				"host", t.TerminalHost)
			return
		}
		s.Restore(t.TerminalHost)
		s.Raise(t.TerminalHost)
		if s.SelectTab(t.TerminalHost, t.TabIdentity) {
			log.Debug("terminal tab selected", "tab", t.TabIdentity)
		} else {
			log.Info("terminal tab not found, host raised without tab switch",
				"tab", t.TabIdentity)
		}

	case t.Window != 0 && s.IsWindow(t.Window):
		log.Debug("raising window", "window", t.Window)
		s.Raise(t.Window)

	default:
		log.Info("no valid window to activate", "window", t.Window)
	}
}
