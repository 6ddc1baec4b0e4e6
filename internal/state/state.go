// Package state persists the window snapshot taken at prompt-submit time
// so the detached toast process can find its way back.
//
// The state file is a 4-line flat file in the temp directory, keyed by
// session id: window handle (decimal), tab identity, caller exe path,
// user prompt. The format is shared with concurrently installed versions
// of this tool, so it must not change shape.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// TerminalWindowClass is the window class of a Windows Terminal host
// window, the only host whose tabs can be re-selected after activation.
const TerminalWindowClass = "CASCADIA_HOSTING_WINDOW_CLASS"

// State is everything the toast needs to reactivate the caller.
type State struct {
	// Target is the window to bring back on click.
	Target uintptr
	// TerminalHost is Target when Target is a terminal-multiplexer host
	// window, 0 otherwise. Derived on load, never stored separately.
	TerminalHost uintptr
	// TabIdentity identifies the tab that was selected at save time.
	TabIdentity string
	// CallerExe is the executable the toast icon is extracted from.
	CallerExe string
	// Prompt is the user prompt shown as the toast message.
	Prompt string
}

// Probes are the platform checks Load needs to validate a stored handle.
// Injected so the file format logic is testable without a window system.
type Probes struct {
	IsWindow  func(handle uintptr) bool
	ClassName func(handle uintptr) string
}

// Path returns the state file path for a session.
func Path(sessionID string) string {
	return filepath.Join(os.TempDir(), "knock-"+sessionID+".txt")
}

// Save writes the state file for a session.
func Save(sessionID string, st State) error {
	if sessionID == "" {
		return fmt.Errorf("save state: empty session id")
	}

	content := fmt.Sprintf("%d\n%s\n%s\n%s", st.Target, st.TabIdentity, st.CallerExe, st.Prompt)
	if err := os.WriteFile(Path(sessionID), []byte(content), 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Load reads the state file for a session. A missing file or stale
// handle degrades to zero fields rather than failing: the toast still
// shows, it just can't activate anything.
func Load(sessionID string, probes Probes) (State, error) {
	var st State

	data, err := os.ReadFile(Path(sessionID))
	if err != nil {
		return st, fmt.Errorf("read state file: %w", err)
	}

	lines := strings.Split(string(data), "\n")

	if len(lines) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(lines[0]), 10, 64); err == nil {
			handle := uintptr(v)
			if handle != 0 && probes.IsWindow != nil && probes.IsWindow(handle) {
				st.Target = handle
				if probes.ClassName != nil && probes.ClassName(handle) == TerminalWindowClass {
					st.TerminalHost = handle
				}
			}
		}
	}

	if len(lines) > 1 {
		st.TabIdentity = strings.TrimSpace(lines[1])
	}

	if len(lines) > 2 {
		st.CallerExe = strings.TrimSpace(lines[2])
	}

	// The prompt is the remainder of the file; it may itself contain
	// newlines, so join whatever is left.
	if len(lines) > 3 {
		st.Prompt = strings.Join(lines[3:], "\n")
	}

	return st, nil
}

// Delete removes the state file for a session. Missing files are fine.
func Delete(sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := os.Remove(Path(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete state file: %w", err)
	}
	return nil
}
