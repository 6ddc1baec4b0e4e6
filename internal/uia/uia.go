// Package uia locates terminal tabs through the UI Automation
// accessibility tree. A tab is identified by its runtime id, a sequence
// of integers that is stable for the lifetime of the tab, rendered as a
// dotted string so it can live in the state file.
package uia

import (
	"strconv"
	"strings"
)

// Locator finds and selects tabs inside a terminal host window.
type Locator interface {
	// SelectedTabIdentity returns the identity of the currently
	// selected tab, or "" when there is none or the tree is unreadable.
	SelectedTabIdentity(host uintptr) string
	// SelectTab re-selects the tab with the given identity and reports
	// whether it was found.
	SelectTab(host uintptr, identity string) bool
	// Close releases the automation client.
	Close()
}

// FormatIdentity renders a runtime id as the dotted identity string.
func FormatIdentity(parts []int32) string {
	if len(parts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatInt(int64(p), 10))
	}
	return b.String()
}
