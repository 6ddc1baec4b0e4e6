//go:build !windows

package toast

import "errors"

// Show is only implemented on Windows; other platforms fall back to the
// system notifier.
func Show(Params) (clicked bool, err error) {
	return false, errors.New("toast window requires windows")
}
