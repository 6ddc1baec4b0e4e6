// Package idle reports how long the user has been away from keyboard
// and mouse. The toast stays up longer when nobody is watching.
package idle

import "time"

// Duration returns the time since the last user input. On platforms
// without an idle source it returns an error and the caller keeps the
// normal display time.
func Duration() (time.Duration, error) {
	return duration()
}
