//go:build !windows

package idle

import (
	"errors"
	"time"
)

func duration() (time.Duration, error) {
	return 0, errors.New("idle detection not supported on this platform")
}
