//go:build !windows

package notifier

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func fallback(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("system notification: %w", err)
	}
	return nil
}
