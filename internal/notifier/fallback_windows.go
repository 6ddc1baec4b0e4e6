//go:build windows

package notifier

import (
	"fmt"

	"github.com/go-toast/toast"
)

func fallback(title, message string) error {
	n := toast.Notification{
		AppID:   "knock",
		Title:   title,
		Message: message,
	}
	if err := n.Push(); err != nil {
		return fmt.Errorf("push shell notification: %w", err)
	}
	return nil
}
