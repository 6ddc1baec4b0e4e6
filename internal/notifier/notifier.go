// Package notifier is the fallback presentation path: when the toast
// window cannot be created, the notification still reaches the user
// through the system notification center.
package notifier

// Fallback shows a plain system notification.
func Fallback(title, message string) error {
	return fallback(title, message)
}
