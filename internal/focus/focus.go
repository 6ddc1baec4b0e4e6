// Package focus reports which window currently has the foreground.
package focus

// Foreground returns the handle of the foreground window, 0 when there
// is none or the platform has no window system.
func Foreground() uintptr {
	return foreground()
}
