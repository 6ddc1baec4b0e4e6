//go:build windows

package state

import "golang.org/x/sys/windows"

// DefaultProbes checks handles against the live window system.
func DefaultProbes() Probes {
	return Probes{
		IsWindow:  func(handle uintptr) bool { return windows.IsWindow(windows.HWND(handle)) },
		ClassName: className,
	}
}

func className(handle uintptr) string {
	var buf [256]uint16
	n, err := windows.GetClassName(windows.HWND(handle), &buf[0], int32(len(buf)))
	if err != nil {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}
