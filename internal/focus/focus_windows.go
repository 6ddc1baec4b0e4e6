//go:build windows

package focus

import "golang.org/x/sys/windows"

func foreground() uintptr {
	return uintptr(windows.GetForegroundWindow())
}
