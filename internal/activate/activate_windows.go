//go:build windows

package activate

import (
	"time"

	"golang.org/x/sys/windows"

	"github.com/hintermann/knock/internal/uia"
)

const (
	asfwAny = ^uintptr(0) // ASFW_ANY = (DWORD)-1

	swRestore = 9

	hwndTop       = 0
	swpNoMove     = 0x0002
	swpNoSize     = 0x0001
	swpShowWindow = 0x0040

	vkMenu               = 0x12
	keyeventfExtendedKey = 0x0001
	keyeventfKeyUp       = 0x0002
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procAllowSetForegroundWindow = user32.NewProc("AllowSetForegroundWindow")
	procIsIconic                 = user32.NewProc("IsIconic")
	procShowWindow               = user32.NewProc("ShowWindow")
	procKeybdEvent               = user32.NewProc("keybd_event")
	procSetWindowPos             = user32.NewProc("SetWindowPos")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procSwitchToThisWindow       = user32.NewProc("SwitchToThisWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
)

func isWindow(handle uintptr) bool {
	return windows.IsWindow(windows.HWND(handle))
}

func restore(handle uintptr) {
	if iconic, _, _ := procIsIconic.Call(handle); iconic != 0 {
		procShowWindow.Call(handle, swRestore)
	}
}

// raise runs the full focus transfer protocol. Every step is
// best-effort: a failure at any point still leaves the target in the
// best reachable state, so return values are ignored throughout.
func raise(handle uintptr) {
	procAllowSetForegroundWindow.Call(asfwAny)

	restore(handle)

	// Synthesizing an Alt press makes the shell treat this process as
	// the most recent input source, which unlocks SetForegroundWindow.
	procKeybdEvent.Call(vkMenu, 0, keyeventfExtendedKey, 0)
	procKeybdEvent.Call(vkMenu, 0, keyeventfExtendedKey|keyeventfKeyUp, 0)
	time.Sleep(50 * time.Millisecond)

	fg := windows.GetForegroundWindow()
	var fgPID uint32
	fgThread, _ := windows.GetWindowThreadProcessId(fg, &fgPID)
	curThread := windows.GetCurrentThreadId()
	var targetPID uint32
	targetThread, _ := windows.GetWindowThreadProcessId(windows.HWND(handle), &targetPID)

	procAttachThreadInput.Call(uintptr(curThread), uintptr(fgThread), 1)
	procAttachThreadInput.Call(uintptr(curThread), uintptr(targetThread), 1)

	procSetWindowPos.Call(handle, hwndTop, 0, 0, 0, 0, swpNoMove|swpNoSize|swpShowWindow)
	procBringWindowToTop.Call(handle)
	procSwitchToThisWindow.Call(handle, 1)
	procSetForegroundWindow.Call(handle)

	procAttachThreadInput.Call(uintptr(curThread), uintptr(targetThread), 0)
	procAttachThreadInput.Call(uintptr(curThread), uintptr(fgThread), 0)
}

func selectTab(host uintptr, identity string) bool {
	loc, err := uia.NewLocator()
	if err != nil {
		return false
	}
	defer loc.Close()
	return loc.SelectTab(host, identity)
}
