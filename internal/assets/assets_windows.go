//go:build windows

package assets

import (
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	frPrivate      = 0x10
	sndFilename    = 0x00020000
	sndAsync       = 0x0001
	mbIconAsterisk = 0x40
)

var (
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	winmm   = windows.NewLazySystemDLL("winmm.dll")

	procAddFontResourceExW    = gdi32.NewProc("AddFontResourceExW")
	procRemoveFontResourceExW = gdi32.NewProc("RemoveFontResourceExW")
	procExtractIconExW        = shell32.NewProc("ExtractIconExW")
	procDestroyIcon           = user32.NewProc("DestroyIcon")
	procMessageBeep           = user32.NewProc("MessageBeep")
	procPlaySoundW            = winmm.NewProc("PlaySoundW")
)

// LoadPrivateFont registers a font file for this process only and
// returns the derived family name. Returns "" when the font cannot be
// loaded; the toast then falls back to the system font.
func LoadPrivateFont(path string) string {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return ""
	}

	added, _, _ := procAddFontResourceExW.Call(uintptr(unsafe.Pointer(p)), frPrivate, 0)
	if added == 0 {
		return ""
	}
	return FontFamilyFromPath(path)
}

// UnloadPrivateFont removes a font registered by LoadPrivateFont.
func UnloadPrivateFont(path string) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return
	}
	procRemoveFontResourceExW.Call(uintptr(unsafe.Pointer(p)), frPrivate, 0)
}

// ExtractAppIcon pulls the first large icon out of an executable. The
// caller owns the returned handle and must pass it to DestroyAppIcon.
func ExtractAppIcon(exePath string) uintptr {
	if exePath == "" {
		return 0
	}

	p, err := windows.UTF16PtrFromString(exePath)
	if err != nil {
		return 0
	}

	var large, small uintptr
	count, _, _ := procExtractIconExW.Call(uintptr(unsafe.Pointer(p)), 0,
		uintptr(unsafe.Pointer(&large)), uintptr(unsafe.Pointer(&small)), 1)
	if count > 0 && small != 0 {
		procDestroyIcon.Call(small)
	}
	return large
}

// DestroyAppIcon releases an icon handle from ExtractAppIcon.
func DestroyAppIcon(icon uintptr) {
	if icon != 0 {
		procDestroyIcon.Call(icon)
	}
}

// PlaySound plays a wav file asynchronously, falling back to the system
// notification beep when the file is missing.
func PlaySound(wavPath string) {
	if wavPath != "" {
		if _, err := os.Stat(wavPath); err == nil {
			if p, err := windows.UTF16PtrFromString(wavPath); err == nil {
				procPlaySoundW.Call(uintptr(unsafe.Pointer(p)), 0, sndFilename|sndAsync)
				return
			}
		}
	}
	procMessageBeep.Call(mbIconAsterisk)
}
