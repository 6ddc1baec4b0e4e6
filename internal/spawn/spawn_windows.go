//go:build windows

// Package spawn launches the detached toast process. The child must
// outlive the hook command and own no console, so it is created in its
// own process group with a hidden window.
package spawn

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	createNewProcessGroup = 0x00000200
	detachedProcess       = 0x00000008

	startfUseShowWindow = 0x00000001
	swHide              = 0
)

// Detached starts argv as a fully detached background process.
func Detached(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("spawn: empty argv")
	}

	exe, err := windows.UTF16PtrFromString(argv[0])
	if err != nil {
		return fmt.Errorf("encode exe path: %w", err)
	}

	cmdLine, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(argv))
	if err != nil {
		return fmt.Errorf("encode command line: %w", err)
	}

	si := &windows.StartupInfo{
		Cb:         uint32(unsafe.Sizeof(windows.StartupInfo{})),
		Flags:      startfUseShowWindow,
		ShowWindow: swHide,
	}
	pi := &windows.ProcessInformation{}

	err = windows.CreateProcess(exe, cmdLine, nil, nil, false,
		createNewProcessGroup|detachedProcess, nil, nil, si, pi)
	if err != nil {
		return fmt.Errorf("create process: %w", err)
	}

	windows.CloseHandle(pi.Thread)
	windows.CloseHandle(pi.Process)
	return nil
}
