//go:build !windows

package focus

func foreground() uintptr { return 0 }
