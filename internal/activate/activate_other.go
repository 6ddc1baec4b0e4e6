//go:build !windows

package activate

func isWindow(uintptr) bool { return false }

func raise(uintptr) {}

func restore(uintptr) {}

func selectTab(uintptr, string) bool { return false }
