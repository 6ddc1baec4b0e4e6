//go:build !windows

package callerapp

import "os"

// LiveTree is a stub off Windows; the walk simply finds nothing.
func LiveTree() Tree {
	return Tree{
		Self:    uint32(os.Getpid()),
		Parent:  func(uint32) uint32 { return 0 },
		ExePath: func(uint32) string { return "" },
	}
}
