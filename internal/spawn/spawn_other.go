//go:build !windows

package spawn

import (
	"fmt"
	"os/exec"
)

// Detached starts argv as a background process that survives this one.
func Detached(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("spawn: empty argv")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start process: %w", err)
	}
	return cmd.Process.Release()
}
