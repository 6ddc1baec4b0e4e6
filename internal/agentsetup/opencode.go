package agentsetup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

func upsertOpenCodePlugin(path string) (ChangeStatus, error) {
	content := []byte(openCodePluginTemplate())

	existing, err := os.ReadFile(path)
	fileExists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("read opencode plugin %q: %w", path, err)
	}

	if fileExists && bytes.Equal(existing, content) {
		return StatusUnchanged, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create opencode plugin directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write opencode plugin %q: %w", path, err)
	}

	if fileExists {
		return StatusUpdated, nil
	}
	return StatusCreated, nil
}

func openCodePluginTemplate() string {
	return `import type { Plugin } from "@opencode-ai/plugin"

export const Knock: Plugin = async ({ $ }) => ({
  event: async ({ event }) => {
    if (event.type === "session.idle") {
      await $` + "`" + `knock notify --session opencode` + "`" + `
    }
  },
})
`
}
