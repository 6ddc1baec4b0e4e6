package agentsetup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpsertOpenCodePlugin_CreatesPlugin(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".opencode", "plugins", "knock.ts")

	status, err := upsertOpenCodePlugin(path)
	if err != nil {
		t.Fatalf("upsertOpenCodePlugin() error = %v", err)
	}
	if status != StatusCreated {
		t.Fatalf("status = %q, want %q", status, StatusCreated)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read plugin: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "session.idle") {
		t.Fatal("plugin should react to session.idle")
	}
	if !strings.Contains(content, "knock notify --session opencode") {
		t.Fatal("plugin should invoke knock notify")
	}
}

func TestUpsertOpenCodePlugin_RewritesStaleContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knock.ts")
	if err := os.WriteFile(path, []byte("// old plugin\n"), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	status, err := upsertOpenCodePlugin(path)
	if err != nil {
		t.Fatalf("upsertOpenCodePlugin() error = %v", err)
	}
	if status != StatusUpdated {
		t.Fatalf("status = %q, want %q", status, StatusUpdated)
	}
}

func TestUpsertOpenCodePlugin_UnchangedWhenCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knock.ts")

	if _, err := upsertOpenCodePlugin(path); err != nil {
		t.Fatalf("initial upsert error = %v", err)
	}
	status, err := upsertOpenCodePlugin(path)
	if err != nil {
		t.Fatalf("second upsert error = %v", err)
	}
	if status != StatusUnchanged {
		t.Fatalf("status = %q, want %q", status, StatusUnchanged)
	}
}
