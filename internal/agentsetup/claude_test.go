package agentsetup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUpsertClaudeSettings_CreatesMinimalSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".claude", "settings.json")

	status, err := upsertClaudeSettings(path)
	if err != nil {
		t.Fatalf("upsertClaudeSettings() error = %v", err)
	}
	if status != StatusCreated {
		t.Fatalf("status = %q, want %q", status, StatusCreated)
	}

	root := readJSONFile(t, path)
	if _, ok := root["hooks"]; !ok {
		t.Fatal("expected hooks object to be present")
	}

	assertContainsCommand(t, eventCommands(t, root, claudeEventPromptSubmit), "knock save")
	assertContainsCommand(t, eventCommands(t, root, claudeEventStop), "knock notify")
	assertContainsCommand(t, eventCommands(t, root, claudeEventNotification), "knock input")
	assertContainsCommand(t, eventCommands(t, root, claudeEventSessionEnd), "knock cleanup")
}

func TestUpsertClaudeSettings_MergesAndDeduplicatesManagedHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{
  "theme": "dark",
  "hooks": {
    "Stop": [
      {
        "hooks": [
          {"type": "command", "command": "echo keep-stop", "async": true},
          {"type": "command", "command": "knock notify", "async": true}
        ]
      },
      {
        "hooks": [
          {"type": "command", "command": "knock notify --session opencode"}
        ]
      }
    ],
    "Notification": [
      {
        "hooks": [
          {"type": "command", "command": "echo keep-notification", "async": false}
        ]
      }
    ]
  }
}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	status, err := upsertClaudeSettings(path)
	if err != nil {
		t.Fatalf("upsertClaudeSettings() error = %v", err)
	}
	if status != StatusUpdated {
		t.Fatalf("status = %q, want %q", status, StatusUpdated)
	}

	root := readJSONFile(t, path)
	if got, _ := root["theme"].(string); got != "dark" {
		t.Fatalf("theme = %q, want %q", got, "dark")
	}

	stopCommands := eventCommands(t, root, claudeEventStop)
	notificationCommands := eventCommands(t, root, claudeEventNotification)

	assertContainsCommand(t, stopCommands, "echo keep-stop")
	assertContainsCommand(t, notificationCommands, "echo keep-notification")
	assertContainsCommand(t, stopCommands, "knock notify")
	assertContainsCommand(t, notificationCommands, "knock input")

	if countManagedCommands(stopCommands) != 1 {
		t.Fatalf("Stop managed hook count = %d, want 1", countManagedCommands(stopCommands))
	}
}

func TestUpsertClaudeSettings_RemovesEntryWhenManagedHooksLeaveNoHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{
  "hooks": {
    "Stop": [
      {
        "matcher": "foo",
        "hooks": [
          {"type": "command", "command": "knock notify"}
        ]
      }
    ]
  }
}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	status, err := upsertClaudeSettings(path)
	if err != nil {
		t.Fatalf("upsertClaudeSettings() error = %v", err)
	}
	if status != StatusUpdated {
		t.Fatalf("status = %q, want %q", status, StatusUpdated)
	}

	root := readJSONFile(t, path)
	for _, entry := range eventEntries(t, root, claudeEventStop) {
		if _, hasMatcher := entry["matcher"]; hasMatcher {
			t.Fatalf("matcher entry should have been removed when no hooks remained: %#v", entry)
		}
		hooks, ok := entry["hooks"].([]any)
		if !ok || len(hooks) == 0 {
			t.Fatalf("entry has missing or empty hooks: %#v", entry)
		}
	}
}

func TestUpsertClaudeSettings_PreservesMatcherEntryWithNonManagedHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	seed := `{
  "hooks": {
    "Stop": [
      {
        "matcher": "foo",
        "hooks": [
          {"type": "command", "command": "knock notify"},
          {"type": "command", "command": "echo keep-stop"}
        ]
      }
    ]
  }
}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if _, err := upsertClaudeSettings(path); err != nil {
		t.Fatalf("upsertClaudeSettings() error = %v", err)
	}

	root := readJSONFile(t, path)
	matcherEntryFound := false
	for _, entry := range eventEntries(t, root, claudeEventStop) {
		if entry["matcher"] != "foo" {
			continue
		}
		matcherEntryFound = true
		hooks, ok := entry["hooks"].([]any)
		if !ok || len(hooks) != 1 {
			t.Fatalf("matcher entry hooks = %#v, want the single kept hook", entry["hooks"])
		}
		hook, _ := hooks[0].(map[string]any)
		if command, _ := hook["command"].(string); command != "echo keep-stop" {
			t.Fatalf("matcher entry command = %q, want %q", command, "echo keep-stop")
		}
	}
	if !matcherEntryFound {
		t.Fatal("expected matcher entry to be preserved")
	}
}

func TestUpsertClaudeSettings_InvalidJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{ invalid json"), 0o644); err != nil {
		t.Fatalf("write invalid file: %v", err)
	}

	_, err := upsertClaudeSettings(path)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "parse claude settings") {
		t.Fatalf("error = %q, want parse context", err)
	}
}

func TestUpsertClaudeSettings_UnchangedWhenAlreadyCanonical(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	if _, err := upsertClaudeSettings(path); err != nil {
		t.Fatalf("initial upsert error = %v", err)
	}
	status, err := upsertClaudeSettings(path)
	if err != nil {
		t.Fatalf("second upsert error = %v", err)
	}
	if status != StatusUnchanged {
		t.Fatalf("status = %q, want %q", status, StatusUnchanged)
	}
}

func TestIsManagedClaudeCommand(t *testing.T) {
	tests := []struct {
		command string
		want    bool
	}{
		{command: "knock notify", want: true},
		{command: "knock notify --session opencode", want: true},
		{command: "knock save", want: true},
		{command: "echo knock notify", want: false},
		{command: "knockoff notify", want: false},
		{command: "", want: false},
	}

	for _, tt := range tests {
		if got := isManagedClaudeCommand(tt.command); got != tt.want {
			t.Errorf("isManagedClaudeCommand(%q) = %v, want %v", tt.command, got, tt.want)
		}
	}
}

func readJSONFile(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file %q: %v", path, err)
	}

	root := map[string]any{}
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("parse json: %v", err)
	}
	return root
}

func eventCommands(t *testing.T, root map[string]any, event string) []string {
	t.Helper()

	hooks, ok := root["hooks"].(map[string]any)
	if !ok {
		t.Fatalf("hooks is missing or not an object")
	}
	entries, ok := hooks[event].([]any)
	if !ok {
		t.Fatalf("hooks.%s is missing or not an array", event)
	}

	commands := make([]string, 0, 4)
	for _, entry := range entries {
		entryMap, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		hooksList, ok := entryMap["hooks"].([]any)
		if !ok {
			continue
		}
		for _, hook := range hooksList {
			hookMap, ok := hook.(map[string]any)
			if !ok {
				continue
			}
			command, _ := hookMap["command"].(string)
			if command != "" {
				commands = append(commands, command)
			}
		}
	}
	return commands
}

func eventEntries(t *testing.T, root map[string]any, event string) []map[string]any {
	t.Helper()

	hooks, ok := root["hooks"].(map[string]any)
	if !ok {
		t.Fatalf("hooks is missing or not an object")
	}
	entries, ok := hooks[event].([]any)
	if !ok {
		t.Fatalf("hooks.%s is missing or not an array", event)
	}

	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		entryMap, ok := entry.(map[string]any)
		if !ok {
			t.Fatalf("hooks.%s contains non-object entry: %#v", event, entry)
		}
		out = append(out, entryMap)
	}
	return out
}

func assertContainsCommand(t *testing.T, commands []string, want string) {
	t.Helper()
	for _, command := range commands {
		if command == want {
			return
		}
	}
	t.Fatalf("commands %v do not contain exact %q", commands, want)
}

func countManagedCommands(commands []string) int {
	count := 0
	for _, command := range commands {
		if isManagedClaudeCommand(command) {
			count++
		}
	}
	return count
}
