package state

import (
	"os"
	"testing"
)

func alwaysWindow(class string) Probes {
	return Probes{
		IsWindow:  func(uintptr) bool { return true },
		ClassName: func(uintptr) string { return class },
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	saved := State{
		Target:      0x51234,
		TabIdentity: "42.1076002.4.7",
		CallerExe:   `C:\Program Files\WindowsTerminal\wt.exe`,
		Prompt:      "refactor the parser",
	}
	if err := Save("s-1", saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load("s-1", alwaysWindow(TerminalWindowClass))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Target != saved.Target {
		t.Errorf("Target = %#x, want %#x", got.Target, saved.Target)
	}
	if got.TerminalHost != saved.Target {
		t.Errorf("TerminalHost = %#x, want %#x (terminal class)", got.TerminalHost, saved.Target)
	}
	if got.TabIdentity != saved.TabIdentity {
		t.Errorf("TabIdentity = %q, want %q", got.TabIdentity, saved.TabIdentity)
	}
	if got.CallerExe != saved.CallerExe {
		t.Errorf("CallerExe = %q, want %q", got.CallerExe, saved.CallerExe)
	}
	if got.Prompt != saved.Prompt {
		t.Errorf("Prompt = %q, want %q", got.Prompt, saved.Prompt)
	}
}

func TestLoadNonTerminalWindowHasNoHost(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	if err := Save("s-2", State{Target: 0x600}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load("s-2", alwaysWindow("Chrome_WidgetWin_1"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Target != 0x600 {
		t.Errorf("Target = %#x, want 0x600", got.Target)
	}
	if got.TerminalHost != 0 {
		t.Errorf("TerminalHost = %#x, want 0", got.TerminalHost)
	}
}

func TestLoadStaleHandleDropsTarget(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	if err := Save("s-3", State{Target: 0x700, Prompt: "hello"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	probes := Probes{
		IsWindow:  func(uintptr) bool { return false },
		ClassName: func(uintptr) string { return TerminalWindowClass },
	}
	got, err := Load("s-3", probes)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Target != 0 || got.TerminalHost != 0 {
		t.Errorf("stale handle kept: %+v", got)
	}
	if got.Prompt != "hello" {
		t.Errorf("Prompt = %q, want %q", got.Prompt, "hello")
	}
}

func TestLoadPromptWithNewlines(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	if err := Save("s-4", State{Prompt: "line one\nline two"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load("s-4", alwaysWindow(""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Prompt != "line one\nline two" {
		t.Errorf("Prompt = %q, want embedded newline preserved", got.Prompt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	if _, err := Load("nope", alwaysWindow("")); err == nil {
		t.Fatal("expected error for missing state file")
	}
}

func TestDelete(t *testing.T) {
	t.Setenv("TMPDIR", t.TempDir())

	if err := Save("s-5", State{Prompt: "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Delete("s-5"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(Path("s-5")); !os.IsNotExist(err) {
		t.Fatal("state file still exists after Delete")
	}

	// Deleting again is not an error.
	if err := Delete("s-5"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestSaveEmptySession(t *testing.T) {
	if err := Save("", State{}); err == nil {
		t.Fatal("expected error for empty session id")
	}
}
