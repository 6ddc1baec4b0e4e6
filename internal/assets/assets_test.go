package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "assets", "sound", "ding.wav"))
	writeFile(t, filepath.Join(dir, "assets", "fonts", "Inter-Regular.otf"))
	writeFile(t, filepath.Join(dir, "assets", "img", "default.ico"))

	a := Discover(dir)

	if filepath.Base(a.SoundFile) != "ding.wav" {
		t.Errorf("SoundFile = %q", a.SoundFile)
	}
	if filepath.Base(a.FontFile) != "Inter-Regular.otf" {
		t.Errorf("FontFile = %q", a.FontFile)
	}
	if filepath.Base(a.IconFile) != "default.ico" {
		t.Errorf("IconFile = %q", a.IconFile)
	}
}

func TestDiscoverPrefersTTF(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "assets", "fonts", "b.otf"))
	writeFile(t, filepath.Join(dir, "assets", "fonts", "a.ttf"))

	a := Discover(dir)
	if filepath.Base(a.FontFile) != "a.ttf" {
		t.Fatalf("FontFile = %q, want the ttf", a.FontFile)
	}
}

func TestDiscoverEmptyDir(t *testing.T) {
	a := Discover(t.TempDir())
	if a.SoundFile != "" || a.FontFile != "" || a.IconFile != "" {
		t.Fatalf("expected empty assets, got %+v", a)
	}
}

func TestFindFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "readme.txt"))
	writeFile(t, filepath.Join(dir, "chime.wav"))

	if got := FindFirst(dir, "*.wav"); filepath.Base(got) != "chime.wav" {
		t.Fatalf("FindFirst = %q", got)
	}
	if got := FindFirst(dir, "*.ico"); got != "" {
		t.Fatalf("FindFirst = %q, want none", got)
	}
	if got := FindFirst(filepath.Join(dir, "missing"), "*.wav"); got != "" {
		t.Fatalf("FindFirst on missing dir = %q, want none", got)
	}
}

func TestFontFamilyFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "style suffix and camel case", path: `C:\assets\fonts\CaskaydiaCove-Regular.ttf`, want: "Caskaydia Cove"},
		{name: "bold suffix", path: "JetBrainsMono-Bold.otf", want: "Jet Brains Mono"},
		{name: "no suffix", path: "/opt/fonts/FiraCode.ttf", want: "Fira Code"},
		{name: "single word", path: "Inter.ttf", want: "Inter"},
		{name: "already spaced stays put", path: "Inter-Light.ttf", want: "Inter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FontFamilyFromPath(tt.path); got != tt.want {
				t.Fatalf("FontFamilyFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
