// Package assets discovers the optional sound, font, and fallback icon
// shipped next to the executable, and loads them for the toast window.
package assets

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Assets are the discovered asset paths. Any of them may be empty.
type Assets struct {
	SoundFile string
	FontFile  string
	IconFile  string
}

// Discover looks for assets under baseDir: assets/sound/*.wav,
// assets/fonts/*.ttf (or *.otf), assets/img/*.ico. An empty baseDir
// searches next to the executable.
func Discover(baseDir string) Assets {
	if baseDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return Assets{}
		}
		baseDir = filepath.Dir(exe)
	}

	font := FindFirst(filepath.Join(baseDir, "assets", "fonts"), "*.ttf")
	if font == "" {
		font = FindFirst(filepath.Join(baseDir, "assets", "fonts"), "*.otf")
	}

	return Assets{
		SoundFile: FindFirst(filepath.Join(baseDir, "assets", "sound"), "*.wav"),
		FontFile:  font,
		IconFile:  FindFirst(filepath.Join(baseDir, "assets", "img"), "*.ico"),
	}
}

// FindFirst returns the path of the first file in dir matching pattern,
// or "" when there is none.
func FindFirst(dir, pattern string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			return filepath.Join(dir, entry.Name())
		}
	}
	return ""
}

// fontStyleSuffixes are trimmed off a font filename before deriving the
// family name.
var fontStyleSuffixes = []string{"-Regular", "-Bold", "-Italic", "-Light", "-Medium"}

// FontFamilyFromPath derives a display family name from a font file
// name: extension and style suffix dropped, CamelCase split into words,
// so "CaskaydiaCove-Regular.ttf" becomes "Caskaydia Cove".
func FontFamilyFromPath(path string) string {
	name := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	name = strings.TrimSuffix(name, filepath.Ext(name))

	for _, suffix := range fontStyleSuffixes {
		if pos := strings.Index(name, suffix); pos >= 0 {
			name = name[:pos]
			break
		}
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
