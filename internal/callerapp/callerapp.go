// Package callerapp finds the application that hosts the agent session
// by walking up the process tree, so the toast can show its icon. Shell
// and runtime processes are skipped until something that looks like an
// application turns up.
package callerapp

import (
	"path/filepath"
	"strings"
)

// maxWalkDepth bounds the walk up the process tree.
const maxWalkDepth = 10

// skipNames are shells, runtimes, and tooling that merely relay the
// session. Matched exactly, case-insensitive, without extension.
var skipNames = map[string]bool{
	"cmd": true, "powershell": true, "pwsh": true, "conhost": true, "explorer": true,
	"bash": true, "zsh": true, "fish": true, "sh": true, "wsl": true, "mintty": true,
	"git": true, "git-bash": true,
	"node": true, "deno": true, "bun": true, "npx": true, "ts-node": true,
	"npm": true, "yarn": true, "pnpm": true,
	"python": true, "python3": true, "uv": true, "pip": true, "poetry": true, "pdm": true,
	"ruby": true, "java": true, "dotnet": true, "php": true, "go": true,
	"cargo": true, "rustc": true, "perl": true, "lua": true,
	"claude": true,
	"ssh":    true, "docker": true, "podman": true,
}

// knownApps are editors and terminals that end the walk immediately.
// Matched exactly or as a dashed prefix, so "code" covers
// "code-insiders" and similar forks.
var knownApps = []string{
	"code", "code-insiders", "codium", "cursor", "windsurf",
	"idea", "idea64", "webstorm", "webstorm64",
	"pycharm", "pycharm64", "rider", "rider64",
	"goland", "goland64", "clion", "clion64",
	"windowsterminal", "wt", "conemu", "conemu64",
	"tabby", "wezterm", "wezterm-gui",
}

// Tree reads the live process table. Injected so the walk is testable.
type Tree struct {
	// Self is the starting pid.
	Self uint32
	// Parent maps a pid to its parent, 0 when unknown.
	Parent func(pid uint32) uint32
	// ExePath resolves a pid's executable path, "" when unreadable.
	ExePath func(pid uint32) string
}

// Find walks up from Tree.Self and returns the first executable that is
// not a shell or runtime. Returns "" when nothing qualifies.
func Find(tree Tree) string {
	pid := tree.Self

	for i := 0; i < maxWalkDepth; i++ {
		parent := tree.Parent(pid)
		if parent == 0 || parent == pid {
			break
		}

		exe := tree.ExePath(parent)
		if exe == "" {
			pid = parent
			continue
		}

		name := baseNameLower(exe)
		if isKnownApp(name) {
			return exe
		}
		if skipNames[name] {
			pid = parent
			continue
		}

		// Unknown but real: good enough for an icon.
		return exe
	}

	return ""
}

func isKnownApp(name string) bool {
	for _, app := range knownApps {
		if name == app || strings.HasPrefix(name, app+"-") {
			return true
		}
	}
	return false
}

func baseNameLower(path string) string {
	name := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(name)
}
