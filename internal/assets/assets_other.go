//go:build !windows

package assets

// Font, icon, and sound loading are no-ops off Windows; the fallback
// notifier handles presentation there.

func LoadPrivateFont(string) string { return "" }

func UnloadPrivateFont(string) {}

func ExtractAppIcon(string) uintptr { return 0 }

func DestroyAppIcon(uintptr) {}

func PlaySound(string) {}
