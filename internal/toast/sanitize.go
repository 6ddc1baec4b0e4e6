package toast

import "strings"

// maxMessageRunes is how much of the prompt fits on the message line.
const maxMessageRunes = 35

// Sanitize flattens a prompt into a single display line: every newline
// character becomes one space and anything past the budget is elided.
func Sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)

	runes := []rune(s)
	if len(runes) <= maxMessageRunes {
		return s
	}
	return string(runes[:maxMessageRunes]) + "..."
}
