package toast

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short message unchanged",
			input: "fix the build",
			want:  "fix the build",
		},
		{
			name:  "newlines flattened",
			input: "line one\nline two\nline three",
			want:  "line one line two line three",
		},
		{
			name:  "crlf maps to one space per character",
			input: "first\r\nsecond",
			want:  "first  second",
		},
		{
			name:  "surrounding whitespace kept",
			input: " padded\n",
			want:  " padded ",
		},
		{
			name:  "long message elided",
			input: "please refactor the configuration loader to support includes",
			want:  "please refactor the configuration l...",
		},
		{
			name:  "exactly at the budget",
			input: "12345678901234567890123456789012345",
			want:  "12345678901234567890123456789012345",
		},
		{
			name:  "multibyte runes counted as one",
			input: "héllo wörld",
			want:  "héllo wörld",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
