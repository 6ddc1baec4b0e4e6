package hook

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Payload
	}{
		{
			name:  "full payload",
			input: `{"session_id":"s-123","prompt":"fix the build","message":"needs input"}`,
			want:  Payload{SessionID: "s-123", Prompt: "fix the build", Message: "needs input"},
		},
		{
			name:  "extra fields ignored",
			input: `{"session_id":"s-1","transcript_path":"/tmp/t.json","cwd":"/work"}`,
			want:  Payload{SessionID: "s-1"},
		},
		{
			name:  "session id trimmed",
			input: `{"session_id":"  s-1  "}`,
			want:  Payload{SessionID: "s-1"},
		},
		{
			name:  "empty input",
			input: "",
			want:  Payload{},
		},
		{
			name:  "malformed json",
			input: `{"session_id": "s-1`,
			want:  Payload{},
		},
		{
			name:  "prompt with newlines preserved",
			input: "{\"session_id\":\"s\",\"prompt\":\"line one\\nline two\"}",
			want:  Payload{SessionID: "s", Prompt: "line one\nline two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Read(strings.NewReader(tt.input))
			if got != tt.want {
				t.Fatalf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
