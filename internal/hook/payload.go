// Package hook reads the JSON payload agent hooks pipe to stdin.
package hook

import (
	"encoding/json"
	"io"
	"strings"
)

// maxPayloadBytes bounds the stdin read; agent payloads are small and
// anything larger is garbage we don't want to buffer.
const maxPayloadBytes = 1 << 16

// Payload is the subset of the hook JSON this tool consumes.
type Payload struct {
	SessionID string `json:"session_id"`
	Prompt    string `json:"prompt"`
	Message   string `json:"message"`
}

// Read consumes r and extracts the payload fields. It is deliberately
// lenient: malformed or empty input yields a zero Payload, never an
// error, because a hook must not fail the agent that invoked it.
func Read(r io.Reader) Payload {
	var p Payload

	data, err := io.ReadAll(io.LimitReader(r, maxPayloadBytes))
	if err != nil || len(data) == 0 {
		return p
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}
	}

	p.SessionID = strings.TrimSpace(p.SessionID)
	return p
}
