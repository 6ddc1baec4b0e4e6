package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hintermann/knock/internal/agentsetup"
	"github.com/spf13/cobra"
)

func TestAgentInitAndUpdateBothUseUpsert(t *testing.T) {
	origUpsert := agentUpsert
	defer func() { agentUpsert = origUpsert }()

	calls := 0
	agentUpsert = func(opts agentsetup.Options) (agentsetup.Result, error) {
		calls++
		if opts.Agent != agentsetup.AgentClaude {
			t.Fatalf("opts.Agent = %q, want %q", opts.Agent, agentsetup.AgentClaude)
		}
		if opts.Scope != agentsetup.ScopeProject {
			t.Fatalf("opts.Scope = %q, want %q", opts.Scope, agentsetup.ScopeProject)
		}
		return agentsetup.Result{
			Path:   "/tmp/path",
			Status: agentsetup.StatusUpdated,
		}, nil
	}

	for _, c := range []*cobra.Command{agentInitCmd, agentUpdateCmd} {
		var stdout bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&stdout)

		if err := c.RunE(cmd, []string{"claude", "project"}); err != nil {
			t.Fatalf("RunE returned error: %v", err)
		}
		if !strings.Contains(stdout.String(), "configured claude (project): /tmp/path [updated]") {
			t.Fatalf("unexpected output %q", stdout.String())
		}
	}

	if calls != 2 {
		t.Fatalf("upsert calls = %d, want 2", calls)
	}
}

func TestAgentRunE_InvalidAgent(t *testing.T) {
	err := runAgentConfigure(&cobra.Command{}, []string{"unknown", "project"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid agent") {
		t.Fatalf("error %q does not contain %q", err, "invalid agent")
	}
}

func TestAgentRunE_InvalidScope(t *testing.T) {
	err := runAgentConfigure(&cobra.Command{}, []string{"claude", "workspace"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "invalid scope") {
		t.Fatalf("error %q does not contain %q", err, "invalid scope")
	}
}

func TestAgentRunE_OpencodeGlobal(t *testing.T) {
	origUpsert := agentUpsert
	defer func() { agentUpsert = origUpsert }()

	agentUpsert = func(opts agentsetup.Options) (agentsetup.Result, error) {
		if opts.Agent != agentsetup.AgentOpenCode {
			t.Fatalf("opts.Agent = %q, want %q", opts.Agent, agentsetup.AgentOpenCode)
		}
		if opts.Scope != agentsetup.ScopeGlobal {
			t.Fatalf("opts.Scope = %q, want %q", opts.Scope, agentsetup.ScopeGlobal)
		}
		return agentsetup.Result{
			Path:   "/tmp/plugin",
			Status: agentsetup.StatusCreated,
		}, nil
	}

	var stdout bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)

	if err := runAgentConfigure(cmd, []string{"opencode", "global"}); err != nil {
		t.Fatalf("runAgentConfigure returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "configured opencode (global): /tmp/plugin [created]") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}
