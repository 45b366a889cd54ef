package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/thoreinstein/claudecfg/internal/config"
)

func TestMCPListCommand_Metadata(t *testing.T) {
	if mcpListCmd.Use != "list" {
		t.Errorf("Use = %q, want %q", mcpListCmd.Use, "list")
	}

	if mcpListCmd.Short == "" {
		t.Error("Short description should not be empty")
	}

	// Check flags exist
	if mcpListCmd.Flags().Lookup("json") == nil {
		t.Error("--json flag should be defined")
	}
	if mcpListCmd.Flags().Lookup("show-secrets") == nil {
		t.Error("--show-secrets flag should be defined")
	}
}

func TestOutputMCPTabular_EmptyState(t *testing.T) {
	var buf bytes.Buffer
	if err := outputMCPTabular(&buf, nil); err != nil {
		t.Fatalf("outputMCPTabular() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No MCP servers configured") {
		t.Error("output should indicate no servers configured")
	}
}

func TestOutputMCPTabular_WithServers(t *testing.T) {
	servers := []*config.ServerEntry{
		{
			Name:    "github",
			Enabled: true,
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		},
		{
			Name:    "local-db",
			Enabled: false,
			Command: "./scripts/db-server",
		},
	}

	var buf bytes.Buffer
	if err := outputMCPTabular(&buf, servers); err != nil {
		t.Fatalf("outputMCPTabular() error = %v", err)
	}

	output := buf.String()

	// Check headers
	for _, header := range []string{"NAME", "COMMAND", "ARGS", "STATUS"} {
		if !strings.Contains(output, header) {
			t.Errorf("output should contain %s header", header)
		}
	}

	// Check servers
	if !strings.Contains(output, "github") {
		t.Error("output should contain github server")
	}
	if !strings.Contains(output, "local-db") {
		t.Error("output should contain local-db server")
	}
	if !strings.Contains(output, "enabled") {
		t.Error("output should contain enabled status")
	}
	if !strings.Contains(output, "disabled") {
		t.Error("output should contain disabled status")
	}
}

func TestOutputMCPJSON(t *testing.T) {
	// Save and restore global flag
	oldShowSecrets := mcpListShowSecrets
	defer func() { mcpListShowSecrets = oldShowSecrets }()
	mcpListShowSecrets = false

	servers := []*config.ServerEntry{
		{
			Name:    "github",
			Enabled: true,
			Command: "npx",
			Env: map[string]string{
				"GITHUB_TOKEN": "ghp_xxxxxxxxxxxx1234",
				"DEBUG":        "true",
			},
		},
	}

	var buf bytes.Buffer
	if err := outputMCPJSON(&buf, servers); err != nil {
		t.Fatalf("outputMCPJSON() error = %v", err)
	}

	var result []mcpServerOutput
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if len(result) != 1 {
		t.Fatalf("expected 1 server, got %d", len(result))
	}
	if result[0].Name != "github" {
		t.Errorf("Name = %q, want %q", result[0].Name, "github")
	}
	if !result[0].Enabled {
		t.Error("Enabled should be true")
	}

	// Check secret masking
	if result[0].Env["GITHUB_TOKEN"] != "****1234" {
		t.Errorf("GITHUB_TOKEN should be masked, got %q", result[0].Env["GITHUB_TOKEN"])
	}
	if result[0].Env["DEBUG"] != "true" {
		t.Errorf("DEBUG should not be masked, got %q", result[0].Env["DEBUG"])
	}
}

func TestOutputMCPJSON_ShowSecrets(t *testing.T) {
	// Save and restore global flag
	oldShowSecrets := mcpListShowSecrets
	defer func() { mcpListShowSecrets = oldShowSecrets }()
	mcpListShowSecrets = true

	servers := []*config.ServerEntry{
		{
			Name:    "github",
			Enabled: true,
			Env: map[string]string{
				"GITHUB_TOKEN": "ghp_xxxxxxxxxxxx1234",
			},
		},
	}

	var buf bytes.Buffer
	if err := outputMCPJSON(&buf, servers); err != nil {
		t.Fatalf("outputMCPJSON() error = %v", err)
	}

	var result []mcpServerOutput
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	// Check secret is NOT masked
	if result[0].Env["GITHUB_TOKEN"] != "ghp_xxxxxxxxxxxx1234" {
		t.Errorf("GITHUB_TOKEN should not be masked with --show-secrets, got %q",
			result[0].Env["GITHUB_TOKEN"])
	}
}
