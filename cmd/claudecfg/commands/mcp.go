package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP server entries",
	Long: `Manage MCP (Model Context Protocol) server entries in the managed
configuration.

Servers live in the mcpServers section. Each entry carries an enabled
flag, the launch command, its arguments, and optional environment
variables.`,
	Example: `  # List configured servers
  claudecfg mcp list

  # Add a server to the global layer
  claudecfg mcp add github --command npx --arg -y --arg @modelcontextprotocol/server-github

  # Disable a server in a project layer
  claudecfg mcp disable github --scope project

See Also: claudecfg config, claudecfg skill`,
	RunE: runMCPList,
}
