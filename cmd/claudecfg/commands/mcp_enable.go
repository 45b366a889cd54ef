package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	mcpCmd.AddCommand(mcpEnableCmd)
	mcpCmd.AddCommand(mcpDisableCmd)
}

var mcpEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable an MCP server",
	Long: `Enable an MCP server entry in a configuration layer.

Without --scope, targets the global layer.`,
	Example: `  # Enable a server globally
  claudecfg mcp enable github

  # Enable in the current project
  claudecfg mcp enable github --scope project

  See Also: claudecfg mcp disable, claudecfg mcp list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPSetEnabled(cmd, args, true, os.Stdout)
	},
}

var mcpDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable an MCP server",
	Long: `Disable an MCP server entry in a configuration layer.

The entry is kept with its command and arguments so it can be enabled
again later. Without --scope, targets the global layer.`,
	Example: `  # Disable a server globally
  claudecfg mcp disable github

  # Disable in the current project
  claudecfg mcp disable github --scope project

  See Also: claudecfg mcp enable, claudecfg mcp remove`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPSetEnabled(cmd, args, false, os.Stdout)
	},
}

func runMCPSetEnabled(_ *cobra.Command, args []string, enabled bool, w io.Writer) error {
	name := args[0]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	s := newStore()
	verb := "Enabled"
	if enabled {
		err = s.EnableServer(name, scope, root)
	} else {
		verb = "Disabled"
		err = s.DisableServer(name, scope, root)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ %s MCP server %q in %s configuration%s\n",
		colorGreen, verb, name, scope, colorReset)
	return nil
}
