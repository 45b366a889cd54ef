package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	mcpCmd.AddCommand(mcpRemoveCmd)
}

var mcpRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an MCP server entry",
	Long: `Remove an MCP server entry from a configuration layer.

The previous configuration is backed up before the write. Removing an
unknown server reports the available names. Without --scope, removes
from the global layer.`,
	Example: `  # Remove a server from the global layer
  claudecfg mcp remove github

  # Remove from the current project
  claudecfg mcp remove github --scope project

  See Also: claudecfg mcp list, claudecfg mcp add`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPRemove,
}

func runMCPRemove(cmd *cobra.Command, args []string) error {
	return runMCPRemoveWithWriter(cmd, args, os.Stdout)
}

func runMCPRemoveWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	name := args[0]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	if err := newStore().RemoveServer(name, scope, root); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Removed MCP server %q from %s configuration%s\n",
		colorGreen, name, scope, colorReset)
	return nil
}
