package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
}

var configSetCmd = &cobra.Command{
	Use:   "set <key-path> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value by dot-separated key path.

The value is parsed as JSON when possible and treated as a plain string
otherwise. Supported paths cover the enabled, command, and args fields
of MCP servers, the enabled and parameters fields of skills,
allowedPaths, customInstructions, and top-level unrecognized keys.

A single string for customInstructions appends to the list; a JSON
array replaces it. allowedPaths always replaces.`,
	Example: `  # Enable an MCP server in the global layer
  claudecfg config set mcpServers.npx.enabled true

  # Replace the command arguments of a server
  claudecfg config set mcpServers.npx.args '["-y", "server"]'

  # Append a custom instruction in the project layer
  claudecfg config set customInstructions "prefer tabs" --scope project

  See Also: claudecfg config show, claudecfg mcp enable`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	return runConfigSetWithWriter(cmd, args, os.Stdout)
}

func runConfigSetWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	keyPath, value := args[0], args[1]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	if err := newStore().SetValue(keyPath, value, scope, root); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Set %s in %s configuration%s\n",
		colorGreen, keyPath, scope, colorReset)
	return nil
}
