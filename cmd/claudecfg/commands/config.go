package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit configuration documents",
	Long: `Inspect and edit the managed Claude configuration.

Without a subcommand, shows the merged configuration.`,
	Example: `  # Show the merged configuration
  claudecfg config show

  # Set a value in the global layer
  claudecfg config set mcpServers.npx.enabled true

  # Compare the global and project layers
  claudecfg config diff

See Also: claudecfg mcp, claudecfg skill, claudecfg search`,
	RunE: runConfigShow,
}
