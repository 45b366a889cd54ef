package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/logging"
)

func init() {
	mcpShowCmd.Flags().BoolVar(&mcpListShowSecrets, "show-secrets", false,
		"Show full environment values instead of masking secrets")
	mcpCmd.AddCommand(mcpShowCmd)
}

var mcpShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a single MCP server entry",
	Long: `Show the full details of one MCP server entry as JSON.

Without --scope, looks the server up in the merged view.`,
	Example: `  # Show a server from the merged view
  claudecfg mcp show github

  # Show the global definition only
  claudecfg mcp show github --scope global

  See Also: claudecfg mcp list`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPShow,
}

func runMCPShow(cmd *cobra.Command, args []string) error {
	return runMCPShowWithWriter(cmd, args, os.Stdout)
}

func runMCPShowWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	name := args[0]

	servers, err := listServers(newStore())
	if err != nil {
		return err
	}

	var entry *config.ServerEntry
	for _, s := range servers {
		if s.Name == name {
			entry = s
			break
		}
	}
	if entry == nil {
		return errors.Newf("MCP server %q not found", name)
	}

	env := entry.Env
	if !mcpListShowSecrets {
		env = logging.MaskSecrets(env)
	}

	out := mcpServerOutput{
		Name:    entry.Name,
		Enabled: entry.Enabled,
		Command: entry.Command,
		Args:    entry.Args,
		Env:     env,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "rendering server entry")
	}
	fmt.Fprintln(w, string(data))
	return nil
}
