package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
)

var (
	mcpAddCommand  string
	mcpAddArgs     []string
	mcpAddEnv      []string
	mcpAddDisabled bool
)

func init() {
	mcpAddCmd.Flags().StringVar(&mcpAddCommand, "command", "", "Command that launches the server")
	mcpAddCmd.Flags().StringArrayVar(&mcpAddArgs, "arg", nil, "Command argument (repeatable)")
	mcpAddCmd.Flags().StringArrayVar(&mcpAddEnv, "env", nil, "Environment variable as KEY=VALUE (repeatable)")
	mcpAddCmd.Flags().BoolVar(&mcpAddDisabled, "disabled", false, "Add the server in disabled state")
	mcpCmd.AddCommand(mcpAddCmd)
}

var mcpAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an MCP server entry",
	Long: `Add an MCP server entry to a configuration layer.

The name must be unique within the layer. New servers are enabled
unless --disabled is given. Without --scope, the entry is added to the
global layer.`,
	Example: `  # Add a server launched via npx
  claudecfg mcp add github --command npx --arg -y --arg @modelcontextprotocol/server-github

  # Add with an environment variable
  claudecfg mcp add github --command npx --env GITHUB_TOKEN=ghp_xxx

  # Add to the current project, disabled for now
  claudecfg mcp add local-db --command ./scripts/db-server --disabled --scope project

  See Also: claudecfg mcp list, claudecfg mcp remove`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPAdd,
}

func runMCPAdd(cmd *cobra.Command, args []string) error {
	return runMCPAddWithWriter(cmd, args, os.Stdout)
}

func runMCPAddWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	name := args[0]

	env, err := parseEnvFlags(mcpAddEnv)
	if err != nil {
		return err
	}

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	entry := &config.ServerEntry{
		Name:    name,
		Enabled: !mcpAddDisabled,
		Command: mcpAddCommand,
		Args:    mcpAddArgs,
		Env:     env,
	}

	if err := newStore().AddServer(entry, scope, root); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Added MCP server %q to %s configuration%s\n",
		colorGreen, name, scope, colorReset)
	return nil
}

// parseEnvFlags splits repeated KEY=VALUE flags into a map.
func parseEnvFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, errors.Newf("invalid --env value %q, expected KEY=VALUE", pair)
		}
		env[key] = value
	}
	return env, nil
}
