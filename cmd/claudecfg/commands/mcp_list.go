package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/logging"
	"github.com/thoreinstein/claudecfg/internal/store"
)

var (
	mcpListJSON        bool
	mcpListShowSecrets bool
)

func init() {
	mcpListCmd.Flags().BoolVar(&mcpListJSON, "json", false, "Output in JSON format")
	mcpListCmd.Flags().BoolVar(&mcpListShowSecrets, "show-secrets", false,
		"Show full environment values instead of masking secrets")
	mcpCmd.AddCommand(mcpListCmd)
}

var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured MCP servers",
	Long: `List MCP server entries.

Without --scope, lists the merged view where project entries override
global ones. Environment values that look like secrets are masked;
use --show-secrets to print them in full.`,
	Example: `  # List servers from the merged view
  claudecfg mcp list

  # List only global servers
  claudecfg mcp list --scope global

  # Output as JSON with unmasked secrets
  claudecfg mcp list --json --show-secrets

  See Also: claudecfg mcp add, claudecfg mcp enable`,
	RunE: runMCPList,
}

// mcpServerOutput represents a single server in JSON output.
type mcpServerOutput struct {
	Name    string            `json:"name"`
	Enabled bool              `json:"enabled"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

func runMCPList(cmd *cobra.Command, args []string) error {
	return runMCPListWithWriter(cmd, args, os.Stdout)
}

func runMCPListWithWriter(_ *cobra.Command, _ []string, w io.Writer) error {
	servers, err := listServers(newStore())
	if err != nil {
		return err
	}

	if mcpListJSON {
		return outputMCPJSON(w, servers)
	}
	return outputMCPTabular(w, servers)
}

// listServers resolves the --scope flag to a sorted server slice, defaulting
// to the merged view.
func listServers(s *store.Store) ([]*config.ServerEntry, error) {
	if scope := config.Scope(scopeFlag); scope.Valid() {
		root := ""
		if scope == config.ScopeProject {
			var err error
			if root, err = projectRoot(); err != nil {
				return nil, err
			}
		}
		return s.ListServers(scope, root)
	}

	doc, err := s.Merged(projectFlag)
	if err != nil {
		return nil, err
	}

	servers := make([]*config.ServerEntry, 0, len(doc.MCPServers))
	for _, entry := range doc.MCPServers {
		servers = append(servers, entry)
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i].Name < servers[j].Name })
	return servers, nil
}

func outputMCPJSON(w io.Writer, servers []*config.ServerEntry) error {
	output := make([]mcpServerOutput, len(servers))
	for i, s := range servers {
		env := s.Env
		if !mcpListShowSecrets {
			env = logging.MaskSecrets(env)
		}
		output[i] = mcpServerOutput{
			Name:    s.Name,
			Enabled: s.Enabled,
			Command: s.Command,
			Args:    s.Args,
			Env:     env,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputMCPTabular(w io.Writer, servers []*config.ServerEntry) error {
	if len(servers) == 0 {
		fmt.Fprintln(w, "No MCP servers configured")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add one with: claudecfg mcp add <name> --command <command>")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCOMMAND%s\t%sARGS%s\t%sSTATUS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range servers {
		status := colorGreen + "enabled" + colorReset
		if !s.Enabled {
			status = colorGray + "disabled" + colorReset
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Name,
			truncate(s.Command, 30),
			truncate(strings.Join(s.Args, " "), 40),
			status)
	}
	tw.Flush()

	return nil
}
