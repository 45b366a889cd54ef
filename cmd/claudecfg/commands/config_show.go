package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/store"
)

func init() {
	configCmd.AddCommand(configShowCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configuration document",
	Long: `Show a configuration document as pretty-printed JSON.

Without --scope, shows the merged view: the global layer with the
project layer folded on top. With --scope, shows that single layer.`,
	Example: `  # Show the merged configuration
  claudecfg config show

  # Show only the global layer
  claudecfg config show --scope global

  # Show the project layer for a specific project
  claudecfg config show --scope project --project ~/src/api

  See Also: claudecfg config diff, claudecfg config set`,
	RunE: runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	return runConfigShowWithWriter(cmd, args, os.Stdout)
}

func runConfigShowWithWriter(_ *cobra.Command, _ []string, w io.Writer) error {
	s := newStore()

	doc, err := showDocument(s)
	if err != nil {
		return err
	}
	if doc == nil {
		fmt.Fprintln(w, "No project configuration found.")
		return nil
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "rendering configuration")
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// showDocument picks the layer the --scope flag asks for, defaulting to the
// merged view. A nil document means the project layer does not exist.
func showDocument(s *store.Store) (*config.Document, error) {
	switch config.Scope(scopeFlag) {
	case config.ScopeGlobal:
		return s.Global()
	case config.ScopeProject:
		doc, _, err := s.Project(projectFlag)
		return doc, err
	default:
		return s.Merged(projectFlag)
	}
}
