package commands

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/editor"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

func init() {
	configCmd.AddCommand(configEditCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open a configuration file in $EDITOR",
	Long: `Open a configuration file in your default editor.

Uses the $EDITOR environment variable, falling back to $VISUAL, nano,
and vi. Without --scope, opens the global configuration. The file is
edited in place, so no backup is taken; run 'claudecfg backup create'
first if you want one.`,
	Example: `  # Edit the global configuration
  claudecfg config edit

  # Edit the current project configuration
  claudecfg config edit --scope project

  # Edit with a specific editor
  EDITOR=nano claudecfg config edit

  See Also: claudecfg config show, claudecfg backup create`,
	RunE: runConfigEdit,
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	target := paths.GlobalConfigPath()
	if scope == config.ScopeProject {
		target = paths.ProjectConfigPath(root)
	}

	if _, err := os.Stat(target); os.IsNotExist(err) {
		return errors.Newf("configuration file not found at %s", target)
	}

	fmt.Printf("Location: %s\n", target)
	return editor.Open(target)
}
