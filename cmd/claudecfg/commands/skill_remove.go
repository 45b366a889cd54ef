package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	skillCmd.AddCommand(skillRemoveCmd)
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a skill entry",
	Long: `Remove a skill entry from a configuration layer.

The previous configuration is backed up before the write. Removing an
unknown skill reports the available names. Without --scope, removes
from the global layer.`,
	Example: `  # Remove a skill from the global layer
  claudecfg skill remove formatter

  # Remove from the current project
  claudecfg skill remove formatter --scope project

  See Also: claudecfg skill list, claudecfg skill add`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillRemove,
}

func runSkillRemove(cmd *cobra.Command, args []string) error {
	return runSkillRemoveWithWriter(cmd, args, os.Stdout)
}

func runSkillRemoveWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	name := args[0]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	if err := newStore().RemoveSkill(name, scope, root); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Removed skill %q from %s configuration%s\n",
		colorGreen, name, scope, colorReset)
	return nil
}
