package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	skillCmd.AddCommand(skillEnableCmd)
	skillCmd.AddCommand(skillDisableCmd)
}

var skillEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a skill",
	Long: `Enable a skill entry in a configuration layer.

Without --scope, targets the global layer.`,
	Example: `  # Enable a skill globally
  claudecfg skill enable formatter

  # Enable in the current project
  claudecfg skill enable formatter --scope project

  See Also: claudecfg skill disable, claudecfg skill list`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkillSetEnabled(cmd, args, true, os.Stdout)
	},
}

var skillDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a skill",
	Long: `Disable a skill entry in a configuration layer.

The entry is kept with its parameters so it can be enabled again later.
Without --scope, targets the global layer.`,
	Example: `  # Disable a skill globally
  claudecfg skill disable formatter

  # Disable in the current project
  claudecfg skill disable formatter --scope project

  See Also: claudecfg skill enable, claudecfg skill remove`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSkillSetEnabled(cmd, args, false, os.Stdout)
	},
}

func runSkillSetEnabled(_ *cobra.Command, args []string, enabled bool, w io.Writer) error {
	name := args[0]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	s := newStore()
	verb := "Enabled"
	if enabled {
		err = s.EnableSkill(name, scope, root)
	} else {
		verb = "Disabled"
		err = s.DisableSkill(name, scope, root)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ %s skill %q in %s configuration%s\n",
		colorGreen, verb, name, scope, colorReset)
	return nil
}
