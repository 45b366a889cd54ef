package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(skillCmd)
}

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skill entries",
	Long: `Manage skill entries in the managed configuration.

Skills live in the skills section. Each entry carries an enabled flag
and an optional free-form parameters object that is preserved byte for
byte.`,
	Example: `  # List configured skills
  claudecfg skill list

  # Add a skill with parameters
  claudecfg skill add formatter --parameters '{"style": "goimports"}'

  # Disable a skill in the current project
  claudecfg skill disable formatter --scope project

See Also: claudecfg mcp, claudecfg config`,
	RunE: runSkillList,
}
