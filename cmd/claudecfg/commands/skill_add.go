package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
)

var (
	skillAddParameters string
	skillAddDisabled   bool
)

func init() {
	skillAddCmd.Flags().StringVar(&skillAddParameters, "parameters", "",
		"Skill parameters as a JSON object")
	skillAddCmd.Flags().BoolVar(&skillAddDisabled, "disabled", false,
		"Add the skill in disabled state")
	skillCmd.AddCommand(skillAddCmd)
}

var skillAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill entry",
	Long: `Add a skill entry to a configuration layer.

The name must be unique within the layer. New skills are enabled unless
--disabled is given. Parameters must be valid JSON and are stored
verbatim. Without --scope, the entry is added to the global layer.`,
	Example: `  # Add a skill
  claudecfg skill add formatter

  # Add with parameters
  claudecfg skill add formatter --parameters '{"style": "goimports"}'

  # Add to the current project
  claudecfg skill add linter --scope project

  See Also: claudecfg skill list, claudecfg skill remove`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillAdd,
}

func runSkillAdd(cmd *cobra.Command, args []string) error {
	return runSkillAddWithWriter(cmd, args, os.Stdout)
}

func runSkillAddWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	name := args[0]

	var params json.RawMessage
	if skillAddParameters != "" {
		if !json.Valid([]byte(skillAddParameters)) {
			return errors.Newf("invalid --parameters value: not valid JSON")
		}
		params = json.RawMessage(skillAddParameters)
	}

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	entry := &config.SkillEntry{
		Name:       name,
		Enabled:    !skillAddDisabled,
		Parameters: params,
	}

	if err := newStore().AddSkill(entry, scope, root); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Added skill %q to %s configuration%s\n",
		colorGreen, name, scope, colorReset)
	return nil
}
