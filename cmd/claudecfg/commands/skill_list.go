package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/store"
)

var skillListJSON bool

func init() {
	skillListCmd.Flags().BoolVar(&skillListJSON, "json", false, "Output in JSON format")
	skillCmd.AddCommand(skillListCmd)
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured skills",
	Long: `List skill entries.

Without --scope, lists the merged view where project entries override
global ones.`,
	Example: `  # List skills from the merged view
  claudecfg skill list

  # List only project skills
  claudecfg skill list --scope project

  # Output as JSON
  claudecfg skill list --json

  See Also: claudecfg skill add, claudecfg skill enable`,
	RunE: runSkillList,
}

// skillOutput represents a single skill in JSON output.
type skillOutput struct {
	Name       string          `json:"name"`
	Enabled    bool            `json:"enabled"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

func runSkillList(cmd *cobra.Command, args []string) error {
	return runSkillListWithWriter(cmd, args, os.Stdout)
}

func runSkillListWithWriter(_ *cobra.Command, _ []string, w io.Writer) error {
	skills, err := listSkills(newStore())
	if err != nil {
		return err
	}

	if skillListJSON {
		output := make([]skillOutput, len(skills))
		for i, s := range skills {
			output[i] = skillOutput{Name: s.Name, Enabled: s.Enabled, Parameters: s.Parameters}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	return outputSkillsTabular(w, skills)
}

// listSkills resolves the --scope flag to a sorted skill slice, defaulting
// to the merged view.
func listSkills(s *store.Store) ([]*config.SkillEntry, error) {
	if scope := config.Scope(scopeFlag); scope.Valid() {
		root := ""
		if scope == config.ScopeProject {
			var err error
			if root, err = projectRoot(); err != nil {
				return nil, err
			}
		}
		return s.ListSkills(scope, root)
	}

	doc, err := s.Merged(projectFlag)
	if err != nil {
		return nil, err
	}

	skills := make([]*config.SkillEntry, 0, len(doc.Skills))
	for _, entry := range doc.Skills {
		skills = append(skills, entry)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

func outputSkillsTabular(w io.Writer, skills []*config.SkillEntry) error {
	if len(skills) == 0 {
		fmt.Fprintln(w, "No skills configured")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add one with: claudecfg skill add <name>")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sPARAMETERS%s\t%sSTATUS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range skills {
		params := "-"
		if len(s.Parameters) > 0 {
			params = truncate(string(s.Parameters), 40)
		}
		status := colorGreen + "enabled" + colorReset
		if !s.Enabled {
			status = colorGray + "disabled" + colorReset
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, params, status)
	}
	tw.Flush()

	return nil
}
