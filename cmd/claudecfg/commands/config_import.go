package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

func init() {
	configCmd.AddCommand(configImportCmd)
}

var configImportCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a configuration document from a file",
	Long: `Import a configuration document from a file into a layer.

The input is parsed, validated, and written through the normal safety
pipeline, so the previous configuration is backed up first. Unrecognized
fields in the input survive the round trip. JSON is the only supported
format; .toml sources are rejected until TOML support lands.

Without --scope, imports into the global layer.`,
	Example: `  # Import into the global layer
  claudecfg config import ./claude-config.json

  # Import into a project layer
  claudecfg config import ./team.json --scope project --project ~/src/api

  See Also: claudecfg config export, claudecfg backup list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigImport,
}

func runConfigImport(cmd *cobra.Command, args []string) error {
	return runConfigImportWithWriter(cmd, args, os.Stdout)
}

func runConfigImportWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	source := args[0]

	scope, root, err := scopeTarget()
	if err != nil {
		return err
	}

	s := newStore()
	doc, err := s.Import(source)
	if err != nil {
		return err
	}

	target := s.GlobalPath()
	if scope == config.ScopeProject {
		target = paths.ProjectConfigPath(root)
	}

	if err := s.Write(target, doc); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Imported %s into %s configuration%s\n",
		colorGreen, source, scope, colorReset)
	return nil
}
