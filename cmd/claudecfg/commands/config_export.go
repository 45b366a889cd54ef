package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configExportCmd)
}

var configExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export a configuration document to a file",
	Long: `Export a configuration document to a file.

The output format derives from the destination extension. JSON is the
only supported format; .toml destinations are rejected until TOML
support lands. Without --scope, exports the merged view.`,
	Example: `  # Export the merged configuration
  claudecfg config export ./claude-config.json

  # Export only the global layer
  claudecfg config export ./global.json --scope global

  See Also: claudecfg config import, claudecfg config show`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigExport,
}

func runConfigExport(cmd *cobra.Command, args []string) error {
	return runConfigExportWithWriter(cmd, args, os.Stdout)
}

func runConfigExportWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	dest := args[0]
	s := newStore()

	doc, err := showDocument(s)
	if err != nil {
		return err
	}
	if doc == nil {
		fmt.Fprintln(w, "No project configuration found.")
		return nil
	}

	if err := s.Export(doc, dest); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Exported configuration to %s%s\n", colorGreen, dest, colorReset)
	return nil
}
