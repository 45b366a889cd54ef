package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
)

var configDiffJSON bool

func init() {
	configDiffCmd.Flags().BoolVar(&configDiffJSON, "json", false, "Output in JSON format")
	configCmd.AddCommand(configDiffCmd)
}

var configDiffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare the global and project layers",
	Long: `Compare the global configuration against the project configuration.

Reports each top-level section the project layer adds, removes, or
modifies, plus a source map attributing every key of the merged view to
the layer it effectively comes from. Keys the project layer only adds
are broken down into their nested paths.

When no project configuration exists, every global key reports as
removed.`,
	Example: `  # Diff against the project discovered from the current directory
  claudecfg config diff

  # Diff against a specific project
  claudecfg config diff --project ~/src/api

  # Machine-readable output
  claudecfg config diff --json

  See Also: claudecfg config show`,
	RunE: runConfigDiff,
}

// configDiffOutput represents the JSON output for config diff.
type configDiffOutput struct {
	Changes []config.Change  `json:"changes"`
	Sources config.SourceMap `json:"sources"`
}

func runConfigDiff(cmd *cobra.Command, args []string) error {
	return runConfigDiffWithWriter(cmd, args, os.Stdout)
}

func runConfigDiffWithWriter(_ *cobra.Command, _ []string, w io.Writer) error {
	changes, sources, err := newStore().DiffConfigs(projectFlag)
	if err != nil {
		return err
	}

	if configDiffJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(configDiffOutput{Changes: changes, Sources: sources})
	}

	return outputDiffText(w, changes, sources)
}

func outputDiffText(w io.Writer, changes []config.Change, sources config.SourceMap) error {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No differences between global and project configuration")
		return nil
	}

	added := color.New(color.FgGreen).SprintFunc()
	removed := color.New(color.FgRed).SprintFunc()
	modified := color.New(color.FgYellow).SprintFunc()

	for _, c := range changes {
		switch c.Kind {
		case config.ChangeAdded:
			fmt.Fprintf(w, "%s %s = %s\n",
				added("+"), c.Path, added(renderValue(c.New)))
		case config.ChangeRemoved:
			fmt.Fprintf(w, "%s %s = %s\n",
				removed("-"), c.Path, removed(renderValue(c.Old)))
		case config.ChangeModified:
			fmt.Fprintf(w, "%s %s: %s -> %s\n",
				modified("~"), c.Path,
				renderValue(c.Old), modified(renderValue(c.New)))
		}
	}

	if len(sources) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%sSources:%s\n", colorBold, colorReset)

		keys := make([]string, 0, len(sources))
		for k := range sources {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, k := range keys {
			fmt.Fprintf(tw, "  %s\t%s\n", k, sources[k])
		}
		tw.Flush()
	}

	return nil
}

// renderValue compacts a diff value for single-line display.
func renderValue(v any) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return truncate(string(data), 60)
}
