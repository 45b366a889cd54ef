package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/claudecfg/internal/paths"
	"github.com/thoreinstein/claudecfg/internal/project"
)

var (
	projectListMaxDepth int
	projectListJSON     bool
)

func init() {
	projectListCmd.Flags().IntVar(&projectListMaxDepth, "max-depth", 0,
		"Maximum directory depth to scan (0 uses the settings value, -1 for unlimited)")
	projectListCmd.Flags().BoolVar(&projectListJSON, "json", false, "Output in JSON format")
	projectCmd.AddCommand(projectListCmd)
	rootCmd.AddCommand(projectCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Discover projects with their own configuration",
	Long: `Discover projects carrying a .claude/config.json of their own.

Without a subcommand, lists projects under the current directory.`,
	Example: `  # List projects under the current directory
  claudecfg project list

  # List projects under a workspace root
  claudecfg project list ~/src

See Also: claudecfg config show, claudecfg config diff`,
	RunE: runProjectList,
}

var projectListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List projects with their own configuration",
	Long: `Scan a directory tree for projects carrying .claude/config.json.

Dependency and build directories (node_modules, target, .git, dist,
build) are skipped. Results are sorted by project name. Without an
argument, scans from the current directory.`,
	Example: `  # Scan the current directory
  claudecfg project list

  # Scan a workspace with a depth limit
  claudecfg project list ~/src --max-depth 3

  # Output as JSON
  claudecfg project list --json

  See Also: claudecfg config show`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProjectList,
}

func runProjectList(cmd *cobra.Command, args []string) error {
	return runProjectListWithWriter(cmd, args, os.Stdout)
}

func runProjectListWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	start := "."
	if len(args) > 0 {
		start = args[0]
		if expanded, err := paths.ExpandHome(start); err == nil {
			start = expanded
		}
	}

	depth := projectListMaxDepth
	if depth == 0 {
		depth = viper.GetInt("scan_depth")
	}

	scanner := project.NewScanner(project.WithMaxDepth(depth))
	projects, err := scanner.Scan(start)
	if err != nil {
		return errors.Wrapf(err, "scanning %s", start)
	}

	if projectListJSON {
		if projects == nil {
			projects = []project.Info{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects with configuration found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sROOT%s\t%sMODIFIED%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, p := range projects {
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n",
			colorCyan, p.Name, colorReset,
			p.Root,
			p.LastModified.Local().Format("2006-01-02 15:04:05"))
	}
	tw.Flush()

	return nil
}
