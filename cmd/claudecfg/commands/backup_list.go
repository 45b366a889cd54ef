package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/backup"
)

var backupListJSON bool

func init() {
	backupListCmd.Flags().BoolVar(&backupListJSON, "json", false, "Output in JSON format")
	backupCmd.AddCommand(backupListCmd)
}

var backupListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List available backups",
	Long: `List backups of a configuration file, most recent first.

Without an argument, lists backups of the configuration of the selected
scope.`,
	Example: `  # List backups of the global configuration
  claudecfg backup list

  # List backups of the current project configuration
  claudecfg backup list --scope project

  # Output as JSON
  claudecfg backup list --json

  See Also:
    claudecfg backup restore - Restore from a backup
    claudecfg backup create  - Create a new backup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupList,
}

func runBackupList(cmd *cobra.Command, args []string) error {
	return runBackupListWithWriter(cmd, args, os.Stdout)
}

func runBackupListWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	var target string
	if len(args) > 0 {
		target = args[0]
	} else {
		var err error
		if target, err = backupTarget(); err != nil {
			return err
		}
	}

	mgr := newBackupManager(0)
	records, err := mgr.List(target)
	if err != nil {
		return errors.Wrapf(err, "listing backups for %s", target)
	}

	if backupListJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	return outputBackupListTabular(w, target, records)
}

func outputBackupListTabular(w io.Writer, target string, records []backup.Record) error {
	fmt.Fprintf(w, "%sBackups of %s%s\n", colorCyan+colorBold, target, colorReset)

	if len(records) == 0 {
		fmt.Fprintf(w, "  %s(no backups available)%s\n", colorGray, colorReset)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before claudecfg modifies configurations.")
		fmt.Fprintln(w, "You can also create a backup manually with: claudecfg backup create")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sNAME%s\t%sCREATED%s\t%sSIZE%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, r := range records {
		fmt.Fprintf(tw, "  %s%s%s\t%s\t%d\n",
			colorGreen, filepath.Base(r.Path), colorReset,
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Size)
	}
	tw.Flush()

	return nil
}
