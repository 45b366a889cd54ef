package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/backup"
)

var pruneKeep int

func init() {
	backupPruneCmd.Flags().IntVar(&pruneKeep, "keep", backup.DefaultRetentionCount,
		"Number of backups to retain")
	backupCmd.AddCommand(backupPruneCmd)
}

var backupPruneCmd = &cobra.Command{
	Use:   "prune [file]",
	Short: "Remove old backups",
	Long: `Remove old backups beyond the retention count.

By default, keeps the 10 most recent backups and removes older ones.
Use the --keep flag to specify a different retention count. Without an
argument, prunes backups of the configuration of the selected scope.`,
	Example: `  # Prune, keeping the default number of backups
  claudecfg backup prune

  # Keep only the 3 most recent backups
  claudecfg backup prune --keep 3

  # Prune backups of the current project configuration
  claudecfg backup prune --scope project

  See Also:
    claudecfg backup list   - List available backups
    claudecfg backup create - Create a new backup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupPrune,
}

func runBackupPrune(cmd *cobra.Command, args []string) error {
	return runBackupPruneWithWriter(cmd, args, os.Stdout)
}

func runBackupPruneWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	if pruneKeep <= 0 {
		return errors.New("--keep must be positive")
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	} else {
		var err error
		if target, err = backupTarget(); err != nil {
			return err
		}
	}

	mgr := newBackupManager(pruneKeep)
	removed, err := mgr.Cleanup(target)
	if err != nil {
		return errors.Wrapf(err, "pruning backups for %s", target)
	}

	if removed == 0 {
		fmt.Fprintln(w, "No backups to prune")
	} else {
		fmt.Fprintf(w, "%s✓ Removed %d old backup(s)%s\n", colorGreen, removed, colorReset)
	}

	return nil
}
