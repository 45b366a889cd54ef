package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupRestoreCmd)
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore [backup-file]",
	Short: "Restore from a backup",
	Long: `Restore a configuration file from a backup.

Without an argument, picks from the backups of the selected scope: an
interactive fuzzy finder on a terminal, the most recent backup
otherwise. The backup is copied back over the original location, which
is derived from the backup name.`,
	Example: `  # Pick a backup interactively
  claudecfg backup restore

  # Restore a specific backup
  claudecfg backup restore config_20260115_103000.123.json

  # List available backups first
  claudecfg backup list

  See Also:
    claudecfg backup list   - List available backups
    claudecfg backup create - Create a new backup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupRestore,
}

func runBackupRestore(cmd *cobra.Command, args []string) error {
	return runBackupRestoreWithWriter(cmd, args, os.Stdout)
}

func runBackupRestoreWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	mgr := newBackupManager(0)

	var backupPath string
	if len(args) > 0 {
		backupPath = args[0]
		if filepath.Dir(backupPath) == "." {
			backupPath = filepath.Join(mgr.Dir(), backupPath)
		}
	} else {
		target, err := backupTarget()
		if err != nil {
			return err
		}
		records, err := mgr.List(target)
		if err != nil {
			return errors.Wrapf(err, "listing backups for %s", target)
		}
		if len(records) == 0 {
			return errors.Newf("no backups found for %s", target)
		}

		if backupPath, err = pickBackup(w, records); err != nil || backupPath == "" {
			return err
		}
	}

	restored, err := mgr.Restore(backupPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s✓ Restored %s from %s%s\n",
		colorGreen, restored, filepath.Base(backupPath), colorReset)
	return nil
}

// pickBackup selects a backup from records: interactively on a terminal,
// newest first otherwise. An empty path means the user aborted.
func pickBackup(w io.Writer, records []backup.Record) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		path := records[0].Path
		fmt.Fprintf(w, "Using most recent backup: %s\n", filepath.Base(path))
		return path, nil
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string {
			return filepath.Base(records[i].Path)
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			r := records[i]
			return fmt.Sprintf("Created: %s\nSize: %d bytes\nOriginal: %s",
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Size,
				r.OriginalPath,
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive backup selection failed")
	}

	return records[idx].Path, nil
}
