package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/errors"
)

func init() {
	backupCmd.AddCommand(backupCreateCmd)
}

var backupCreateCmd = &cobra.Command{
	Use:   "create [file]",
	Short: "Create a manual backup",
	Long: `Create a timestamped backup of a configuration file.

Backups are created automatically before claudecfg modifies
configurations. This command allows you to create additional backups
manually. Without an argument, backs up the configuration of the
selected scope.`,
	Example: `  # Back up the global configuration
  claudecfg backup create

  # Back up the current project configuration
  claudecfg backup create --scope project

  # Back up an arbitrary file
  claudecfg backup create ./exported.json

  See Also:
    claudecfg backup list    - List available backups
    claudecfg backup restore - Restore from a backup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupCreate,
}

func runBackupCreate(cmd *cobra.Command, args []string) error {
	return runBackupCreateWithWriter(cmd, args, os.Stdout)
}

func runBackupCreateWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
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
	backupPath, err := mgr.Create(target)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return errors.Newf("nothing to back up: %s does not exist", target)
		}
		return errors.Wrapf(err, "backing up %s", target)
	}

	fmt.Fprintf(w, "%s✓ Created backup %s%s\n", colorGreen, backupPath, colorReset)
	return nil
}
