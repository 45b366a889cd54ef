package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/paths"
	"github.com/thoreinstein/claudecfg/internal/settings"
	"github.com/thoreinstein/claudecfg/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing settings")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize claudecfg settings",
	Long: `Bootstrap the claudecfg settings file with defaults.

Creates ~/.config/claudecfg/config.yaml holding the backup directory,
backup retention count, and project scan depth. The managed Claude
configuration itself lives elsewhere and is created on first write.`,
	Example: `  # Initialize settings
  claudecfg init

  # Force overwrite existing settings
  claudecfg init --force

  See Also: claudecfg config, claudecfg backup`,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	settingsPath := settings.Path()

	// Check if settings already exist
	if _, err := os.Stat(settingsPath); err == nil && !initForce {
		fmt.Printf("Settings already exist at %s\n", settingsPath)
		fmt.Println("Use --force to overwrite")
		return nil
	}

	cfg := settings.Settings{
		Version:         1,
		BackupDir:       paths.DefaultBackupDir(),
		BackupRetention: backup.DefaultRetentionCount,
		ScanDepth:       -1,
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}

	if err := fileutil.AtomicWriteYAML(settingsPath, &cfg); err != nil {
		return errors.Wrap(err, "writing settings file")
	}

	fmt.Printf("Created %s\n", settingsPath)
	return nil
}
