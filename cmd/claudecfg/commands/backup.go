package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

func init() {
	rootCmd.AddCommand(backupCmd)
}

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage configuration backups",
	Long: `Manage the timestamped backups taken before every configuration write.

Backups live in a flat directory next to the global configuration, named
<stem>_<timestamp>.<ext> after the file they copy. Old backups beyond
the retention count are removed by prune.`,
	Example: `  # List backups of the global configuration
  claudecfg backup list

  # Create a backup by hand
  claudecfg backup create

  # Restore the most recent backup
  claudecfg backup restore

See Also: claudecfg config, claudecfg init`,
	RunE: runBackupList,
}

// settingsBackupDir returns the backup directory from the settings file with
// a leading ~ expanded. Empty when unset so manager defaults apply.
func settingsBackupDir() string {
	dir := viper.GetString("backup_dir")
	if dir == "" {
		return ""
	}
	if expanded, err := paths.ExpandHome(dir); err == nil {
		dir = expanded
	}
	return dir
}

// newBackupManager builds a manager honoring the settings file, with an
// optional retention override.
func newBackupManager(retention int) *backup.Manager {
	var opts []backup.Option
	if dir := settingsBackupDir(); dir != "" {
		opts = append(opts, backup.WithDir(dir))
	}
	if retention <= 0 {
		retention = viper.GetInt("backup_retention")
	}
	if retention > 0 {
		opts = append(opts, backup.WithRetention(retention))
	}
	return backup.NewManager(opts...)
}

// backupTarget resolves the configuration file backups operate on.
// Global scope is the default.
func backupTarget() (string, error) {
	scope, root, err := scopeTarget()
	if err != nil {
		return "", err
	}
	if scope == config.ScopeProject {
		return paths.ProjectConfigPath(root), nil
	}
	return paths.GlobalConfigPath(), nil
}
