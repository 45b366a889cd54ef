// Package settings provides the tool's own configuration using Viper.
//
// This is the claudecfg tool's settings file (backup directory, retention,
// scan depth), not the managed configuration documents themselves.
package settings

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

// AppName is the application name used for settings file naming.
const AppName = "claudecfg"

// Settings represents the top-level tool settings structure.
type Settings struct {
	Version         int    `mapstructure:"version" yaml:"version"`
	BackupDir       string `mapstructure:"backup_dir" yaml:"backup_dir"`
	BackupRetention int    `mapstructure:"backup_retention" yaml:"backup_retention"`
	ScanDepth       int    `mapstructure:"scan_depth" yaml:"scan_depth"`
}

// Dir returns the directory holding the settings file.
func Dir() string {
	return filepath.Join(paths.ConfigHome(), AppName)
}

// Path returns the settings file location.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Init initializes Viper with defaults and environment support.
// Call this once at application startup before accessing settings values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix("CLAUDECFG")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("backup_dir", paths.DefaultBackupDir())
	viper.SetDefault("backup_retention", backup.DefaultRetentionCount)
	viper.SetDefault("scan_depth", -1)
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Settings, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "settings file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	return &s, nil
}
