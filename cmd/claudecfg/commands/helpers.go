package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/store"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// newStore builds a Store honoring the backup settings from the settings file.
func newStore() *store.Store {
	opts := []store.Option{store.WithLogger(slog.Default())}

	var backupOpts []backup.Option
	if dir := settingsBackupDir(); dir != "" {
		backupOpts = append(backupOpts, backup.WithDir(dir))
	}
	if n := viper.GetInt("backup_retention"); n > 0 {
		backupOpts = append(backupOpts, backup.WithRetention(n))
	}
	if len(backupOpts) > 0 {
		opts = append(opts, store.WithBackupManager(backup.NewManager(backupOpts...)))
	}

	return store.New(opts...)
}

// writeScope resolves the --scope flag for mutating commands.
// An unset flag defaults to the global layer.
func writeScope() config.Scope {
	if scopeFlag == "" {
		return config.ScopeGlobal
	}
	return config.Scope(scopeFlag)
}

// projectRoot returns the --project flag value, falling back to the current
// directory so project-scoped writes land in the invoking project.
func projectRoot() (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "resolve working directory")
	}
	return cwd, nil
}

// scopeTarget pairs a write scope with the project root it needs.
// Global scope never resolves a project root.
func scopeTarget() (config.Scope, string, error) {
	scope := writeScope()
	if scope != config.ScopeProject {
		return scope, "", nil
	}
	root, err := projectRoot()
	if err != nil {
		return "", "", err
	}
	return scope, root, nil
}
