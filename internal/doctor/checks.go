package doctor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/paths"
	"github.com/thoreinstein/claudecfg/internal/settings"
	"github.com/thoreinstein/claudecfg/internal/validator"
	"github.com/thoreinstein/claudecfg/pkg/fileutil"
)

// SettingsCheck verifies the claudecfg settings file parses.
type SettingsCheck struct{}

// NewSettingsCheck creates a settings file check.
func NewSettingsCheck() *SettingsCheck {
	return &SettingsCheck{}
}

// Name returns the check identifier.
func (c *SettingsCheck) Name() string {
	return "settings-file"
}

// Category returns the check category.
func (c *SettingsCheck) Category() string {
	return "settings"
}

// Run executes the check.
func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	path := settings.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "no settings file, using defaults"
		result.FixHint = "run 'claudecfg init' to create one"
		return result
	}

	if _, err := settings.Load(path); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("settings file is unreadable: %v", err)
		result.Details = map[string]any{"path": path}
		result.FixHint = "fix or remove the file, then run 'claudecfg init'"
		return result
	}

	result.Status = SeverityPass
	result.Message = "settings file is valid"
	result.Details = map[string]any{"path": path}
	return result
}

// ConfigCheck verifies a configuration document parses and validates.
type ConfigCheck struct {
	name string
	path string
}

// NewConfigCheck creates a check for the configuration document at path.
// A missing file passes as informational since both layers are optional.
func NewConfigCheck(name, path string) *ConfigCheck {
	return &ConfigCheck{name: name, path: path}
}

// NewGlobalConfigCheck creates a check for the global configuration file.
func NewGlobalConfigCheck() *ConfigCheck {
	return NewConfigCheck("global-config", paths.GlobalConfigPath())
}

// NewProjectConfigCheck creates a check for the project configuration
// discovered from the current directory.
func NewProjectConfigCheck() *ConfigCheck {
	check := &ConfigCheck{name: "project-config"}
	if cwd, err := os.Getwd(); err == nil {
		if p, err := paths.FindProjectConfig(cwd); err == nil {
			check.path = p
		}
	}
	return check
}

// Name returns the check identifier.
func (c *ConfigCheck) Name() string {
	return c.name
}

// Category returns the check category.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the check.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	if c.path == "" {
		result.Status = SeverityInfo
		result.Message = "no configuration found"
		return result
	}

	if _, err := os.Stat(c.path); os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "no configuration yet, created on first write"
		result.Details = map[string]any{"path": c.path}
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration is unreadable: %v", err)
		result.Details = map[string]any{"path": c.path}
		result.FixHint = "check file permissions"
		return result
	}

	doc := config.New()
	if err := json.Unmarshal(data, doc); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration is not valid JSON: %v", err)
		result.Details = map[string]any{"path": c.path}
		result.FixHint = "restore a backup with 'claudecfg backup restore'"
		return result
	}

	if err := validator.Validate(doc); err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("configuration fails validation: %v", err)
		result.Details = map[string]any{"path": c.path}
		return result
	}

	result.Status = SeverityPass
	result.Message = "configuration is valid"
	result.Details = map[string]any{
		"path":    c.path,
		"servers": len(doc.MCPServers),
		"skills":  len(doc.Skills),
	}
	return result
}

// BackupDirCheck verifies the backup directory is usable.
type BackupDirCheck struct {
	dir string
}

// NewBackupDirCheck creates a backup directory check.
func NewBackupDirCheck(dir string) *BackupDirCheck {
	if dir == "" {
		dir = paths.DefaultBackupDir()
	}
	return &BackupDirCheck{dir: dir}
}

// Name returns the check identifier.
func (c *BackupDirCheck) Name() string {
	return "backup-dir"
}

// Category returns the check category.
func (c *BackupDirCheck) Category() string {
	return "backup"
}

// Run executes the check.
func (c *BackupDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.dir},
	}

	info, err := os.Stat(c.dir)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "backup directory does not exist yet, created on first backup"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("backup directory is inaccessible: %v", err)
		result.FixHint = "check file permissions"
		return result
	}
	if !info.IsDir() {
		result.Status = SeverityError
		result.Message = "backup directory path is occupied by a regular file"
		result.FixHint = "move the file aside or set backup_dir in the settings file"
		return result
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("backup directory is unreadable: %v", err)
		return result
	}

	result.Status = SeverityPass
	result.Message = "backup directory is usable"
	result.Details["backups"] = len(entries)
	return result
}
