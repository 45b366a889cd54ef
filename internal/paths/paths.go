package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Well-known file and directory names for the layered configuration.
const (
	// GlobalDirName is the directory under XDG config home holding the
	// global configuration.
	GlobalDirName = "claude"

	// ProjectDirName is the per-project directory holding the project
	// configuration override.
	ProjectDirName = ".claude"

	// ConfigFileName is the configuration file name in both scopes.
	ConfigFileName = "config.json"

	// BackupDirName is the directory under the global config directory
	// holding timestamped backups.
	BackupDirName = "backups"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrNoProjectConfig indicates no project configuration was found in the
	// directory or any of its ancestors.
	ErrNoProjectConfig = errors.New("no project configuration found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with the given
// permissions. If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string if it cannot be
// determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// GlobalConfigDir returns the directory holding the global configuration.
// Returns: <ConfigHome>/claude/
func GlobalConfigDir() string {
	return filepath.Join(ConfigHome(), GlobalDirName)
}

// GlobalConfigPath returns the path of the global configuration file.
// Returns: <ConfigHome>/claude/config.json
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), ConfigFileName)
}

// DefaultBackupDir returns the default directory for configuration backups.
// Returns: <ConfigHome>/claude/backups/
func DefaultBackupDir() string {
	return filepath.Join(GlobalConfigDir(), BackupDirName)
}

// ProjectConfigPath returns the path of the project configuration file for a
// project root: <projectRoot>/.claude/config.json.
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectDirName, ConfigFileName)
}

// FindProjectConfig searches for a project configuration starting at dir and
// walking up toward the filesystem root. The search stops at the first
// directory containing .claude/config.json, or at the first directory
// containing a .git entry (the repository boundary), whichever comes first.
// Returns the path of the config file, or ErrNoProjectConfig.
func FindProjectConfig(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolve project search root")
	}

	for {
		candidate := ProjectConfigPath(current)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, nil
		}

		// A .git entry marks the repository boundary; do not search past it.
		if _, statErr := os.Stat(filepath.Join(current, ".git")); statErr == nil {
			return "", errors.Wrapf(ErrNoProjectConfig, "searched up to repository root %s", current)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.Wrapf(ErrNoProjectConfig, "searched up to filesystem root from %s", dir)
		}
		current = parent
	}
}

// ExpandHome replaces a leading "~" or "~/" in path with the user's home
// directory. Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
