package backup

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

// DefaultRetentionCount is the number of backups kept per original file.
const DefaultRetentionCount = 10

// timestampLayout produces names like config_20250120_123456.789.json.
// Millisecond precision; rapid concurrent calls can theoretically collide,
// callers needing strict ordering must serialize per original file.
const timestampLayout = "20060102_150405.000"

// Record describes one backup file on disk.
type Record struct {
	// Path is the backup file's location.
	Path string `json:"path"`

	// OriginalPath is the file the backup was taken from.
	OriginalPath string `json:"originalPath"`

	// CreatedAt is the backup's creation time.
	CreatedAt time.Time `json:"createdAt"`

	// Size is the backup file's size in bytes.
	Size int64 `json:"size"`
}

// Manager creates, lists, restores, and prunes backups in a single
// backup directory.
type Manager struct {
	dir       string
	retention int
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir sets the backup directory.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.dir = dir
	}
}

// WithRetention sets the number of backups to retain per original file.
// Non-positive values are ignored.
func WithRetention(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retention = n
		}
	}
}

// WithClock overrides the timestamp source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a backup Manager with the given options.
// Defaults: the standard backup directory and a retention of 10.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		dir:       paths.DefaultBackupDir(),
		retention: DefaultRetentionCount,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dir returns the backup directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Retention returns the per-file retention count.
func (m *Manager) Retention() int {
	return m.retention
}

// Create copies filePath into the backup directory under a timestamped name
// <stem>_<YYYYMMDD_HHMMSS.mmm>.<ext> and returns the backup's path.
// Returns ErrNotFound when the source file does not exist.
func (m *Manager) Create(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(errors.ErrNotFound, "source file %s", filePath)
		}
		return "", errors.NewFilesystemError("stat source file", filePath, err)
	}

	if err := paths.EnsureDir(m.dir, 0); err != nil {
		return "", errors.NewFilesystemError("create backup directory", m.dir, err)
	}

	stem, ext := splitName(filepath.Base(filePath))
	timestamp := m.now().UTC().Format(timestampLayout)
	backupPath := filepath.Join(m.dir, stem+"_"+timestamp+"."+ext)

	if err := copyFile(filePath, backupPath); err != nil {
		return "", errors.NewFilesystemError("copy file to backup", filePath, err)
	}

	return backupPath, nil
}

// List returns all backups of originalFile, newest first.
// A missing backup directory yields an empty list, not an error.
func (m *Manager) List(originalFile string) ([]Record, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.NewFilesystemError("read backup directory", m.dir, err)
	}

	stem, _ := splitName(filepath.Base(originalFile))
	prefix := stem + "_"

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		records = append(records, Record{
			Path:         filepath.Join(m.dir, entry.Name()),
			OriginalPath: originalFile,
			CreatedAt:    info.ModTime().UTC(),
			Size:         info.Size(),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		// Timestamped names sort chronologically; break mtime ties so the
		// order stays deterministic on coarse-grained filesystems.
		return records[i].Path > records[j].Path
	})

	return records, nil
}

// Cleanup removes backups of originalFile beyond the retention count,
// oldest first, and returns how many were removed.
func (m *Manager) Cleanup(originalFile string) (int, error) {
	records, err := m.List(originalFile)
	if err != nil {
		return 0, err
	}
	if len(records) <= m.retention {
		return 0, nil
	}

	removed := 0
	for _, record := range records[m.retention:] {
		if err := os.Remove(record.Path); err != nil {
			return removed, errors.NewFilesystemError("remove old backup", record.Path, err)
		}
		removed++
	}
	return removed, nil
}

// Restore copies a backup back to its original location, derived from the
// backup name: the stem before the first underscore plus the extension,
// placed in the backup directory's parent. Returns the restored file's path.
// Returns ErrNotFound for a missing backup and ErrInvalidBackupName for a
// name that does not follow the convention.
func (m *Manager) Restore(backupPath string) (string, error) {
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(errors.ErrNotFound, "backup file %s", backupPath)
		}
		return "", errors.NewFilesystemError("stat backup file", backupPath, err)
	}

	stem, ext := splitName(filepath.Base(backupPath))
	originalStem, _, found := strings.Cut(stem, "_")
	if !found || originalStem == "" {
		return "", errors.Wrapf(errors.ErrInvalidBackupName,
			"%q does not match <filename>_<timestamp>.<ext>", filepath.Base(backupPath))
	}

	targetDir := filepath.Dir(m.dir)
	if err := paths.EnsureDir(targetDir, 0); err != nil {
		return "", errors.NewFilesystemError("create target directory", targetDir, err)
	}

	originalFile := filepath.Join(targetDir, originalStem+"."+ext)
	if err := copyFile(backupPath, originalFile); err != nil {
		return "", errors.NewFilesystemError("restore backup", originalFile, err)
	}

	return originalFile, nil
}

// splitName splits a file name into stem and extension, defaulting the
// extension to json when absent.
func splitName(name string) (stem, ext string) {
	ext = strings.TrimPrefix(filepath.Ext(name), ".")
	stem = strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = "config"
	}
	if ext == "" {
		ext = "json"
	}
	return stem, ext
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
