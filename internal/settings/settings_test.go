package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claudecfg/internal/backup"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	Init()

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Version)
	assert.Equal(t, backup.DefaultRetentionCount, s.BackupRetention)
	assert.Equal(t, -1, s.ScanDepth)
	assert.NotEmpty(t, s.BackupDir)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	Init()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "version: 1\nbackup_retention: 3\nscan_depth: 5\nbackup_dir: /tmp/claudecfg-backups\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, s.BackupRetention)
	assert.Equal(t, 5, s.ScanDepth)
	assert.Equal(t, "/tmp/claudecfg-backups", s.BackupDir)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
