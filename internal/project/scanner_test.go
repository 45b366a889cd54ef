package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claudecfg/internal/errors"
)

func makeProject(t *testing.T, root, name string) string {
	t.Helper()
	dir := filepath.Join(root, name, ".claude")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{}\n"), 0o644))
	return filepath.Join(root, name)
}

func TestScan(t *testing.T) {
	t.Run("finds projects sorted by name", func(t *testing.T) {
		root := t.TempDir()
		makeProject(t, root, "zeta")
		makeProject(t, root, "alpha")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "plain-dir"), 0o755))

		projects, err := NewScanner().Scan(root)
		require.NoError(t, err)

		require.Len(t, projects, 2)
		assert.Equal(t, "alpha", projects[0].Name)
		assert.Equal(t, "zeta", projects[1].Name)
		assert.Equal(t, filepath.Join(root, "alpha"), projects[0].Root)
		assert.Equal(t, filepath.Join(root, "alpha", ".claude", "config.json"), projects[0].ConfigPath)
		assert.False(t, projects[0].LastModified.IsZero())
	})

	t.Run("finds nested projects", func(t *testing.T) {
		root := t.TempDir()
		makeProject(t, filepath.Join(root, "group"), "inner")
		require.NoError(t, os.MkdirAll(filepath.Join(root, "group"), 0o755))

		projects, err := NewScanner().Scan(root)
		require.NoError(t, err)

		require.Len(t, projects, 1)
		assert.Equal(t, "inner", projects[0].Name)
	})

	t.Run("skips ignored directories", func(t *testing.T) {
		root := t.TempDir()
		makeProject(t, filepath.Join(root, "node_modules"), "dep")
		makeProject(t, filepath.Join(root, "target"), "artifact")
		makeProject(t, root, "real")

		projects, err := NewScanner().Scan(root)
		require.NoError(t, err)

		require.Len(t, projects, 1)
		assert.Equal(t, "real", projects[0].Name)
	})

	t.Run("custom ignore", func(t *testing.T) {
		root := t.TempDir()
		makeProject(t, root, "vendored")

		projects, err := NewScanner(WithIgnore("vendored")).Scan(root)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("depth limit", func(t *testing.T) {
		root := t.TempDir()
		makeProject(t, root, "shallow")
		makeProject(t, filepath.Join(root, "a", "b"), "deep")

		projects, err := NewScanner(WithMaxDepth(1)).Scan(root)
		require.NoError(t, err)

		require.Len(t, projects, 1)
		assert.Equal(t, "shallow", projects[0].Name)
	})

	t.Run("start directory itself is not reported", func(t *testing.T) {
		root := t.TempDir()
		projectRoot := makeProject(t, root, "only")

		projects, err := NewScanner().Scan(projectRoot)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("missing start directory", func(t *testing.T) {
		_, err := NewScanner().Scan(filepath.Join(t.TempDir(), "absent"))
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}
