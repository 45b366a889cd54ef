package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claudecfg/internal/errors"
)

// fakeClock returns a clock that advances a fixed step per call, so backup
// names never collide regardless of filesystem timestamp granularity.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCreate(t *testing.T) {
	t.Run("copies content under timestamped name", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{"a":1}`)
		m := NewManager(WithDir(filepath.Join(root, "backups")))

		backupPath, err := m.Create(source)
		require.NoError(t, err)

		name := filepath.Base(backupPath)
		assert.True(t, strings.HasPrefix(name, "config_"), "name = %q", name)
		assert.True(t, strings.HasSuffix(name, ".json"), "name = %q", name)

		content, err := os.ReadFile(backupPath)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(content))
	})

	t.Run("creates backup directory on demand", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{}`)
		dir := filepath.Join(root, "nested", "backups")
		m := NewManager(WithDir(dir))

		_, err := m.Create(source)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("missing source", func(t *testing.T) {
		m := NewManager(WithDir(t.TempDir()))
		_, err := m.Create(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("missing backup directory is empty", func(t *testing.T) {
		m := NewManager(WithDir(filepath.Join(t.TempDir(), "nope")))
		records, err := m.List("config.json")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("newest first and filtered by stem", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{}`)
		other := writeConfig(t, root, "settings.json", `{}`)
		m := NewManager(
			WithDir(filepath.Join(root, "backups")),
			WithClock(fakeClock(time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC), time.Second)),
		)

		first, err := m.Create(source)
		require.NoError(t, err)
		second, err := m.Create(source)
		require.NoError(t, err)
		_, err = m.Create(other)
		require.NoError(t, err)

		records, err := m.List(source)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, second, records[0].Path)
		assert.Equal(t, first, records[1].Path)
		assert.Equal(t, source, records[0].OriginalPath)
		assert.Positive(t, records[0].Size)
	})
}

func TestCleanup(t *testing.T) {
	t.Run("removes oldest beyond retention", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{"v":1}`)
		m := NewManager(
			WithDir(filepath.Join(root, "backups")),
			WithRetention(2),
			WithClock(fakeClock(time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC), time.Second)),
		)

		var created []string
		for i := 0; i < 5; i++ {
			path, err := m.Create(source)
			require.NoError(t, err)
			created = append(created, path)
		}

		removed, err := m.Cleanup(source)
		require.NoError(t, err)
		assert.Equal(t, 3, removed)

		records, err := m.List(source)
		require.NoError(t, err)
		require.Len(t, records, 2)
		// The two most recent survive.
		assert.Equal(t, created[4], records[0].Path)
		assert.Equal(t, created[3], records[1].Path)
	})

	t.Run("under retention removes nothing", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{}`)
		m := NewManager(
			WithDir(filepath.Join(root, "backups")),
			WithRetention(5),
			WithClock(fakeClock(time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC), time.Second)),
		)

		for i := 0; i < 3; i++ {
			_, err := m.Create(source)
			require.NoError(t, err)
		}

		removed, err := m.Cleanup(source)
		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestRestore(t *testing.T) {
	t.Run("restores into backup directory parent", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{"v":"original"}`)
		m := NewManager(WithDir(filepath.Join(root, "backups")))

		backupPath, err := m.Create(source)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(source, []byte(`{"v":"modified"}`), 0o644))

		restored, err := m.Restore(backupPath)
		require.NoError(t, err)
		assert.Equal(t, source, restored)

		content, err := os.ReadFile(restored)
		require.NoError(t, err)
		assert.Equal(t, `{"v":"original"}`, string(content))
	})

	t.Run("specific backup among several", func(t *testing.T) {
		root := t.TempDir()
		source := writeConfig(t, root, "config.json", `{"version":1}`)
		m := NewManager(
			WithDir(filepath.Join(root, "backups")),
			WithClock(fakeClock(time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC), time.Second)),
		)

		backup1, err := m.Create(source)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(source, []byte(`{"version":2}`), 0o644))
		backup2, err := m.Create(source)
		require.NoError(t, err)

		restored, err := m.Restore(backup1)
		require.NoError(t, err)
		content, err := os.ReadFile(restored)
		require.NoError(t, err)
		assert.Equal(t, `{"version":1}`, string(content))

		restored, err = m.Restore(backup2)
		require.NoError(t, err)
		content, err = os.ReadFile(restored)
		require.NoError(t, err)
		assert.Equal(t, `{"version":2}`, string(content))
	})

	t.Run("missing backup", func(t *testing.T) {
		m := NewManager(WithDir(t.TempDir()))
		_, err := m.Restore(filepath.Join(m.Dir(), "config_20250120_120000.000.json"))
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("name without timestamp", func(t *testing.T) {
		dir := t.TempDir()
		m := NewManager(WithDir(dir))
		bad := writeConfig(t, dir, "config.json", `{}`)

		_, err := m.Restore(bad)
		assert.ErrorIs(t, err, errors.ErrInvalidBackupName)
	})
}

func TestManagerDefaults(t *testing.T) {
	m := NewManager(WithDir("/tmp/backups"))
	assert.Equal(t, DefaultRetentionCount, m.Retention())
	assert.Equal(t, "/tmp/backups", m.Dir())

	m = NewManager(WithDir("/tmp/backups"), WithRetention(15))
	assert.Equal(t, 15, m.Retention())

	// Non-positive retention keeps the default.
	m = NewManager(WithRetention(0))
	assert.Equal(t, DefaultRetentionCount, m.Retention())
}
