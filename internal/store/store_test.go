package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/search"
)

// newTestStore roots the store in a temp directory laid out like the real
// one: config dir with a backups/ subdirectory.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	root := t.TempDir()
	globalPath := filepath.Join(root, "config.json")
	s := New(
		WithGlobalPath(globalPath),
		WithBackupManager(backup.NewManager(backup.WithDir(filepath.Join(root, "backups")))),
	)
	return s, root
}

func mustDoc(t *testing.T, in string) *config.Document {
	t.Helper()
	doc := config.New()
	require.NoError(t, json.Unmarshal([]byte(in), doc))
	return doc
}

func TestRead(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers": {"npx": {"enabled": true}}}`), 0o644))

		doc, err := s.Read(path)
		require.NoError(t, err)
		assert.True(t, doc.MCPServers["npx"].Enabled)
	})

	t.Run("missing file", func(t *testing.T) {
		s, root := newTestStore(t)
		_, err := s.Read(filepath.Join(root, "absent.json"))
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("malformed JSON carries line and column", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{\n  \"mcpServers\": oops\n}\n"), 0o644))

		_, err := s.Read(path)
		var ferr *errors.FormatError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, path, ferr.Path)
		assert.Equal(t, 2, ferr.Line)
		assert.Positive(t, ferr.Column)
	})
}

func TestWrite(t *testing.T) {
	t.Run("creates parent directory and pretty prints", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "nested", "config.json")

		require.NoError(t, s.Write(path, mustDoc(t, `{"allowedPaths": ["~/projects"]}`)))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"allowedPaths\"")
		assert.Equal(t, byte('\n'), data[len(data)-1])
	})

	t.Run("backs up existing file before overwrite", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"a":1}`), 0o644))

		require.NoError(t, s.Write(path, mustDoc(t, `{"allowedPaths": []}`)))

		records, err := s.Backups().List(path)
		require.NoError(t, err)
		require.Len(t, records, 1)

		content, err := os.ReadFile(records[0].Path)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(content))
		assert.Contains(t, filepath.Base(records[0].Path), "config_")
	})

	t.Run("no backup for a brand-new file", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.json")

		require.NoError(t, s.Write(path, mustDoc(t, `{}`)))

		records, err := s.Backups().List(path)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("validation failure leaves existing file untouched", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.json")
		original := []byte(`{"allowedPaths":["~/safe"]}`)
		require.NoError(t, os.WriteFile(path, original, 0o644))

		invalid := mustDoc(t, `{"mcpServers": {"": {"enabled": true}}}`)
		err := s.Write(path, invalid)

		var verr *errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "ServerNameRule", verr.Rule)

		onDisk, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, original, onDisk)
	})

	t.Run("backup failure aborts the write", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "config.json")
		original := []byte(`{"a":1}`)
		require.NoError(t, os.WriteFile(path, original, 0o644))

		// A backup directory path blocked by a regular file makes backup
		// creation fail.
		blocked := filepath.Join(root, "backups")
		require.NoError(t, os.WriteFile(blocked, []byte("in the way"), 0o644))

		s := New(
			WithGlobalPath(path),
			WithBackupManager(backup.NewManager(backup.WithDir(blocked))),
		)

		err := s.Write(path, mustDoc(t, `{"allowedPaths": []}`))
		require.ErrorIs(t, err, errors.ErrBackupFailed)

		onDisk, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, original, onDisk)
	})

	t.Run("interrupted write leaves original intact", func(t *testing.T) {
		s, root := newTestStore(t)
		dir := filepath.Join(root, "protected")
		require.NoError(t, os.MkdirAll(dir, 0o755))
		path := filepath.Join(dir, "config.json")
		original := []byte(`{"a":1}`)
		require.NoError(t, os.WriteFile(path, original, 0o644))

		if os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced for root")
		}

		// A read-only directory fails temp-file creation; the target file
		// is never touched.
		require.NoError(t, os.Chmod(dir, 0o555))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		err := s.Write(path, mustDoc(t, `{"allowedPaths": []}`))
		require.Error(t, err)

		require.NoError(t, os.Chmod(dir, 0o755))
		onDisk, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, original, onDisk)
	})
}

func TestWriteBackupRetention(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.json")
	// A stepping clock keeps backup names unique however fast the loop runs.
	clock := time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)
	manager := backup.NewManager(
		backup.WithDir(filepath.Join(root, "backups")),
		backup.WithRetention(3),
		backup.WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)
	s := New(WithGlobalPath(path), WithBackupManager(manager))

	for i := 0; i < 6; i++ {
		doc := config.New()
		require.NoError(t, config.Set(doc, "customInstructions", `["iteration"]`))
		require.NoError(t, s.Write(path, doc))
	}

	// Five overwrites produced five backups; cleanup trims to retention.
	removed, err := manager.Cleanup(path)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	records, err := manager.List(path)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestScopes(t *testing.T) {
	t.Run("global missing yields empty document", func(t *testing.T) {
		s, _ := newTestStore(t)
		doc, err := s.Global()
		require.NoError(t, err)
		assert.True(t, doc.Equal(config.New()))
	})

	t.Run("project explicit path", func(t *testing.T) {
		s, root := newTestStore(t)
		projectRoot := filepath.Join(root, "proj")
		require.NoError(t, os.MkdirAll(filepath.Join(projectRoot, ".claude"), 0o755))
		configPath := filepath.Join(projectRoot, ".claude", "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"allowedPaths": ["~/proj"]}`), 0o644))

		doc, path, err := s.Project(projectRoot)
		require.NoError(t, err)
		assert.Equal(t, configPath, path)
		assert.Equal(t, []string{"~/proj"}, doc.AllowedPaths)
	})

	t.Run("project absent is nil without error", func(t *testing.T) {
		s, root := newTestStore(t)
		doc, path, err := s.Project(filepath.Join(root, "empty-proj"))
		require.NoError(t, err)
		assert.Nil(t, doc)
		assert.Empty(t, path)
	})

	t.Run("merged folds project over global", func(t *testing.T) {
		s, root := newTestStore(t)
		require.NoError(t, s.Write(s.GlobalPath(),
			mustDoc(t, `{"mcpServers": {"npx": {"enabled": true}}, "allowedPaths": ["~/global"]}`)))

		projectRoot := filepath.Join(root, "proj")
		require.NoError(t, os.MkdirAll(filepath.Join(projectRoot, ".claude"), 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(projectRoot, ".claude", "config.json"),
			[]byte(`{"allowedPaths": ["~/project"]}`), 0o644))

		merged, err := s.Merged(projectRoot)
		require.NoError(t, err)
		assert.Equal(t, []string{"~/project"}, merged.AllowedPaths)
		assert.Contains(t, merged.MCPServers, "npx")
	})
}

func TestSetValue(t *testing.T) {
	t.Run("global scope creates the file", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.SetValue("mcpServers.npx.enabled", "true", config.ScopeGlobal, ""))

		doc, err := s.Global()
		require.NoError(t, err)
		require.Contains(t, doc.MCPServers, "npx")
		assert.True(t, doc.MCPServers["npx"].Enabled)
	})

	t.Run("project scope requires a path", func(t *testing.T) {
		s, _ := newTestStore(t)
		err := s.SetValue("allowedPaths", "~/proj", config.ScopeProject, "")
		require.Error(t, err)
	})

	t.Run("project scope writes under .claude", func(t *testing.T) {
		s, root := newTestStore(t)
		projectRoot := filepath.Join(root, "proj")
		require.NoError(t, s.SetValue("allowedPaths", "~/proj", config.ScopeProject, projectRoot))

		doc, path, err := s.Project(projectRoot)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(projectRoot, ".claude", "config.json"), path)
		assert.Equal(t, []string{"~/proj"}, doc.AllowedPaths)
	})

	t.Run("unsupported key path is rejected", func(t *testing.T) {
		s, _ := newTestStore(t)
		err := s.SetValue("mcpServers.npx.nested.deep", "1", config.ScopeGlobal, "")
		assert.ErrorIs(t, err, errors.ErrUnsupportedPath)
	})
}

func TestDiffConfigs(t *testing.T) {
	s, root := newTestStore(t)
	require.NoError(t, s.Write(s.GlobalPath(), mustDoc(t, `{"allowedPaths": ["~/global"]}`)))

	projectRoot := filepath.Join(root, "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(projectRoot, ".claude"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(projectRoot, ".claude", "config.json"),
		[]byte(`{"allowedPaths": ["~/project"]}`), 0o644))

	changes, sources, err := s.DiffConfigs(projectRoot)
	require.NoError(t, err)

	require.Len(t, changes, 1)
	assert.Equal(t, config.ChangeModified, changes[0].Kind)
	assert.Equal(t, "allowedPaths", changes[0].Path)
	assert.Equal(t, config.ScopeProject, sources["allowedPaths"])
}

func TestSearchScopes(t *testing.T) {
	t.Run("global scope", func(t *testing.T) {
		s, _ := newTestStore(t)
		require.NoError(t, s.Write(s.GlobalPath(), mustDoc(t, `{"mcpServers": {"npx": {"enabled": true}}}`)))

		results, err := s.Search("npx", config.ScopeGlobal, search.New())
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, "mcpServers.npx", results[0].KeyPath)
		assert.Equal(t, config.ScopeGlobal, results[0].Source)
		assert.Equal(t, s.GlobalPath(), results[0].ConfigPath)
	})

	t.Run("missing global file yields no results", func(t *testing.T) {
		s, _ := newTestStore(t)
		results, err := s.Search("npx", config.ScopeGlobal, search.New())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestImportExport(t *testing.T) {
	t.Run("round-trip preserves unknown fields", func(t *testing.T) {
		s, root := newTestStore(t)
		doc := mustDoc(t, `{"allowedPaths": ["~/projects"], "futureFeature": {"x": 1}}`)

		exportPath := filepath.Join(root, "export", "config.json")
		require.NoError(t, s.Export(doc, exportPath))

		imported, err := s.Import(exportPath)
		require.NoError(t, err)
		assert.True(t, doc.Equal(imported))

		v, ok := imported.Unknown("futureFeature")
		require.True(t, ok)
		assert.JSONEq(t, `{"x": 1}`, string(v))
	})

	t.Run("toml export is rejected", func(t *testing.T) {
		s, root := newTestStore(t)
		err := s.Export(config.New(), filepath.Join(root, "config.toml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not yet supported")
	})

	t.Run("toml import is rejected", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

		_, err := s.Import(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not yet supported")
	})

	t.Run("import validates the document", func(t *testing.T) {
		s, root := newTestStore(t)
		path := filepath.Join(root, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"allowedPaths": [""]}`), 0o644))

		_, err := s.Import(path)
		var verr *errors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "PathEntryRule", verr.Rule)
	})
}
