package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, in string) *Document {
	t.Helper()
	doc := New()
	require.NoError(t, json.Unmarshal([]byte(in), doc))
	return doc
}

func TestMerge(t *testing.T) {
	t.Run("servers union with override lists replacing", func(t *testing.T) {
		base := mustDoc(t, `{"mcpServers": {"npx": {"enabled": true}}, "allowedPaths": ["~/base"]}`)
		override := mustDoc(t, `{"mcpServers": {"uvx": {"enabled": true}}, "allowedPaths": ["~/override"]}`)

		merged := Merge(base, override)

		assert.Len(t, merged.MCPServers, 2)
		assert.Contains(t, merged.MCPServers, "npx")
		assert.Contains(t, merged.MCPServers, "uvx")
		assert.Equal(t, []string{"~/override"}, merged.AllowedPaths)
	})

	t.Run("override entry replaces base entry wholesale", func(t *testing.T) {
		base := mustDoc(t, `{"mcpServers": {"npx": {"enabled": true, "command": "npx", "args": ["-y"]}}}`)
		override := mustDoc(t, `{"mcpServers": {"npx": {"enabled": false}}}`)

		merged := Merge(base, override)

		entry := merged.MCPServers["npx"]
		assert.False(t, entry.Enabled)
		assert.Empty(t, entry.Command, "base's command must not bleed into the replaced entry")
		assert.Empty(t, entry.Args)
	})

	t.Run("absent override section keeps base list", func(t *testing.T) {
		base := mustDoc(t, `{"allowedPaths": ["~/base"], "customInstructions": ["Be concise"]}`)
		override := mustDoc(t, `{}`)

		merged := Merge(base, override)

		assert.Equal(t, []string{"~/base"}, merged.AllowedPaths)
		assert.Equal(t, []string{"Be concise"}, merged.CustomInstructions)
	})

	t.Run("explicitly empty override list replaces base", func(t *testing.T) {
		base := mustDoc(t, `{"allowedPaths": ["~/base"]}`)
		override := mustDoc(t, `{"allowedPaths": []}`)

		merged := Merge(base, override)

		require.NotNil(t, merged.AllowedPaths)
		assert.Empty(t, merged.AllowedPaths)
	})

	t.Run("skills deep merge", func(t *testing.T) {
		base := mustDoc(t, `{"skills": {"review": {"enabled": true, "parameters": {"depth": 1}}}}`)
		override := mustDoc(t, `{"skills": {"review": {"enabled": false}, "lint": {"enabled": true}}}`)

		merged := Merge(base, override)

		assert.Len(t, merged.Skills, 2)
		assert.False(t, merged.Skills["review"].Enabled)
		assert.Nil(t, merged.Skills["review"].Parameters, "replaced entry must not keep base parameters")
	})

	t.Run("unknown fields union with override winning", func(t *testing.T) {
		base := mustDoc(t, `{"alpha": 1, "shared": "base"}`)
		override := mustDoc(t, `{"beta": 2, "shared": "override"}`)

		merged := Merge(base, override)

		v, ok := merged.Unknown("alpha")
		require.True(t, ok)
		assert.JSONEq(t, `1`, string(v))
		v, ok = merged.Unknown("beta")
		require.True(t, ok)
		assert.JSONEq(t, `2`, string(v))
		v, ok = merged.Unknown("shared")
		require.True(t, ok)
		assert.JSONEq(t, `"override"`, string(v))
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		base := mustDoc(t, `{"mcpServers": {"npx": {"enabled": true}}}`)
		override := mustDoc(t, `{"mcpServers": {"npx": {"enabled": false}}}`)
		baseBefore := base.Clone()
		overrideBefore := override.Clone()

		_ = Merge(base, override)

		assert.True(t, base.Equal(baseBefore))
		assert.True(t, override.Equal(overrideBefore))
	})
}

func TestMergeAll(t *testing.T) {
	t.Run("left fold in priority order", func(t *testing.T) {
		global := mustDoc(t, `{"allowedPaths": ["~/global"], "mcpServers": {"a": {"enabled": true}}}`)
		project := mustDoc(t, `{"allowedPaths": ["~/project"]}`)
		session := mustDoc(t, `{"mcpServers": {"b": {"enabled": true}}}`)

		merged := MergeAll(global, project, session)

		assert.Equal(t, []string{"~/project"}, merged.AllowedPaths)
		assert.Len(t, merged.MCPServers, 2)
	})

	t.Run("pairwise fold matches nested merges", func(t *testing.T) {
		a := mustDoc(t, `{"allowedPaths": ["~/a"], "mcpServers": {"x": {"enabled": true}}}`)
		b := mustDoc(t, `{"allowedPaths": []}`)
		c := mustDoc(t, `{"mcpServers": {"y": {"enabled": false}}}`)

		folded := MergeAll(a, b, c)
		nested := Merge(Merge(a, b), c)

		assert.True(t, folded.Equal(nested))
	})

	t.Run("no layers yields empty document", func(t *testing.T) {
		assert.True(t, MergeAll().Equal(New()))
	})
}
