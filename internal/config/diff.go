package config

import (
	"reflect"
	"sort"
)

// ChangeKind classifies a single diff entry.
type ChangeKind string

const (
	// ChangeAdded marks a key present only in the project layer.
	ChangeAdded ChangeKind = "added"

	// ChangeRemoved marks a key present only in the global layer.
	ChangeRemoved ChangeKind = "removed"

	// ChangeModified marks a key present in both layers with differing values.
	ChangeModified ChangeKind = "modified"
)

// Change is one difference between the global and project layers.
// Old is set for removed and modified entries, New for added and modified.
type Change struct {
	Kind ChangeKind `json:"kind"`
	Path string     `json:"keyPath"`
	Old  any        `json:"oldValue,omitempty"`
	New  any        `json:"newValue,omitempty"`
}

// SourceMap records, per key path, which layer the effective value comes
// from. Keys equal in both layers are attributed to the global layer.
type SourceMap map[string]Scope

// Diff compares the global and project layers of a configuration.
//
// Top-level keys are compared by value: a key present in both layers with
// differing values yields a single Modified entry carrying both whole
// values, with no descent into nested objects. Keys only in the global layer
// yield Removed. Keys only in the project layer yield Added, and for object
// values the walk continues below the added key so each nested addition gets
// its own entry. Arrays are opaque leaves compared by full equality.
//
// Keys are visited in sorted order so the result is deterministic.
func Diff(global, project *Document) ([]Change, SourceMap, error) {
	globalMap, err := global.ToMap()
	if err != nil {
		return nil, nil, err
	}
	projectMap, err := project.ToMap()
	if err != nil {
		return nil, nil, err
	}

	var changes []Change
	sources := make(SourceMap)

	for _, key := range sortedKeys(globalMap) {
		globalValue := globalMap[key]
		projectValue, inProject := projectMap[key]

		switch {
		case !inProject:
			changes = append(changes, Change{Kind: ChangeRemoved, Path: key, Old: globalValue})
			sources[key] = ScopeGlobal
		case !reflect.DeepEqual(globalValue, projectValue):
			changes = append(changes, Change{Kind: ChangeModified, Path: key, Old: globalValue, New: projectValue})
			sources[key] = ScopeProject
		default:
			sources[key] = ScopeGlobal
		}
	}

	changes = appendAdditions(changes, sources, globalMap, projectMap, "")

	return changes, sources, nil
}

// appendAdditions records keys present only in project, descending into
// nested objects so each added leaf object gets its own entry.
func appendAdditions(changes []Change, sources SourceMap, global, project map[string]any, prefix string) []Change {
	for _, key := range sortedKeys(project) {
		if _, inGlobal := global[key]; inGlobal {
			continue
		}

		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		projectValue := project[key]

		changes = append(changes, Change{Kind: ChangeAdded, Path: path, New: projectValue})
		sources[path] = ScopeProject

		if nested, ok := projectValue.(map[string]any); ok {
			changes = appendAdditions(changes, sources, map[string]any{}, nested, path)
		}
	}
	return changes
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
