package config

// Merge combines a base document with an override layer and returns a new
// document; neither input is mutated.
//
// Section rules:
//   - mcpServers, skills: union of keys. A key present in both takes the
//     override's entire entry; entries are never merged field by field.
//   - allowedPaths, customInstructions: the override's list replaces the
//     base's whenever the override's section is present, including when it is
//     explicitly empty. An absent section keeps the base's list.
//   - unknown fields: key-level union, override wins.
//
// The rules are applied pairwise, so layering more than two documents is a
// left fold: Merge(Merge(global, project), session).
func Merge(base, override *Document) *Document {
	merged := base.Clone()
	over := override.Clone()

	if over.MCPServers != nil {
		if merged.MCPServers == nil {
			merged.MCPServers = make(map[string]*ServerEntry, len(over.MCPServers))
		}
		for name, entry := range over.MCPServers {
			merged.MCPServers[name] = entry
		}
	}

	if over.Skills != nil {
		if merged.Skills == nil {
			merged.Skills = make(map[string]*SkillEntry, len(over.Skills))
		}
		for name, entry := range over.Skills {
			merged.Skills[name] = entry
		}
	}

	if over.AllowedPaths != nil {
		merged.AllowedPaths = over.AllowedPaths
	}
	if over.CustomInstructions != nil {
		merged.CustomInstructions = over.CustomInstructions
	}

	for _, key := range over.UnknownKeys() {
		v, _ := over.Unknown(key)
		merged.SetUnknown(key, v)
	}

	return merged
}

// MergeAll folds layers left to right in priority order, lowest first.
// Calling it with no layers returns an empty document.
func MergeAll(layers ...*Document) *Document {
	if len(layers) == 0 {
		return New()
	}
	merged := layers[0].Clone()
	for _, layer := range layers[1:] {
		merged = Merge(merged, layer)
	}
	return merged
}
