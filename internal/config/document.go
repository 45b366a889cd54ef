package config

import (
	"bytes"
	"encoding/json"

	"github.com/thoreinstein/claudecfg/internal/errors"
)

// Document is the in-memory form of a layered configuration file.
//
// Section presence matters for merging: a nil slice means the section was
// absent from the file, while a non-nil empty slice means the section was
// present and explicitly empty. The custom JSON codec below preserves this
// distinction across round-trips.
type Document struct {
	// MCPServers maps server names to their configurations.
	MCPServers map[string]*ServerEntry

	// AllowedPaths is the ordered list of paths the tool may access.
	AllowedPaths []string

	// Skills maps skill names to their configurations.
	Skills map[string]*SkillEntry

	// CustomInstructions is an ordered list of instruction strings.
	CustomInstructions []string

	// unknownFields stores top-level JSON fields this version does not
	// recognize. They survive read-modify-write cycles untouched.
	unknownFields map[string]json.RawMessage
}

// ServerEntry is one MCP server definition. The entry's name is the map key
// in the document and is never serialized as a field.
type ServerEntry struct {
	Name    string            `json:"-"`
	Enabled bool              `json:"enabled"`
	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// SkillEntry is one skill definition. Parameters carries an arbitrary JSON
// value and is passed through unmodified.
type SkillEntry struct {
	Name       string          `json:"-"`
	Enabled    bool            `json:"enabled"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// New creates an empty Document with no sections present.
func New() *Document {
	return &Document{}
}

// Unknown returns the value of an unrecognized top-level field, or false if
// the field is not present.
func (d *Document) Unknown(key string) (json.RawMessage, bool) {
	v, ok := d.unknownFields[key]
	return v, ok
}

// UnknownKeys returns the names of all unrecognized top-level fields.
func (d *Document) UnknownKeys() []string {
	keys := make([]string, 0, len(d.unknownFields))
	for k := range d.unknownFields {
		keys = append(keys, k)
	}
	return keys
}

// SetUnknown stores a raw JSON value under an unrecognized top-level field.
func (d *Document) SetUnknown(key string, value json.RawMessage) {
	if d.unknownFields == nil {
		d.unknownFields = make(map[string]json.RawMessage)
	}
	d.unknownFields[key] = value
}

// MarshalJSON implements json.Marshaler. Absent sections are omitted and
// unknown fields are written back alongside the known ones. An empty document
// serializes as {}.
func (d *Document) MarshalJSON() ([]byte, error) {
	result := make(map[string]any)

	for k, v := range d.unknownFields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return nil, errors.Wrapf(err, "unknown field %q", k)
		}
		result[k] = val
	}

	if d.MCPServers != nil {
		result["mcpServers"] = d.MCPServers
	}
	if d.AllowedPaths != nil {
		result["allowedPaths"] = d.AllowedPaths
	}
	if d.Skills != nil {
		result["skills"] = d.Skills
	}
	if d.CustomInstructions != nil {
		result["customInstructions"] = d.CustomInstructions
	}

	return json.Marshal(result)
}

// UnmarshalJSON implements json.Unmarshaler. Known sections are decoded into
// typed fields, entry names are filled in from their map keys, and every
// remaining top-level field is captured for later write-back.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(v, &d.MCPServers); err != nil {
			return errors.Wrap(err, "mcpServers")
		}
		if d.MCPServers == nil {
			d.MCPServers = make(map[string]*ServerEntry)
		}
		for name, entry := range d.MCPServers {
			entry.Name = name
		}
		delete(raw, "mcpServers")
	}
	if v, ok := raw["allowedPaths"]; ok {
		if err := json.Unmarshal(v, &d.AllowedPaths); err != nil {
			return errors.Wrap(err, "allowedPaths")
		}
		if d.AllowedPaths == nil {
			d.AllowedPaths = []string{}
		}
		delete(raw, "allowedPaths")
	}
	if v, ok := raw["skills"]; ok {
		if err := json.Unmarshal(v, &d.Skills); err != nil {
			return errors.Wrap(err, "skills")
		}
		if d.Skills == nil {
			d.Skills = make(map[string]*SkillEntry)
		}
		for name, entry := range d.Skills {
			entry.Name = name
		}
		delete(raw, "skills")
	}
	if v, ok := raw["customInstructions"]; ok {
		if err := json.Unmarshal(v, &d.CustomInstructions); err != nil {
			return errors.Wrap(err, "customInstructions")
		}
		if d.CustomInstructions == nil {
			d.CustomInstructions = []string{}
		}
		delete(raw, "customInstructions")
	}

	if len(raw) > 0 {
		d.unknownFields = raw
	}

	return nil
}

// Clone returns a deep copy of the document via a JSON round-trip.
func (d *Document) Clone() *Document {
	data, err := json.Marshal(d)
	if err != nil {
		// Documents only hold JSON-representable values.
		panic(err)
	}
	clone := New()
	if err := json.Unmarshal(data, clone); err != nil {
		panic(err)
	}
	return clone
}

// Equal reports whether two documents have identical canonical JSON forms,
// including unknown fields.
func (d *Document) Equal(other *Document) bool {
	a, err := json.Marshal(d)
	if err != nil {
		return false
	}
	b, err := json.Marshal(other)
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}

// ToMap returns the document's generic JSON projection, used by the differ
// and the search engine to walk the tree uniformly.
func (d *Document) ToMap() (map[string]any, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "projecting document")
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "projecting document")
	}
	return m, nil
}
