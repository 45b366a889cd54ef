package config

import (
	"encoding/json"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/errors"
)

// Set applies a dot-notation key path mutation such as
// "mcpServers.npx.enabled" to the document, creating intermediate sections
// and entries as needed.
//
// The value string is parsed as JSON first; anything that fails to parse is
// treated as a plain string. Field coercions:
//   - enabled: a JSON boolean, or a string where "true", "yes" and "1"
//     (case-insensitive) mean true and anything else means false.
//   - args, allowedPaths: a JSON array of strings, or a single string split
//     on whitespace (allowedPaths keeps a single string as one entry).
//   - customInstructions: a JSON array replaces the list, a single string
//     appends to it.
//   - skills.<name>.parameters: any JSON value, stored as-is.
//
// Unrecognized top-level keys are stored verbatim in the unknown-field set.
// Paths the setter cannot express, such as replacing an entire server entry
// in one step or writing below an unknown key, fail with ErrUnsupportedPath.
func Set(doc *Document, keyPath, value string) error {
	keys := strings.Split(keyPath, ".")
	if keyPath == "" || len(keys) == 0 {
		return errors.Wrap(errors.ErrUnsupportedPath, "key path cannot be empty")
	}

	parsed := parseValue(value)

	switch keys[0] {
	case "mcpServers":
		return setServerValue(doc, keys[1:], parsed)
	case "allowedPaths":
		return setAllowedPathsValue(doc, keys[1:], parsed)
	case "skills":
		return setSkillValue(doc, keys[1:], parsed)
	case "customInstructions":
		return setCustomInstructionsValue(doc, keys[1:], parsed)
	default:
		return setUnknownValue(doc, keys, parsed)
	}
}

// parseValue interprets the raw CLI value: valid JSON is kept as-is,
// everything else becomes a JSON string.
func parseValue(value string) json.RawMessage {
	if json.Valid([]byte(value)) {
		return json.RawMessage(value)
	}
	quoted, _ := json.Marshal(value)
	return quoted
}

func coerceBool(raw json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		switch strings.ToLower(s) {
		case "true", "yes", "1":
			return true, nil
		default:
			return false, nil
		}
	}
	return false, errors.New("'enabled' must be a boolean value")
}

// coerceStringList accepts a JSON array of strings or a single string split
// on whitespace.
func coerceStringList(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.Fields(s), nil
	}
	return nil, errors.New("value must be an array of strings or a string")
}

func setServerValue(doc *Document, keys []string, value json.RawMessage) error {
	if len(keys) == 0 {
		return errors.Wrap(errors.ErrUnsupportedPath, "MCP server name is required")
	}
	if len(keys) == 1 {
		return errors.Wrap(errors.ErrUnsupportedPath,
			"setting an entire server object is not supported; use 'enabled', 'command', or 'args'")
	}

	name := keys[0]
	if doc.MCPServers == nil {
		doc.MCPServers = make(map[string]*ServerEntry)
	}
	server, ok := doc.MCPServers[name]
	if !ok {
		server = &ServerEntry{Name: name}
		doc.MCPServers[name] = server
	}

	switch keys[1] {
	case "enabled":
		enabled, err := coerceBool(value)
		if err != nil {
			return err
		}
		server.Enabled = enabled
	case "command":
		var command string
		if err := json.Unmarshal(value, &command); err != nil {
			return errors.New("'command' must be a string")
		}
		server.Command = command
	case "args":
		args, err := coerceStringList(value)
		if err != nil {
			return errors.New("'args' must be an array or a space-separated string")
		}
		server.Args = args
	default:
		return errors.Wrapf(errors.ErrUnsupportedPath, "unknown MCP server field %q", keys[1])
	}

	return nil
}

func setAllowedPathsValue(doc *Document, keys []string, value json.RawMessage) error {
	if len(keys) != 0 {
		return errors.Wrap(errors.ErrUnsupportedPath, "nested paths in allowedPaths are not supported")
	}

	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		doc.AllowedPaths = list
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		doc.AllowedPaths = []string{s}
		return nil
	}
	return errors.New("allowedPaths must be an array or string")
}

func setSkillValue(doc *Document, keys []string, value json.RawMessage) error {
	if len(keys) == 0 {
		return errors.Wrap(errors.ErrUnsupportedPath, "skill name is required")
	}
	if len(keys) == 1 {
		return errors.Wrap(errors.ErrUnsupportedPath, "setting an entire skill object is not supported")
	}

	name := keys[0]
	if doc.Skills == nil {
		doc.Skills = make(map[string]*SkillEntry)
	}
	skill, ok := doc.Skills[name]
	if !ok {
		skill = &SkillEntry{Name: name, Enabled: true}
		doc.Skills[name] = skill
	}

	switch keys[1] {
	case "enabled":
		enabled, err := coerceBool(value)
		if err != nil {
			return err
		}
		skill.Enabled = enabled
	case "parameters":
		skill.Parameters = value
	default:
		return errors.Wrapf(errors.ErrUnsupportedPath, "unknown skill field %q", keys[1])
	}

	return nil
}

func setCustomInstructionsValue(doc *Document, keys []string, value json.RawMessage) error {
	if len(keys) != 0 {
		return errors.Wrap(errors.ErrUnsupportedPath, "nested paths in customInstructions are not supported")
	}

	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		doc.CustomInstructions = list
		return nil
	}
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		doc.CustomInstructions = append(doc.CustomInstructions, s)
		return nil
	}
	return errors.New("customInstructions must be an array or string")
}

func setUnknownValue(doc *Document, keys []string, value json.RawMessage) error {
	if len(keys) > 1 {
		return errors.Wrap(errors.ErrUnsupportedPath, "nested paths for unknown fields are not supported")
	}
	doc.SetUnknown(keys[0], value)
	return nil
}
