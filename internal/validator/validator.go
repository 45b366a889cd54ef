// Package validator checks configuration documents against a fixed, ordered
// rule set before they are written to disk.
package validator

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

// Rule is a single named validation check. A nil return means the document
// passed.
type Rule struct {
	Name  string
	Check func(doc *config.Document) *errors.ValidationError
}

// Rules returns the rule set in evaluation order. The order is part of the
// contract: server names, then path entries, then skill names.
func Rules() []Rule {
	return []Rule{
		{Name: "ServerNameRule", Check: checkServerNames},
		{Name: "PathEntryRule", Check: checkPathEntries},
		{Name: "SkillNameRule", Check: checkSkillNames},
	}
}

// Validate runs every rule in order and returns the first failure.
// The document is never mutated.
func Validate(doc *config.Document) error {
	for _, rule := range Rules() {
		if verr := rule.Check(doc); verr != nil {
			return verr
		}
	}
	return nil
}

func checkServerNames(doc *config.Document) *errors.ValidationError {
	for name := range doc.MCPServers {
		if name == "" {
			return &errors.ValidationError{
				Rule:       "ServerNameRule",
				Detail:     "server name is empty",
				Suggestion: "all MCP servers must have a non-empty name",
			}
		}
	}
	return nil
}

func checkPathEntries(doc *config.Document) *errors.ValidationError {
	for idx, path := range doc.AllowedPaths {
		if path == "" {
			return &errors.ValidationError{
				Rule:       "PathEntryRule",
				Detail:     fmt.Sprintf("path at index %d is empty", idx),
				Suggestion: "all allowed paths must be non-empty strings",
			}
		}
		if strings.ContainsRune(path, '\x00') {
			return &errors.ValidationError{
				Rule:       "PathEntryRule",
				Detail:     fmt.Sprintf("path %q contains a NUL character", path),
				Suggestion: "paths must be valid strings without NUL characters",
			}
		}
	}
	return nil
}

func checkSkillNames(doc *config.Document) *errors.ValidationError {
	for name := range doc.Skills {
		if name == "" {
			return &errors.ValidationError{
				Rule:       "SkillNameRule",
				Detail:     "skill name is empty",
				Suggestion: "all skills must have a non-empty name",
			}
		}
	}
	return nil
}
