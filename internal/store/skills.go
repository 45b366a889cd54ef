package store

import (
	"sort"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

// ListSkills returns the skills configured at a scope, sorted by name.
func (s *Store) ListSkills(scope config.Scope, projectPath string) ([]*config.SkillEntry, error) {
	doc, _, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return nil, err
	}

	skills := make([]*config.SkillEntry, 0, len(doc.Skills))
	for _, entry := range doc.Skills {
		skills = append(skills, entry)
	}
	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})
	return skills, nil
}

// AddSkill adds a new skill at a scope and writes the configuration.
func (s *Store) AddSkill(entry *config.SkillEntry, scope config.Scope, projectPath string) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return &errors.ValidationError{
			Rule:       "SkillNameRule",
			Detail:     "skill name is empty",
			Suggestion: "provide a non-empty skill name",
		}
	}
	entry.Name = name

	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	if doc.Skills == nil {
		doc.Skills = make(map[string]*config.SkillEntry)
	}
	if _, exists := doc.Skills[name]; exists {
		return errors.Newf("skill %q already exists; remove it first or use 'config set' to modify it", name)
	}
	doc.Skills[name] = entry

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("skill added", "name", name, "scope", scope)
	return nil
}

// RemoveSkill deletes a skill and writes the configuration. An empty skill
// section is dropped from the file entirely.
func (s *Store) RemoveSkill(name string, scope config.Scope, projectPath string) error {
	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	if _, ok := doc.Skills[name]; !ok {
		return skillNotFound(name, doc)
	}
	delete(doc.Skills, name)
	if len(doc.Skills) == 0 {
		doc.Skills = nil
	}

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("skill removed", "name", name, "scope", scope)
	return nil
}

// EnableSkill sets a skill's enabled flag to true and writes the
// configuration.
func (s *Store) EnableSkill(name string, scope config.Scope, projectPath string) error {
	return s.setSkillEnabled(name, true, scope, projectPath)
}

// DisableSkill sets a skill's enabled flag to false and writes the
// configuration.
func (s *Store) DisableSkill(name string, scope config.Scope, projectPath string) error {
	return s.setSkillEnabled(name, false, scope, projectPath)
}

func (s *Store) setSkillEnabled(name string, enabled bool, scope config.Scope, projectPath string) error {
	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	entry, ok := doc.Skills[name]
	if !ok {
		return skillNotFound(name, doc)
	}
	entry.Enabled = enabled

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("skill updated", "name", name, "enabled", enabled, "scope", scope)
	return nil
}

func skillNotFound(name string, doc *config.Document) error {
	if len(doc.Skills) == 0 {
		return errors.Wrapf(errors.ErrNotFound, "no skills configured; cannot find %q", name)
	}
	names := make([]string, 0, len(doc.Skills))
	for n := range doc.Skills {
		names = append(names, n)
	}
	sort.Strings(names)
	return errors.Wrapf(errors.ErrNotFound, "skill %q not found. Available skills: %s",
		name, strings.Join(names, ", "))
}
