package store

import (
	"sort"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
)

// ListServers returns the MCP servers configured at a scope, sorted by name.
func (s *Store) ListServers(scope config.Scope, projectPath string) ([]*config.ServerEntry, error) {
	doc, _, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return nil, err
	}

	servers := make([]*config.ServerEntry, 0, len(doc.MCPServers))
	for _, entry := range doc.MCPServers {
		servers = append(servers, entry)
	}
	sort.Slice(servers, func(i, j int) bool {
		return servers[i].Name < servers[j].Name
	})
	return servers, nil
}

// GetServer returns one MCP server by name.
func (s *Store) GetServer(name string, scope config.Scope, projectPath string) (*config.ServerEntry, error) {
	doc, _, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return nil, err
	}

	entry, ok := doc.MCPServers[name]
	if !ok {
		return nil, serverNotFound(name, doc)
	}
	return entry, nil
}

// AddServer adds a new MCP server at a scope and writes the configuration.
// Adding a name that already exists is an error; use RemoveServer first or a
// key-path set to modify an existing entry.
func (s *Store) AddServer(entry *config.ServerEntry, scope config.Scope, projectPath string) error {
	name := strings.TrimSpace(entry.Name)
	if name == "" {
		return &errors.ValidationError{
			Rule:       "ServerNameRule",
			Detail:     "server name is empty",
			Suggestion: "provide a non-empty server name",
		}
	}
	entry.Name = name

	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	if doc.MCPServers == nil {
		doc.MCPServers = make(map[string]*config.ServerEntry)
	}
	if _, exists := doc.MCPServers[name]; exists {
		return errors.Newf("MCP server %q already exists; remove it first or use 'config set' to modify it", name)
	}
	doc.MCPServers[name] = entry

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("MCP server added", "name", name, "scope", scope)
	return nil
}

// RemoveServer deletes an MCP server and writes the configuration. An empty
// server section is dropped from the file entirely.
func (s *Store) RemoveServer(name string, scope config.Scope, projectPath string) error {
	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	if _, ok := doc.MCPServers[name]; !ok {
		return serverNotFound(name, doc)
	}
	delete(doc.MCPServers, name)
	if len(doc.MCPServers) == 0 {
		doc.MCPServers = nil
	}

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("MCP server removed", "name", name, "scope", scope)
	return nil
}

// EnableServer sets a server's enabled flag to true and writes the
// configuration.
func (s *Store) EnableServer(name string, scope config.Scope, projectPath string) error {
	return s.setServerEnabled(name, true, scope, projectPath)
}

// DisableServer sets a server's enabled flag to false and writes the
// configuration.
func (s *Store) DisableServer(name string, scope config.Scope, projectPath string) error {
	return s.setServerEnabled(name, false, scope, projectPath)
}

func (s *Store) setServerEnabled(name string, enabled bool, scope config.Scope, projectPath string) error {
	doc, configPath, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	entry, ok := doc.MCPServers[name]
	if !ok {
		return serverNotFound(name, doc)
	}
	entry.Enabled = enabled

	if err := s.Write(configPath, doc); err != nil {
		return err
	}
	s.logger.Info("MCP server updated", "name", name, "enabled", enabled, "scope", scope)
	return nil
}

// serverNotFound builds a not-found error naming the configured servers so
// typos are easy to spot.
func serverNotFound(name string, doc *config.Document) error {
	if len(doc.MCPServers) == 0 {
		return errors.Wrapf(errors.ErrNotFound, "no MCP servers configured; cannot find %q", name)
	}
	names := make([]string, 0, len(doc.MCPServers))
	for n := range doc.MCPServers {
		names = append(names, n)
	}
	sort.Strings(names)
	return errors.Wrapf(errors.ErrNotFound, "MCP server %q not found. Available servers: %s",
		name, strings.Join(names, ", "))
}
