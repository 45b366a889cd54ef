// Package project discovers directories carrying a per-project
// configuration, so the CLI can list every project under a workspace root.
package project

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/paths"
)

// Info describes one discovered project.
type Info struct {
	// Name is the project's directory name.
	Name string `json:"name"`

	// Root is the project's root directory.
	Root string `json:"root"`

	// ConfigPath is the project configuration file.
	ConfigPath string `json:"configPath"`

	// LastModified is the config file's modification time, zero when
	// unavailable.
	LastModified time.Time `json:"lastModified,omitempty"`
}

// defaultIgnores are directory names never descended into.
var defaultIgnores = []string{"node_modules", "target", ".git", "dist", "build"}

// Scanner walks a directory tree looking for .claude/config.json markers.
type Scanner struct {
	maxDepth int
	ignores  []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxDepth caps how many directory levels below the start are scanned.
// Negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		s.maxDepth = depth
	}
}

// WithIgnore adds a directory name to skip during the scan.
func WithIgnore(name string) Option {
	return func(s *Scanner) {
		s.ignores = append(s.ignores, name)
	}
}

// NewScanner creates a Scanner. Defaults: unlimited depth and the standard
// ignore set (node_modules, target, .git, dist, build).
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		maxDepth: -1,
		ignores:  append([]string(nil), defaultIgnores...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan searches the tree below start and returns discovered projects sorted
// by name. The start directory itself is not reported even if it carries a
// configuration. Unreadable directories are skipped, not fatal.
func (s *Scanner) Scan(start string) ([]Info, error) {
	root, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.Wrap(err, "resolve scan root")
	}
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "scan root %s", start)
		}
		return nil, errors.NewFilesystemError("stat scan root", start, err)
	}

	var projects []Info
	s.walk(root, 0, &projects)

	sort.Slice(projects, func(i, j int) bool {
		if projects[i].Name != projects[j].Name {
			return projects[i].Name < projects[j].Name
		}
		return projects[i].Root < projects[j].Root
	})

	return projects, nil
}

func (s *Scanner) walk(dir string, depth int, projects *[]Info) {
	if s.maxDepth >= 0 && depth >= s.maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() || s.shouldIgnore(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		configPath := paths.ProjectConfigPath(path)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			*projects = append(*projects, Info{
				Name:         entry.Name(),
				Root:         path,
				ConfigPath:   configPath,
				LastModified: info.ModTime(),
			})
		}

		s.walk(path, depth+1, projects)
	}
}

func (s *Scanner) shouldIgnore(name string) bool {
	lower := strings.ToLower(name)
	for _, ignore := range s.ignores {
		if name == ignore || strings.HasPrefix(lower, strings.ToLower(ignore)) {
			return true
		}
	}
	return false
}
