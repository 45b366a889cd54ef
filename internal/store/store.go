package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/claudecfg/internal/backup"
	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/logging"
	"github.com/thoreinstein/claudecfg/internal/paths"
	"github.com/thoreinstein/claudecfg/internal/search"
	"github.com/thoreinstein/claudecfg/internal/validator"
	"github.com/thoreinstein/claudecfg/pkg/fileutil"
)

// Store reads and writes configuration documents with the full safety
// pipeline: backup before write, validation, pretty serialization, and an
// atomic temp-file rename.
type Store struct {
	backups    *backup.Manager
	globalPath string
	logger     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithBackupManager sets the backup manager used before every overwrite.
func WithBackupManager(m *backup.Manager) Option {
	return func(s *Store) {
		s.backups = m
	}
}

// WithGlobalPath overrides the global configuration file location.
func WithGlobalPath(path string) Option {
	return func(s *Store) {
		s.globalPath = path
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store. Defaults: the standard global config path, a backup
// manager on the standard backup directory, and a discard logger.
func New(opts ...Option) *Store {
	s := &Store{
		backups:    backup.NewManager(),
		globalPath: paths.GlobalConfigPath(),
		logger:     logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backups returns the store's backup manager.
func (s *Store) Backups() *backup.Manager {
	return s.backups
}

// GlobalPath returns the global configuration file location.
func (s *Store) GlobalPath() string {
	return s.globalPath
}

// Read loads and parses the configuration file at path.
// Returns ErrNotFound when the file does not exist, a FormatError carrying
// line and column for malformed JSON, and a FilesystemError for I/O failures.
func (s *Store) Read(path string) (*config.Document, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrNotFound, "configuration file %s", path)
		}
		return nil, errors.NewFilesystemError("stat config file", path, err)
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.NewFilesystemError("read config file", path, err)
	}

	doc := config.New()
	if err := json.Unmarshal(data, doc); err != nil {
		line, column := locateJSONError(data, err)
		return nil, &errors.FormatError{
			Path:   path,
			Line:   line,
			Column: column,
			Detail: err.Error(),
		}
	}

	s.logger.Debug("loaded configuration", "path", path)
	return doc, nil
}

// Write stores doc at path through the safety pipeline:
//  1. back up the existing file, aborting the write on failure
//  2. validate the document
//  3. serialize as pretty-printed JSON
//  4. write atomically via a sibling temp file and rename
//
// Interrupted or failed writes leave the previous file content intact.
func (s *Store) Write(path string, doc *config.Document) error {
	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("creating backup before write", "path", path)
		if _, err := s.backups.Create(path); err != nil {
			return errors.Wrapf(errors.ErrBackupFailed, "%v", err)
		}
	}

	if err := validator.Validate(doc); err != nil {
		return err
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.NewFilesystemError("create config directory", filepath.Dir(path), err)
	}

	if err := fileutil.AtomicWriteJSON(path, doc); err != nil {
		return errors.NewFilesystemError("write config file", path, err)
	}

	s.logger.Debug("wrote configuration", "path", path)
	return nil
}

// Global returns the global configuration, or an empty document when the
// global file does not exist yet.
func (s *Store) Global() (*config.Document, error) {
	doc, err := s.Read(s.globalPath)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return config.New(), nil
		}
		return nil, err
	}
	return doc, nil
}

// Project returns the project configuration and its file path. With an empty
// projectPath the search walks upward from the current directory. A missing
// project configuration is not an error: the document and path are zero.
func (s *Store) Project(projectPath string) (*config.Document, string, error) {
	var configPath string
	if projectPath != "" {
		configPath = paths.ProjectConfigPath(projectPath)
		if _, err := os.Stat(configPath); err != nil {
			if os.IsNotExist(err) {
				return nil, "", nil
			}
			return nil, "", errors.NewFilesystemError("stat project config", configPath, err)
		}
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", errors.Wrap(err, "resolve working directory")
		}
		configPath, err = paths.FindProjectConfig(cwd)
		if err != nil {
			if errors.Is(err, paths.ErrNoProjectConfig) {
				return nil, "", nil
			}
			return nil, "", err
		}
	}

	doc, err := s.Read(configPath)
	if err != nil {
		return nil, "", err
	}
	return doc, configPath, nil
}

// Merged returns the global configuration with the project layer folded on
// top, or the global configuration alone when no project layer exists.
func (s *Store) Merged(projectPath string) (*config.Document, error) {
	global, err := s.Global()
	if err != nil {
		return nil, err
	}

	project, _, err := s.Project(projectPath)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return global, nil
	}

	return config.Merge(global, project), nil
}

// DiffConfigs compares the global and project layers. A missing project
// layer diffs against an empty document, so every global key reports as
// removed.
func (s *Store) DiffConfigs(projectPath string) ([]config.Change, config.SourceMap, error) {
	global, err := s.Global()
	if err != nil {
		return nil, nil, err
	}

	project, _, err := s.Project(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if project == nil {
		project = config.New()
	}

	return config.Diff(global, project)
}

// SetValue applies a dot-separated key-path mutation to the configuration of
// the given scope and persists the result through the write pipeline.
func (s *Store) SetValue(keyPath, value string, scope config.Scope, projectPath string) error {
	doc, path, err := s.resolveScope(scope, projectPath)
	if err != nil {
		return err
	}

	if err := config.Set(doc, keyPath, value); err != nil {
		return err
	}

	if err := s.Write(path, doc); err != nil {
		return err
	}

	s.logger.Info("set configuration value", "key", keyPath, "scope", scope.String())
	return nil
}

// Search runs the searcher over the documents of the requested scope.
// Unreadable or absent layers are skipped rather than failing the search.
func (s *Store) Search(query string, scope config.Scope, searcher *search.Searcher) ([]search.Result, error) {
	var results []search.Result

	switch scope {
	case config.ScopeGlobal:
		doc, err := s.Read(s.globalPath)
		if err != nil {
			return nil, ignoreMissing(err)
		}
		found, err := searcher.Search(query, doc, config.ScopeGlobal, s.globalPath)
		if err != nil {
			return nil, err
		}
		results = append(results, found...)

	case config.ScopeProject:
		doc, configPath, err := s.Project("")
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, nil
		}
		found, err := searcher.Search(query, doc, config.ScopeProject, configPath)
		if err != nil {
			return nil, err
		}
		results = append(results, found...)

	default:
		return nil, errors.Newf("unknown scope %q", scope)
	}

	return results, nil
}

// resolveScope reads the document for a scope, returning an empty document
// when the file does not exist yet, plus the path writes should target.
func (s *Store) resolveScope(scope config.Scope, projectPath string) (*config.Document, string, error) {
	switch scope {
	case config.ScopeGlobal:
		doc, err := s.Global()
		if err != nil {
			return nil, "", err
		}
		return doc, s.globalPath, nil

	case config.ScopeProject:
		if projectPath == "" {
			return nil, "", errors.New("project path is required for project scope")
		}
		configPath := paths.ProjectConfigPath(projectPath)
		doc, err := s.Read(configPath)
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				return config.New(), configPath, nil
			}
			return nil, "", err
		}
		return doc, configPath, nil

	default:
		return nil, "", errors.Newf("unknown scope %q", scope)
	}
}

func ignoreMissing(err error) error {
	if errors.Is(err, errors.ErrNotFound) {
		return nil
	}
	return err
}

// locateJSONError derives a 1-based line and column from a JSON decode
// error's byte offset, when the parser exposes one.
func locateJSONError(data []byte, err error) (line, column int) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0
	}

	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}

	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}
