package store

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/paths"
	"github.com/thoreinstein/claudecfg/internal/validator"
	"github.com/thoreinstein/claudecfg/pkg/fileutil"
)

// Format identifies an import/export file format.
type Format string

const (
	// FormatJSON is the supported interchange format.
	FormatJSON Format = "json"

	// FormatTOML is reserved; selecting it fails with a clear error instead
	// of mis-parsing.
	FormatTOML Format = "toml"
)

// FormatFromPath detects the format from a file extension. Unrecognized
// extensions default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Export writes doc to path in the format derived from its extension.
func (s *Store) Export(doc *config.Document, path string) error {
	if FormatFromPath(path) == FormatTOML {
		return errors.New("TOML format is not yet supported. Suggestion: use JSON format instead")
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.NewFilesystemError("create export directory", filepath.Dir(path), err)
	}

	if err := fileutil.AtomicWriteJSON(path, doc); err != nil {
		return errors.NewFilesystemError("write export file", path, err)
	}

	s.logger.Info("exported configuration", "path", path)
	return nil
}

// Import reads a configuration document from path, validating it before
// returning. The format is derived from the file extension.
func (s *Store) Import(path string) (*config.Document, error) {
	if FormatFromPath(path) == FormatTOML {
		return nil, errors.New("TOML format is not yet supported. Suggestion: use JSON format instead")
	}

	doc, err := s.Read(path)
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(doc); err != nil {
		return nil, err
	}

	s.logger.Info("imported configuration", "path", path)
	return doc, nil
}
