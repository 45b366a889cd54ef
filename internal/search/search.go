// Package search walks a configuration document's JSON projection and finds
// keys or values containing a query string.
package search

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/thoreinstein/claudecfg/internal/config"
)

// ValueType is a coarse classification of a matched JSON value.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "bool"
	TypeObject  ValueType = "object"
	TypeArray   ValueType = "array"
	TypeNull    ValueType = "null"
)

// Result is a single search match.
type Result struct {
	// KeyPath locates the match: dot notation for object keys, [index]
	// for array elements, e.g. "mcpServers.npx.args[0]".
	KeyPath string `json:"keyPath"`

	// Value is the display string of the match. Key matches render as
	// "<key> name".
	Value string `json:"value"`

	// Source is the layer the document was read from.
	Source config.Scope `json:"source"`

	// ConfigPath is the file the document came from.
	ConfigPath string `json:"configPath"`

	// Type classifies the matched value.
	Type ValueType `json:"valueType"`
}

// Format renders the result as a single display line.
func (r Result) Format() string {
	return fmt.Sprintf("%s: %s = %s (%s)", strings.ToUpper(r.Source.String()), r.KeyPath, r.Value, r.Type)
}

// Searcher matches keys and values against a substring query.
type Searcher struct {
	searchKeys    bool
	searchValues  bool
	caseSensitive bool
	maxDepth      int
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithKeys toggles matching against object keys.
func WithKeys(on bool) Option {
	return func(s *Searcher) {
		s.searchKeys = on
	}
}

// WithValues toggles matching against leaf values.
func WithValues(on bool) Option {
	return func(s *Searcher) {
		s.searchValues = on
	}
}

// WithCaseSensitive toggles case-sensitive matching.
func WithCaseSensitive(on bool) Option {
	return func(s *Searcher) {
		s.caseSensitive = on
	}
}

// WithMaxDepth caps traversal depth. The root's direct children are at depth
// 1; nodes at exactly the limit are still visited, deeper ones are not.
// Negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		s.maxDepth = depth
	}
}

// New creates a Searcher. Defaults: keys on, values off, case-insensitive,
// unlimited depth.
func New(opts ...Option) *Searcher {
	s := &Searcher{
		searchKeys: true,
		maxDepth:   -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search walks the document and returns every match in deterministic order:
// object keys sorted, array elements in sequence.
func (s *Searcher) Search(query string, doc *config.Document, source config.Scope, configPath string) ([]Result, error) {
	projection, err := doc.ToMap()
	if err != nil {
		return nil, err
	}

	var results []Result
	s.walk(query, projection, "", source, configPath, 0, &results)
	return results, nil
}

func (s *Searcher) walk(query string, value any, path string, source config.Scope, configPath string, depth int, results *[]Result) {
	if s.maxDepth >= 0 && depth > s.maxDepth {
		return
	}

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}

			if s.searchKeys && s.matches(query, key) {
				*results = append(*results, Result{
					KeyPath:    childPath,
					Value:      "<key> " + key,
					Source:     source,
					ConfigPath: configPath,
					Type:       TypeString,
				})
			}

			s.walk(query, v[key], childPath, source, configPath, depth+1, results)
		}

	case []any:
		for i, element := range v {
			s.walk(query, element, path+"["+strconv.Itoa(i)+"]", source, configPath, depth+1, results)
		}

	case string:
		if s.searchValues && s.matches(query, v) {
			*results = append(*results, Result{
				KeyPath:    path,
				Value:      v,
				Source:     source,
				ConfigPath: configPath,
				Type:       TypeString,
			})
		}

	case float64:
		if s.searchValues {
			text := strconv.FormatFloat(v, 'f', -1, 64)
			if s.matches(query, text) {
				*results = append(*results, Result{
					KeyPath:    path,
					Value:      text,
					Source:     source,
					ConfigPath: configPath,
					Type:       TypeNumber,
				})
			}
		}

	case bool:
		if s.searchValues {
			text := strconv.FormatBool(v)
			if s.matches(query, text) {
				*results = append(*results, Result{
					KeyPath:    path,
					Value:      text,
					Source:     source,
					ConfigPath: configPath,
					Type:       TypeBoolean,
				})
			}
		}

		// Null values are never matched.
	}
}

func (s *Searcher) matches(query, text string) bool {
	if s.caseSensitive {
		return strings.Contains(text, query)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
