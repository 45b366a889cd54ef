package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/search"
)

var (
	searchKeys          bool
	searchValues        bool
	searchCaseSensitive bool
	searchMaxDepth      int
	searchJSON          bool
)

func init() {
	searchCmd.Flags().BoolVar(&searchKeys, "keys", true, "Match against key names")
	searchCmd.Flags().BoolVar(&searchValues, "values", false, "Match against values")
	searchCmd.Flags().BoolVar(&searchCaseSensitive, "case-sensitive", false,
		"Match case sensitively")
	searchCmd.Flags().IntVar(&searchMaxDepth, "max-depth", -1,
		"Maximum nesting depth to search (-1 for unlimited)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search configuration keys and values",
	Long: `Search the configuration documents for a substring.

By default, matches key names case-insensitively across both layers.
Use --values to also match scalar values, and --scope to restrict the
search to a single layer. Every result reports its key path, value, and
the layer it came from.`,
	Example: `  # Find keys mentioning token
  claudecfg search token

  # Search values too, in the global layer only
  claudecfg search npx --values --scope global

  # Limit nesting depth
  claudecfg search enabled --max-depth 2

  See Also: claudecfg config show, claudecfg config diff`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	return runSearchWithWriter(cmd, args, os.Stdout)
}

func runSearchWithWriter(_ *cobra.Command, args []string, w io.Writer) error {
	query := args[0]

	searcher := search.New(
		search.WithKeys(searchKeys),
		search.WithValues(searchValues),
		search.WithCaseSensitive(searchCaseSensitive),
		search.WithMaxDepth(searchMaxDepth),
	)

	scopes := []config.Scope{config.ScopeGlobal, config.ScopeProject}
	if scope := config.Scope(scopeFlag); scope.Valid() {
		scopes = []config.Scope{scope}
	}

	s := newStore()
	var results []search.Result
	for _, scope := range scopes {
		found, err := s.Search(query, scope, searcher)
		if err != nil {
			return err
		}
		results = append(results, found...)
	}

	if searchJSON {
		if results == nil {
			results = []search.Result{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Fprintf(w, "No matches for %q\n", query)
		return nil
	}

	for _, r := range results {
		fmt.Fprintln(w, r.Format())
	}
	fmt.Fprintf(w, "\n%d match(es)\n", len(results))
	return nil
}
