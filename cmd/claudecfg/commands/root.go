// Package commands implements the CLI commands for claudecfg.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/claudecfg/internal/config"
	"github.com/thoreinstein/claudecfg/internal/errors"
	"github.com/thoreinstein/claudecfg/internal/logging"
	"github.com/thoreinstein/claudecfg/internal/settings"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// scopeFlag holds the value of the --scope flag.
var scopeFlag string

// projectFlag holds the value of the --project flag.
var projectFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// settingsLoadErr holds any error that occurred during settings loading.
var settingsLoadErr error

func init() {
	cobra.OnInitialize(initSettings)

	// Add persistent flags
	rootCmd.PersistentFlags().StringVarP(&scopeFlag, "scope", "s", "",
		`configuration scope: global, project (default: merged view for reads, global for writes)`)
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "",
		"project root directory (default: discovered from the current directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	// Add version flag
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("claudecfg version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initSettings() {
	settings.Init()
	// Capture load errors for later reporting
	_, settingsLoadErr = settings.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "claudecfg",
	Short: "Manage layered Claude configuration files",
	Long: `claudecfg manages Claude configuration stored as JSON documents in two
layers: a global file under the user configuration directory and an
optional per-project file under .claude/ in the project root.

It covers MCP server and skill entries, allowed paths, and custom
instructions, with automatic timestamped backups before every write.
Fields it does not recognize are preserved byte for byte, so newer
tooling can keep extending the format without data loss.

Use the --scope flag to target a specific layer, or omit it to operate
on the merged view where the project layer overrides the global one.`,
	Example: `  # Initialize tool settings
  claudecfg init

  # Show the merged configuration for the current project
  claudecfg config show

  # List configured MCP servers
  claudecfg mcp list

  # Search configuration keys
  claudecfg search token

  See Also: claudecfg init, claudecfg config, claudecfg backup`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return validateScopeFlag(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("CLAUDECFG_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// validateScopeFlag checks that the --scope flag, when set, names a valid scope.
func validateScopeFlag(cmd *cobra.Command, _ []string) error {
	// Skip validation for help and version commands
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	// Check for settings load errors first
	if settingsLoadErr != nil {
		return errors.NewUserError(settingsLoadErr,
			"check the settings file at "+settings.Path())
	}

	if scopeFlag == "" {
		return nil
	}

	if !config.Scope(scopeFlag).Valid() {
		err := errors.Newf("invalid scope %q (valid: %s, %s)",
			scopeFlag, config.ScopeGlobal, config.ScopeProject)
		return errors.NewUserError(err, "Run 'claudecfg --help' to see valid scopes")
	}

	return nil
}

// GetScopeFlag returns the current value of the --scope flag.
// This is used by subcommands to access the flag value.
func GetScopeFlag() string {
	return scopeFlag
}

// GetProjectFlag returns the current value of the --project flag.
func GetProjectFlag() string {
	return projectFlag
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
