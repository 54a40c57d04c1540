// Package cli implements the pacgrid command-line interface.
//
// This package provides commands for generating animated contribution
// calendars, fetching raw contribution data, re-rendering saved data,
// and managing the HTTP response cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Fetch contributions and render the animated SVG
//   - fetch: Fetch contributions and save them as JSON
//   - render: Render a saved contributions file
//   - cache: Manage the HTTP response cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pacgrid/pacgrid/pkg/buildinfo"
	"github.com/pacgrid/pacgrid/pkg/integrations/github"
	"github.com/pacgrid/pacgrid/pkg/pipeline"
	"github.com/pacgrid/pacgrid/pkg/render/theme"
)

const (
	// appName is the application name used for directories and display.
	appName = "pacgrid"

	// envToken is the environment variable holding the GitHub API token.
	envToken = "GITHUB_TOKEN"

	// envUsername is the environment variable holding the default username.
	envUsername = "GITHUB_USERNAME"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "pacgrid renders GitHub contribution calendars as animated SVGs",
		Long:         `pacgrid fetches a GitHub user's contribution calendar and renders it as an animated SVG in which a hungry chomper eats its way across the dots, plus an optional terminal-typing banner.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use. The logger comes
// from the command context, where RootCommand put it. The GitHub client
// reads its token from the environment; with noCache set it works out
// of a throwaway directory so nothing is reused or persisted.
func (c *CLI) newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	logger := loggerFromContext(ctx)
	client, err := newGitHubClient(noCache)
	if err != nil {
		// No client means every run degrades to mock data.
		logger.Warn("GitHub client unavailable", "error", err)
		return pipeline.NewRunner(nil, logger)
	}
	return pipeline.NewRunner(client, logger)
}

func newGitHubClient(noCache bool) (*github.Client, error) {
	var dir string
	var err error
	if noCache {
		dir, err = os.MkdirTemp("", appName+"-cache-*")
	} else {
		dir, err = cacheDir()
	}
	if err != nil {
		return nil, err
	}
	return github.NewClientWithCacheDir(os.Getenv(envToken), dir, pipeline.DefaultCacheTTL)
}

// resolveUsername picks the username from args, the environment, or the
// pipeline default, in that order.
func resolveUsername(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if u := os.Getenv(envUsername); u != "" {
		return u
	}
	return pipeline.DefaultUsername
}

// resolveTheme loads a theme from a name or a TOML file path.
func resolveTheme(value string) (theme.Theme, error) {
	if value == "" {
		return theme.GitHubDark(), nil
	}
	if strings.HasSuffix(value, ".toml") {
		return theme.Load(value)
	}
	return theme.Named(value)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pacgrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseTypes parses the --type flag into a slice of output types.
// If empty, defaults to ["grid"].
func parseTypes(s string) []string {
	if s == "" {
		return []string{pipeline.TypeGrid}
	}
	return strings.Split(s, ",")
}
