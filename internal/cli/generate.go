package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pacgrid/pacgrid/pkg/errors"
	"github.com/pacgrid/pacgrid/pkg/io"
	"github.com/pacgrid/pacgrid/pkg/pipeline"
)

// defaultOutputDir is where artifacts land when --output is not given.
const defaultOutputDir = "dist"

// renderFlags are the flags shared by generate and render.
type renderFlags struct {
	typesStr string
	format   string
	themeVal string
	title    string
	output   string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single type) or base path (multiple)")
	cmd.Flags().StringVar(&f.typesStr, "type", "", "output type(s): grid (default), banner (comma-separated)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: svg (default) or json")
	cmd.Flags().StringVar(&f.themeVal, "theme", "", "theme name (github-dark, github-light) or TOML file")
	cmd.Flags().StringVar(&f.title, "title", "", "board title (defaults to the username)")
}

// apply copies the flag values onto pipeline options.
func (f *renderFlags) apply(opts *pipeline.Options) error {
	opts.Types = parseTypes(f.typesStr)
	opts.Format = f.format
	if opts.Format == "" {
		opts.Format = pipeline.FormatSVG
	}
	opts.Title = f.title

	t, err := resolveTheme(f.themeVal)
	if err != nil {
		return err
	}
	opts.SetTheme(t)
	return nil
}

// generateCommand creates the generate command: the full pipeline from
// the GitHub API to rendered files.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags    renderFlags
		allYears bool
		mock     bool
		seed     int64
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "generate [username]",
		Short: "Fetch contributions and render the animated SVG",
		Long: `Fetch a user's contribution calendar and render it in one step.

The username comes from the argument, the GITHUB_USERNAME environment
variable, or falls back to "octocat". Fetching needs a GITHUB_TOKEN;
without one, or when the API is unreachable, generated mock data is
used instead and the command still succeeds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Username: resolveUsername(args),
				AllYears: allYears,
				Mock:     mock,
				Seed:     seed,
				Refresh:  refresh,
				Logger:   loggerFromContext(cmd.Context()),
			}
			if err := flags.apply(&opts); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, flags.output, noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&allYears, "all-years", false, "fetch the account's full history")
	cmd.Flags().BoolVar(&mock, "mock", false, "skip the API and use generated data")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for mock data")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached API responses")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner := c.newRunner(ctx, noCache)

	spinner := startSpinner(ctx, fmt.Sprintf("Generating calendar for %s...", opts.Username))

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.Fail("Generation failed")
		return err
	}
	spinner.Stop()

	if result.Source == pipeline.SourceMock && !opts.Mock {
		printWarning("GitHub data unavailable, rendered mock data")
	}

	printSuccess("Generated %s for %s", joinTypes(opts.Types), opts.Username)
	printCalendarStats(result.Summary.Total, result.Stats.Weeks, result.Stats.Populated, result.Source)
	return writeArtifacts(result.Artifacts, opts, output)
}

// writeArtifacts writes rendered artifacts to disk and prints a line
// per file. With one artifact, output (default dist/pacgrid.<ext>) is
// used directly; with several, the type is appended to the base path.
func writeArtifacts(artifacts map[string][]byte, opts pipeline.Options, output string) error {
	ext := "." + opts.Format
	if output == "" {
		output = filepath.Join(defaultOutputDir, appName+ext)
	}
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}

	if len(artifacts) == 1 {
		for _, data := range artifacts {
			if err := io.WriteFile(output, data); err != nil {
				return err
			}
			printFile(output)
		}
		return nil
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	for _, typ := range opts.Types {
		data, ok := artifacts[typ]
		if !ok {
			continue
		}
		path := base + "_" + typ + ext
		if err := io.WriteFile(path, data); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}
