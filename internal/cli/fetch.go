package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pacgrid/pacgrid/pkg/errors"
	"github.com/pacgrid/pacgrid/pkg/io"
	"github.com/pacgrid/pacgrid/pkg/pipeline"
)

// fetchCommand creates the fetch command for saving raw contribution data.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		output   string
		allYears bool
		mock     bool
		seed     int64
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [username]",
		Short: "Fetch contributions and save them as JSON",
		Long: `Fetch a user's contribution calendar and write it to a JSON file.

The saved file can be re-rendered any number of times with 'render',
so themes can be tried out without touching the network. Like
generate, fetch degrades to mock data when the API is unavailable.`,
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
			return c.runFetch(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", filepath.Join(defaultOutputDir, "contributions.json"), "output file")
	cmd.Flags().BoolVar(&allYears, "all-years", false, "fetch the account's full history")
	cmd.Flags().BoolVar(&mock, "mock", false, "skip the API and use generated data")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for mock data")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached API responses")

	return cmd
}

func (c *CLI) runFetch(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	if err := errors.ValidateOutputPath(output); err != nil {
		return err
	}
	runner := c.newRunner(ctx, noCache)

	spinner := startSpinner(ctx, "Fetching contributions for "+opts.Username+"...")
	records, source := runner.Fetch(ctx, opts)
	spinner.Stop()

	if source == pipeline.SourceMock && !opts.Mock {
		printWarning("GitHub data unavailable, saved mock data")
	}

	if err := io.ExportJSON(io.NewDataset(opts.Username, source, records), output); err != nil {
		return err
	}

	printSuccess("Fetched %d days for %s", len(records), opts.Username)
	printFile(output)
	printNextStep("Render it", appName+" render "+output)
	return nil
}
