package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pacgrid/pacgrid/pkg/io"
	"github.com/pacgrid/pacgrid/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering saved data.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [contributions.json]",
		Short: "Render a saved contributions file",
		Long: `Render a contributions file produced by 'fetch'.

The render command never touches the network: all data comes from the
file, so it works offline and produces identical output for identical
input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, flags renderFlags) error {
	logger := loggerFromContext(ctx)
	track := newProgress(logger)

	dataset, err := io.ImportJSON(input)
	if err != nil {
		return err
	}

	opts := pipeline.Options{
		Username: dataset.Username,
		Records:  dataset.Records,
		Source:   dataset.Source,
		Logger:   logger,
	}
	if err := flags.apply(&opts); err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if err := writeArtifacts(result.Artifacts, opts, flags.output); err != nil {
		return err
	}
	track.done(fmt.Sprintf("Rendered %d day(s) from %s", len(dataset.Records), input))

	printSuccess("Rendered %s from %s", joinTypes(opts.Types), input)
	printCalendarStats(result.Summary.Total, result.Stats.Weeks, result.Stats.Populated, result.Source)
	return nil
}
