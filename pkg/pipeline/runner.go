package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/grid"
	"github.com/pacgrid/pacgrid/pkg/path"
	"github.com/pacgrid/pacgrid/pkg/render/banner"
	"github.com/pacgrid/pacgrid/pkg/render/board"
)

// Data sources reported in [Result.Source].
const (
	SourceGitHub = "github"
	SourceMock   = "mock"
)

// Fetcher retrieves contribution calendars from a remote API.
// [github.Client] implements it.
type Fetcher interface {
	FetchCalendar(ctx context.Context, username string, end contrib.Date, refresh bool) ([]contrib.Record, error)
	FetchYear(ctx context.Context, username string, year int, refresh bool) ([]contrib.Record, error)
	FetchAccountYears(ctx context.Context, username string) ([]int, error)
}

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the fetcher and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Fetcher Fetcher
	Logger  *log.Logger
}

// NewRunner creates a runner. A nil fetcher disables the API entirely;
// every run then uses mock data. If logger is nil, the default logger
// is used.
func NewRunner(f Fetcher, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Fetcher: f, Logger: logger}
}

// Execute runs the complete fetch → grid → path → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Fetch
	fetchStart := time.Now()
	records, source := r.Fetch(ctx, opts)
	result.Records = records
	result.Source = source
	result.Summary = contrib.Summarize(records)
	result.Stats.Days = len(records)
	result.Stats.FetchTime = time.Since(fetchStart)

	opts.Logger.Info("fetched contributions",
		"user", opts.Username,
		"source", source,
		"days", len(records),
		"total", result.Summary.Total,
		"duration", result.Stats.FetchTime)

	// Stages 2+3: Grid and path
	buildStart := time.Now()
	g := grid.Build(records)
	pts := path.Plan(g, opts.Theme.Geometry(), opts.Theme.Mode())
	sched := path.NewSchedule(pts, opts.Theme.Step(), opts.Theme.ReturnTrip)
	result.Stats.Weeks = g.Weeks()
	result.Stats.Populated = g.Populated()
	result.Stats.PathLength = len(pts)
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("built calendar grid",
		"weeks", g.Weeks(),
		"cells", g.Populated(),
		"path", len(pts),
		"duration", result.Stats.BuildTime)

	// Stage 4: Render
	renderStart := time.Now()
	artifacts, err := r.Render(g, pts, sched, result.Summary, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"types", opts.Types,
		"format", opts.Format,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Fetch obtains contribution records for the options' user. It never
// fails: preloaded records are used as-is, and any API error degrades
// to deterministic mock data with a warning.
func (r *Runner) Fetch(ctx context.Context, opts Options) ([]contrib.Record, string) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		opts.Logger = log.Default()
	}
	r.applyLogger(&opts)

	if len(opts.Records) > 0 {
		source := opts.Source
		if source == "" {
			source = SourceGitHub
		}
		return opts.Records, source
	}
	if opts.Mock {
		return r.mock(opts), SourceMock
	}
	if r.Fetcher == nil {
		opts.Logger.Warn("no API access, using mock data", "user", opts.Username)
		return r.mock(opts), SourceMock
	}

	records, err := r.fetchRemote(ctx, opts)
	if err != nil {
		opts.Logger.Warn("fetch failed, using mock data",
			"user", opts.Username,
			"error", err)
		return r.mock(opts), SourceMock
	}
	return records, SourceGitHub
}

func (r *Runner) fetchRemote(ctx context.Context, opts Options) ([]contrib.Record, error) {
	if !opts.AllYears {
		return r.Fetcher.FetchCalendar(ctx, opts.Username, opts.End, opts.Refresh)
	}

	years, err := r.Fetcher.FetchAccountYears(ctx, opts.Username)
	if err != nil {
		return nil, err
	}

	var all []contrib.Record
	for _, year := range years {
		records, err := r.Fetcher.FetchYear(ctx, opts.Username, year, opts.Refresh)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	contrib.SortByDate(all)
	return all, nil
}

func (r *Runner) mock(opts Options) []contrib.Record {
	return contrib.Mock(contrib.MockOptions{
		Seed: opts.Seed,
		End:  opts.End,
	})
}

// Render produces the requested artifacts from an already built grid
// and path. Artifacts are keyed by output type.
func (r *Runner) Render(g grid.Grid, pts []path.Point, sched path.Schedule, summary contrib.Stats, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	artifacts := make(map[string][]byte, len(opts.Types))
	for _, typ := range opts.Types {
		switch {
		case typ == TypeGrid && opts.Format == FormatJSON:
			data, err := board.RenderJSON(g, pts, sched)
			if err != nil {
				return nil, err
			}
			artifacts[typ] = data

		case typ == TypeGrid:
			svgOpts := []board.SVGOption{
				board.WithTheme(opts.Theme),
				board.WithStats(summary),
			}
			if opts.Title != "" {
				svgOpts = append(svgOpts, board.WithTitle(opts.Title))
			} else {
				svgOpts = append(svgOpts, board.WithTitle(opts.Username))
			}
			if opts.DocumentID != "" {
				svgOpts = append(svgOpts, board.WithDocumentID(opts.DocumentID))
			}
			artifacts[typ] = board.RenderSVG(g, pts, sched, svgOpts...)

		case typ == TypeBanner:
			artifacts[typ] = banner.Render(bannerLines(opts.Username, summary),
				banner.WithTheme(opts.Theme))
		}
	}
	return artifacts, nil
}

// bannerLines builds the terminal transcript typed out by the banner.
func bannerLines(username string, s contrib.Stats) []string {
	lines := []string{"pacgrid " + username}
	if s.Total == 0 {
		return append(lines, "no contributions yet")
	}
	lines = append(lines, fmt.Sprintf("%d contributions on %d days", s.Total, s.ActiveDays))
	if s.LongestStreak > 1 {
		lines = append(lines, fmt.Sprintf("longest streak: %d days", s.LongestStreak))
	}
	if yr := s.YearRange(); yr != "" {
		lines = append(lines, yr)
	}
	return lines
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
