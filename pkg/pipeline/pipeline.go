// Package pipeline provides the core generation pipeline for pacgrid.
//
// This package implements the complete fetch → grid → path → render
// pipeline shared by every CLI entry point, so `generate` and
// `render` behave identically for the stages they have in common.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Fetch: Obtain contribution records from the GitHub API, falling
//     back to generated mock data on any failure
//  2. Grid: Arrange records into a weekly calendar grid
//  3. Path: Plan the serpentine traversal and its animation schedule
//  4. Render: Emit the animated SVG board, the typing banner, or the
//     layout as JSON
//
// Each stage can be run independently or as part of the complete
// pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(client, logger)
//	opts := pipeline.Options{
//	    Username: "octocat",
//	    Types:    []string{pipeline.TypeGrid},
//	    Format:   pipeline.FormatSVG,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts[pipeline.TypeGrid]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/errors"
	"github.com/pacgrid/pacgrid/pkg/render/theme"
)

const (
	// DefaultUsername is used when no username is given anywhere.
	DefaultUsername = "octocat"

	// DefaultSeed is the default random seed for mock data.
	DefaultSeed = int64(42)

	// DefaultCacheTTL bounds how long fetched calendars are reused.
	DefaultCacheTTL = 6 * time.Hour
)

// Output types for the render stage.
const (
	TypeGrid   = "grid"
	TypeBanner = "banner"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidTypes is the set of supported output types.
var ValidTypes = map[string]bool{
	TypeGrid:   true,
	TypeBanner: true,
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Fetch options
	Username string `json:"username"`
	AllYears bool   `json:"all_years,omitempty"`
	Mock     bool   `json:"mock,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
	Refresh  bool   `json:"refresh,omitempty"`

	// End is the most recent day of the calendar window.
	// The zero value means today.
	End contrib.Date `json:"end,omitempty"`

	// Records short-circuits the fetch stage entirely, for data
	// loaded from a file. Source labels where it came from.
	Records []contrib.Record `json:"-"`
	Source  string           `json:"-"`

	// Render options
	Types      []string    `json:"types,omitempty"`
	Format     string      `json:"format,omitempty"`
	Theme      theme.Theme `json:"-"`
	Title      string      `json:"title,omitempty"`
	DocumentID string      `json:"-"` // set for deterministic output

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	themed    bool `json:"-"`
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records is the contribution data the run was built from.
	Records []contrib.Record

	// Source labels where the records came from: "github" or "mock".
	Source string

	// Summary contains aggregate contribution numbers.
	Summary contrib.Stats

	// Artifacts contains rendered outputs keyed by output type.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Days       int
	Weeks      int
	Populated  int
	PathLength int
	FetchTime  time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// ValidateType checks that an output type is valid.
func ValidateType(t string) error {
	if !ValidTypes[t] {
		return errors.New(errors.ErrCodeUnsupported, "unsupported type: %q (must be one of: grid, banner)", t)
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Username == "" {
		o.Username = DefaultUsername
	}
	if err := errors.ValidateUsername(o.Username); err != nil {
		return err
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.End.IsZero() {
		o.End = contrib.Today()
	}

	if len(o.Types) == 0 {
		o.Types = []string{TypeGrid}
	}
	for _, t := range o.Types {
		if err := ValidateType(t); err != nil {
			return err
		}
	}

	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Format == FormatJSON {
		for _, t := range o.Types {
			if t != TypeGrid {
				return errors.New(errors.ErrCodeUnsupported, "json output supports the grid type only")
			}
		}
	}

	if !o.themed {
		o.Theme = theme.GitHubDark()
		o.themed = true
	}
	if err := o.Theme.Validate(); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// SetTheme overrides the default theme. Must be called before the
// options are first validated.
func (o *Options) SetTheme(t theme.Theme) {
	o.Theme = t
	o.themed = true
}
