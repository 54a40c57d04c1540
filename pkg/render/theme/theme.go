// Package theme defines the visual configuration for the SVG renderers.
//
// A Theme collapses everything the near-duplicate generator variants of
// this tool historically disagreed on into one declarative structure:
// cell metrics, animation step, the five-entry level palette, and the
// traversal mode. Themes are plain TOML files; two built-ins
// (github-dark, github-light) ship with the binary.
package theme

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pacgrid/pacgrid/pkg/path"
)

// PaletteSize is the number of intensity colors (levels 0 through 4).
const PaletteSize = 5

// Theme is the full visual configuration for a rendered document.
// All geometry values are SVG user units; colors are #rrggbb strings.
type Theme struct {
	Name string `toml:"name"`

	// Colors.
	Background string   `toml:"background"`
	Text       string   `toml:"text"`
	Muted      string   `toml:"muted"`
	Dot        string   `toml:"dot"`
	Chomper    string   `toml:"chomper"`
	Palette    []string `toml:"palette"` // level 0 (darkest) .. level 4

	// Cell geometry.
	CellSize   float64 `toml:"cell_size"`
	CellGap    float64 `toml:"cell_gap"`
	CellRadius float64 `toml:"cell_radius"`
	Margin     float64 `toml:"margin"`

	// Animation.
	StepSeconds float64 `toml:"step_seconds"` // per-cell duration
	Traversal   string  `toml:"traversal"`    // "horizontal" or "vertical"
	ReturnTrip  bool    `toml:"return_trip"`
}

// GitHubDark is the default theme, matching the dark calendar colors.
func GitHubDark() Theme {
	return Theme{
		Name:        "github-dark",
		Background:  "#0d1117",
		Text:        "#c9d1d9",
		Muted:       "#8b949e",
		Dot:         "#ffee99",
		Chomper:     "#ffcc00",
		Palette:     []string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
		CellSize:    11,
		CellGap:     3,
		CellRadius:  2,
		Margin:      48,
		StepSeconds: 0.1,
		Traversal:   "horizontal",
	}
}

// GitHubLight mirrors the light calendar colors.
func GitHubLight() Theme {
	t := GitHubDark()
	t.Name = "github-light"
	t.Background = "#ffffff"
	t.Text = "#24292f"
	t.Muted = "#57606a"
	t.Dot = "#b08800"
	t.Chomper = "#d4a72c"
	t.Palette = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}
	return t
}

// builtins maps theme names to constructors.
var builtins = map[string]func() Theme{
	"github-dark":  GitHubDark,
	"github-light": GitHubLight,
}

// Named returns a built-in theme by name.
func Named(name string) (Theme, error) {
	fn, ok := builtins[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme: %q (built-ins: github-dark, github-light)", name)
	}
	return fn(), nil
}

// Load reads a TOML theme file. Fields absent from the file keep their
// github-dark defaults, so a theme file only needs to name what it
// changes. The result is validated before being returned.
func Load(filename string) (Theme, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %s: %w", filename, err)
	}

	t := GitHubDark()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", filename, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", filename, err)
	}
	return t, nil
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks colors, geometry, and traversal mode.
func (t Theme) Validate() error {
	if len(t.Palette) != PaletteSize {
		return fmt.Errorf("palette must have %d entries, got %d", PaletteSize, len(t.Palette))
	}
	colors := append([]string{t.Background, t.Text, t.Muted, t.Dot, t.Chomper}, t.Palette...)
	for _, c := range colors {
		if !colorPattern.MatchString(c) {
			return fmt.Errorf("invalid color: %q", c)
		}
	}
	if t.CellSize <= 0 || t.CellGap < 0 || t.Margin < 0 || t.CellRadius < 0 {
		return fmt.Errorf("cell geometry must be non-negative with cell_size > 0")
	}
	if t.StepSeconds <= 0 {
		return fmt.Errorf("step_seconds must be positive, got %v", t.StepSeconds)
	}
	if _, err := path.ParseMode(t.Traversal); err != nil {
		return err
	}
	return nil
}

// Step returns the per-cell animation duration.
func (t Theme) Step() time.Duration {
	return time.Duration(t.StepSeconds * float64(time.Second))
}

// Geometry returns the cell metrics for the path planner.
func (t Theme) Geometry() path.Geometry {
	return path.Geometry{CellSize: t.CellSize, CellGap: t.CellGap, Margin: t.Margin}
}

// Mode returns the traversal mode. Validate catches bad values, so this
// falls back to horizontal rather than returning an error.
func (t Theme) Mode() path.Mode {
	m, err := path.ParseMode(t.Traversal)
	if err != nil {
		return path.Horizontal
	}
	return m
}

// Color returns the palette entry for an intensity level, clamped to
// the valid range.
func (t Theme) Color(level int) string {
	if level < 0 {
		level = 0
	}
	if level >= len(t.Palette) {
		level = len(t.Palette) - 1
	}
	return t.Palette[level]
}
