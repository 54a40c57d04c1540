package board

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/grid"
	"github.com/pacgrid/pacgrid/pkg/path"
	"github.com/pacgrid/pacgrid/pkg/render/theme"
)

const fontFamily = `-apple-system, 'Segoe UI', Ubuntu, sans-serif`

// SVGOption configures the board renderer.
type SVGOption func(*renderer)

// WithTheme sets the visual theme. Defaults to github-dark.
func WithTheme(t theme.Theme) SVGOption { return func(r *renderer) { r.theme = t } }

// WithStats supplies the aggregate numbers for the score line.
func WithStats(s contrib.Stats) SVGOption { return func(r *renderer) { r.stats = s } }

// WithTitle overrides the document title.
func WithTitle(title string) SVGOption { return func(r *renderer) { r.title = title } }

// WithDocumentID overrides the generated element-ID prefix. Useful for
// deterministic output; the default is unique per document so several
// boards can be inlined into one page without ID collisions.
func WithDocumentID(id string) SVGOption { return func(r *renderer) { r.docID = id } }

// NewDocumentID generates a fresh element-ID prefix.
func NewDocumentID() string {
	return "pg-" + uuid.NewString()[:8]
}

type renderer struct {
	theme theme.Theme
	stats contrib.Stats
	title string
	docID string
}

// RenderSVG renders the full animated board for a grid and its planned
// path. A grid with no populated cells produces the fixed placeholder
// document instead of the full layout.
func RenderSVG(g grid.Grid, pts []path.Point, sched path.Schedule, opts ...SVGOption) []byte {
	r := renderer{theme: theme.GitHubDark(), title: "Contributions"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.docID == "" {
		r.docID = NewDocumentID()
	}

	if len(pts) == 0 {
		return renderPlaceholder(r.theme)
	}

	width, height := r.frame(g)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s" font-family="%s">`+"\n",
		num(width), num(height), num(width), num(height), fontFamily)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)

	r.writeHeader(&buf, width)
	r.writeMonths(&buf, g)
	r.writeWeekdays(&buf)
	r.writeCells(&buf, g)
	r.writeDots(&buf, pts, sched)
	r.writeChomper(&buf, pts, sched)
	r.writeLegend(&buf, width, height)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame computes the document dimensions from the grid extent.
func (r *renderer) frame(g grid.Grid) (width, height float64) {
	t := r.theme
	step := t.CellSize + t.CellGap
	gridW := float64(g.Weeks())*step - t.CellGap
	gridH := float64(grid.Rows)*step - t.CellGap
	return gridW + 2*t.Margin, gridH + 2*t.Margin
}

// Placeholder dimensions for the no-data document.
const (
	placeholderW = 480
	placeholderH = 120
)

// renderPlaceholder emits the fixed document for an empty grid. It has
// no animation and no per-document IDs, so output is stable.
func renderPlaceholder(t theme.Theme) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" font-family="%s">`+"\n",
		placeholderW, placeholderH, placeholderW, placeholderH, fontFamily)
	buf.WriteString("  <title>Contributions</title>\n")
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" rx="6" fill="%s"/>`+"\n", t.Background)
	fmt.Fprintf(&buf, `  <text x="%d" y="%d" text-anchor="middle" font-size="14" fill="%s">No contributions yet</text>`+"\n",
		placeholderW/2, placeholderH/2+5, t.Muted)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// num formats a coordinate with up to two decimals, trailing zeros trimmed.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
