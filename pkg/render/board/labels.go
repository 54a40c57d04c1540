package board

import (
	"bytes"
	"fmt"

	"github.com/pacgrid/pacgrid/pkg/grid"
)

// Weekday rows that get an axis label, as the public calendar does.
var weekdayLabels = map[int]string{1: "Mon", 3: "Wed", 5: "Fri"}

// writeHeader emits the title on the left and the score on the right.
func (r *renderer) writeHeader(buf *bytes.Buffer, width float64) {
	t := r.theme
	y := t.Margin - 26

	title := r.title
	if yr := r.stats.YearRange(); yr != "" {
		title += " · " + yr
	}
	fmt.Fprintf(buf, `  <text x="%s" y="%s" font-size="14" font-weight="600" fill="%s">%s</text>`+"\n",
		num(t.Margin), num(y), t.Text, escapeXML(title))
	fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="end" font-size="12" fill="%s">Score: %d</text>`+"\n",
		num(width-t.Margin), num(y), t.Muted, r.stats.Total)
}

// writeMonths emits a label above each column that starts a new month.
func (r *renderer) writeMonths(buf *bytes.Buffer, g grid.Grid) {
	t := r.theme
	step := t.CellSize + t.CellGap
	y := t.Margin - 7

	for col, m := range g.MonthStarts() {
		if m == 0 {
			continue
		}
		x := t.Margin + float64(col)*step
		fmt.Fprintf(buf, `  <text x="%s" y="%s" font-size="10" fill="%s">%s</text>`+"\n",
			num(x), num(y), t.Muted, m.String()[:3])
	}
}

// writeWeekdays emits the Mon/Wed/Fri row labels left of the grid.
func (r *renderer) writeWeekdays(buf *bytes.Buffer) {
	t := r.theme
	step := t.CellSize + t.CellGap
	x := t.Margin - 6

	for row := 0; row < grid.Rows; row++ {
		label, ok := weekdayLabels[row]
		if !ok {
			continue
		}
		y := t.Margin + float64(row)*step + t.CellSize/2 + 3
		fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="end" font-size="9" fill="%s">%s</text>`+"\n",
			num(x), num(y), t.Muted, label)
	}
}

// writeLegend emits the Less → More intensity swatches bottom-right.
func (r *renderer) writeLegend(buf *bytes.Buffer, width, height float64) {
	t := r.theme
	size := t.CellSize
	gap := t.CellGap
	y := height - t.Margin + 12

	x := width - t.Margin - 5*(size+gap)
	fmt.Fprintf(buf, `  <text x="%s" y="%s" text-anchor="end" font-size="9" fill="%s">Less</text>`+"\n",
		num(x-6), num(y+size-3), t.Muted)
	for level := 0; level < len(t.Palette); level++ {
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s"/>`+"\n",
			num(x), num(y), num(size), num(size), num(t.CellRadius), t.Color(level))
		x += size + gap
	}
	fmt.Fprintf(buf, `  <text x="%s" y="%s" font-size="9" fill="%s">More</text>`+"\n",
		num(x+2), num(y+size-3), t.Muted)
}
