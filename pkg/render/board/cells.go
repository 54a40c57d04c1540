package board

import (
	"bytes"
	"fmt"

	"github.com/pacgrid/pacgrid/pkg/grid"
	"github.com/pacgrid/pacgrid/pkg/path"
)

// dotRadiusRatio sizes the edible dot relative to the cell.
const dotRadiusRatio = 0.18

// dotFadeDur is how long a dot takes to vanish once the chomper arrives.
const dotFadeDur = "0.2s"

// writeCells emits one rounded rectangle per populated grid slot.
func (r *renderer) writeCells(buf *bytes.Buffer, g grid.Grid) {
	t := r.theme
	step := t.CellSize + t.CellGap

	buf.WriteString("  <g>\n")
	for col := 0; col < g.Weeks(); col++ {
		for row := 0; row < grid.Rows; row++ {
			rec, ok := g.At(row, col)
			if !ok {
				continue
			}
			x := t.Margin + float64(col)*step
			y := t.Margin + float64(row)*step
			fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" data-date="%s" data-count="%d" data-level="%d"/>`+"\n",
				num(x), num(y), num(t.CellSize), num(t.CellSize), num(t.CellRadius),
				t.Color(rec.Level), rec.Date, rec.Count, rec.Level)
		}
	}
	buf.WriteString("  </g>\n")
}

// writeDots emits the edible dot for every active cell, each with its
// fade/shrink animation starting at the cell's schedule offset.
func (r *renderer) writeDots(buf *bytes.Buffer, pts []path.Point, sched path.Schedule) {
	t := r.theme
	radius := t.CellSize * dotRadiusRatio

	buf.WriteString("  <g>\n")
	for _, p := range pts {
		if p.Record.Level == 0 {
			continue
		}
		begin := path.Seconds(sched.StartFor(p.Seq))
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%s" fill="%s">`+"\n", num(p.X), num(p.Y), num(radius), t.Dot)
		fmt.Fprintf(buf, `      <animate attributeName="opacity" from="1" to="0" begin="%s" dur="%s" fill="freeze"/>`+"\n", begin, dotFadeDur)
		fmt.Fprintf(buf, `      <animate attributeName="r" from="%s" to="0" begin="%s" dur="%s" fill="freeze"/>`+"\n", num(radius), begin, dotFadeDur)
		buf.WriteString("    </circle>\n")
	}
	buf.WriteString("  </g>\n")
}
