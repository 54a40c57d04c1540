// Package path plans the serpentine traversal of the contribution grid
// and derives the animation timing that choreographs the eating effect.
//
// The planner visits every populated grid cell exactly once. In the
// horizontal mode, even rows are walked left to right and odd rows right
// to left; the vertical mode alternates direction per column instead.
// Either way the traversal is deterministic: the same grid always yields
// the same point sequence.
package path

import (
	"fmt"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/grid"
)

// Mode selects the traversal direction scheme.
type Mode int

const (
	// Horizontal walks rows top to bottom, alternating column direction.
	Horizontal Mode = iota

	// Vertical walks columns left to right, alternating row direction.
	Vertical
)

// ParseMode maps the config strings "horizontal" and "vertical".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return 0, fmt.Errorf("unknown traversal mode: %q", s)
	}
}

// Geometry holds the cell metrics used to place points in pixel space.
// All values are in SVG user units.
type Geometry struct {
	CellSize float64
	CellGap  float64
	Margin   float64
}

// Center returns the pixel center of the cell at (row, col).
func (g Geometry) Center(row, col int) (x, y float64) {
	step := g.CellSize + g.CellGap
	x = g.Margin + float64(col)*step + g.CellSize/2
	y = g.Margin + float64(row)*step + g.CellSize/2
	return x, y
}

// Point is one stop on the traversal: the pixel center of a populated
// cell, its grid position, the record that lives there, and its
// sequence index.
type Point struct {
	X, Y     float64
	Row, Col int
	Record   contrib.Record
	Seq      int
}

// Plan computes the ordered traversal of all populated cells.
func Plan(g grid.Grid, geom Geometry, mode Mode) []Point {
	var pts []Point

	visit := func(row, col int) {
		rec, ok := g.At(row, col)
		if !ok {
			return
		}
		x, y := geom.Center(row, col)
		pts = append(pts, Point{
			X: x, Y: y,
			Row: row, Col: col,
			Record: rec,
			Seq:    len(pts),
		})
	}

	switch mode {
	case Vertical:
		for col := 0; col < g.Weeks(); col++ {
			if col%2 == 0 {
				for row := 0; row < grid.Rows; row++ {
					visit(row, col)
				}
			} else {
				for row := grid.Rows - 1; row >= 0; row-- {
					visit(row, col)
				}
			}
		}
	default:
		for row := 0; row < grid.Rows; row++ {
			if row%2 == 0 {
				for col := 0; col < g.Weeks(); col++ {
					visit(row, col)
				}
			} else {
				for col := g.Weeks() - 1; col >= 0; col-- {
					visit(row, col)
				}
			}
		}
	}
	return pts
}
