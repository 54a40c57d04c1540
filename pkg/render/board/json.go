package board

import (
	"encoding/json"
	"fmt"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/grid"
	"github.com/pacgrid/pacgrid/pkg/path"
)

// Layout is the JSON form of a computed board: the grid extent, the
// traversal, and the derived timing. It carries everything a downstream
// tool needs to re-create the animation without re-fetching data.
type Layout struct {
	Weeks        int           `json:"weeks"`
	Populated    int           `json:"populated"`
	StepSeconds  float64       `json:"step_seconds"`
	TotalSeconds float64       `json:"total_seconds"`
	ReturnTrip   bool          `json:"return_trip,omitempty"`
	Points       []LayoutPoint `json:"points"`
}

// LayoutPoint is one traversal stop in the JSON layout.
type LayoutPoint struct {
	Seq   int          `json:"seq"`
	Row   int          `json:"row"`
	Col   int          `json:"col"`
	X     float64      `json:"x"`
	Y     float64      `json:"y"`
	Date  contrib.Date `json:"date"`
	Count int          `json:"count"`
	Level int          `json:"level"`
}

// RenderJSON renders the computed layout as indented JSON.
func RenderJSON(g grid.Grid, pts []path.Point, sched path.Schedule) ([]byte, error) {
	l := Layout{
		Weeks:        g.Weeks(),
		Populated:    g.Populated(),
		StepSeconds:  sched.Step.Seconds(),
		TotalSeconds: sched.Total().Seconds(),
		ReturnTrip:   sched.ReturnTrip,
		Points:       make([]LayoutPoint, len(pts)),
	}
	for i, p := range pts {
		l.Points[i] = LayoutPoint{
			Seq: p.Seq, Row: p.Row, Col: p.Col,
			X: p.X, Y: p.Y,
			Date: p.Record.Date, Count: p.Record.Count, Level: p.Record.Level,
		}
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(data, '\n'), nil
}
