// Package grid buckets daily contribution records into the 7×53
// day-of-week × week matrix used by the public contribution calendar.
//
// Rows are indexed Sunday=0 through Saturday=6 regardless of locale.
// Columns are calendar weeks in chronological order, keyed by each
// record's Sunday week start, and only the most recent [MaxWeeks]
// columns are retained.
package grid

import (
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
)

const (
	// Rows is the number of day-of-week rows.
	Rows = 7

	// MaxWeeks is the maximum number of week columns retained.
	MaxWeeks = 53
)

// Column is one calendar week: seven optional record slots, Sunday first.
type Column [Rows]*contrib.Record

// Grid is the 7×W calendar matrix. The zero value is an empty grid.
type Grid struct {
	cols []Column
}

// Build sorts records chronologically and buckets them into week columns.
//
// Each record lands in the slot matching its day of week, in the column
// for its calendar week (Sunday through Saturday). Gaps of any length
// are handled: a record opens a new column whenever its week start
// differs from the current column's, so sparse input never merges two
// calendar weeks. A trailing partial column is kept if any slot is
// occupied. Empty input yields an empty grid, not an error.
func Build(records []contrib.Record) Grid {
	sorted := make([]contrib.Record, len(records))
	copy(sorted, records)
	contrib.SortByDate(sorted)

	var g Grid
	var cur Column
	var curWeek contrib.Date
	open := false

	flush := func() {
		g.cols = append(g.cols, cur)
		cur = Column{}
		open = false
	}

	for i := range sorted {
		rec := sorted[i]
		week := rec.Date.WeekStart()

		if open && !week.Equal(curWeek.Time) {
			flush()
		}

		cur[int(rec.Date.Weekday())] = &sorted[i]
		curWeek = week
		open = true
	}
	if open {
		flush()
	}

	if len(g.cols) > MaxWeeks {
		g.cols = g.cols[len(g.cols)-MaxWeeks:]
	}
	return g
}

// Weeks returns the number of week columns.
func (g Grid) Weeks() int { return len(g.cols) }

// At returns the record at (row, col) and whether the slot is populated.
// Out-of-range positions report an empty slot.
func (g Grid) At(row, col int) (contrib.Record, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= len(g.cols) {
		return contrib.Record{}, false
	}
	if r := g.cols[col][row]; r != nil {
		return *r, true
	}
	return contrib.Record{}, false
}

// Populated counts the occupied slots.
func (g Grid) Populated() int {
	n := 0
	for _, col := range g.cols {
		for _, r := range col {
			if r != nil {
				n++
			}
		}
	}
	return n
}

// MonthStarts returns, per column, the month beginning in that column,
// or zero when the column continues the previous month. Used for the
// axis labels along the top of the board.
func (g Grid) MonthStarts() []time.Month {
	starts := make([]time.Month, len(g.cols))
	prev := time.Month(0)
	for c, col := range g.cols {
		for _, r := range col {
			if r == nil {
				continue
			}
			if m := r.Date.Month(); m != prev {
				starts[c] = m
				prev = m
			}
			break // first populated slot decides the column's month
		}
	}
	return starts
}
