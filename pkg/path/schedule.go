package path

import (
	"strconv"
	"strings"
	"time"
)

// Schedule maps traversal sequence indices to animation start offsets.
// Every cell gets the same slice of time; the offset for a point is
// simply its index times the per-cell step. Never mutated after
// construction.
type Schedule struct {
	// Step is the time the animation spends on each cell.
	Step time.Duration

	// Points is the number of stops on the path.
	Points int

	// ReturnTrip doubles the loop: after the last cell the traversal
	// runs back to the start before repeating.
	ReturnTrip bool
}

// NewSchedule derives the schedule for a planned path.
func NewSchedule(points []Point, step time.Duration, returnTrip bool) Schedule {
	return Schedule{Step: step, Points: len(points), ReturnTrip: returnTrip}
}

// StartFor returns the start offset for the point with sequence index seq.
func (s Schedule) StartFor(seq int) time.Duration {
	return time.Duration(seq) * s.Step
}

// Total returns the full loop duration: points × step, doubled when a
// return trip is included.
func (s Schedule) Total() time.Duration {
	d := time.Duration(s.Points) * s.Step
	if s.ReturnTrip {
		d *= 2
	}
	return d
}

// Seconds formats a duration as an SMIL clock value, e.g. "3.25s".
// Millisecond precision, trailing zeros trimmed.
func Seconds(d time.Duration) string {
	s := strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s + "s"
}
