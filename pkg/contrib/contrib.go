package contrib

import (
	"fmt"
	"sort"
	"time"
)

// Contribution intensity levels, matching the public calendar's quartile
// buckets.
const (
	LevelNone   = 0
	LevelFirst  = 1
	LevelSecond = 2
	LevelThird  = 3
	LevelFourth = 4
)

// dateLayout is the wire format for calendar days ("2006-01-02").
const dateLayout = "2006-01-02"

// Date is a calendar day without a time-of-day component.
// It marshals to and from the "YYYY-MM-DD" form used by the GitHub API
// and by the fetch/render JSON round trip.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given year, month, and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// WeekStart returns the Sunday beginning the calendar week containing d.
func (d Date) WeekStart() Date {
	return d.AddDays(-int(d.Weekday()))
}

// String returns the "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Record is a single day's contribution activity.
// Immutable once created; Level is always in [0, 4].
type Record struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
	Level int  `json:"level"`
}

// LevelFor buckets a raw contribution count into an intensity level.
// These thresholds mirror the quartiles the mock generator samples from;
// API records carry the level the server already assigned.
func LevelFor(count int) int {
	switch {
	case count <= 0:
		return LevelNone
	case count <= 2:
		return LevelFirst
	case count <= 5:
		return LevelSecond
	case count <= 9:
		return LevelThird
	default:
		return LevelFourth
	}
}

// SortByDate sorts records chronologically in place.
func SortByDate(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date.Time)
	})
}
