package contrib

import "strconv"

// Stats holds the aggregate numbers shown on the rendered board.
type Stats struct {
	// Total is the sum of all contribution counts.
	Total int

	// ActiveDays is the number of days with at least one contribution.
	ActiveDays int

	// FirstYear and LastYear bound the date range of the records.
	// Both are zero when there are no records.
	FirstYear int
	LastYear  int

	// LongestStreak is the longest run of consecutive active days.
	LongestStreak int
}

// YearRange formats the covered years as "2024" or "2023–2025".
func (s Stats) YearRange() string {
	if s.FirstYear == 0 {
		return ""
	}
	if s.FirstYear == s.LastYear {
		return strconv.Itoa(s.FirstYear)
	}
	return strconv.Itoa(s.FirstYear) + "–" + strconv.Itoa(s.LastYear)
}

// Summarize computes aggregate statistics over a set of records.
// The input does not need to be sorted.
func Summarize(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	SortByDate(sorted)

	s := Stats{
		FirstYear: sorted[0].Date.Year(),
		LastYear:  sorted[len(sorted)-1].Date.Year(),
	}

	streak := 0
	var prev Date
	for _, r := range sorted {
		s.Total += r.Count
		if r.Count == 0 {
			continue
		}
		s.ActiveDays++
		if !prev.IsZero() && prev.AddDays(1).Equal(r.Date.Time) {
			streak++
		} else {
			streak = 1
		}
		if streak > s.LongestStreak {
			s.LongestStreak = streak
		}
		prev = r.Date
	}
	return s
}
