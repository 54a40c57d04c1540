package contrib

import (
	"math/rand"
	"time"
)

// DefaultMockDays is the span generated when MockOptions.Days is zero.
const DefaultMockDays = 365

// MockOptions configures the synthetic contribution generator.
type MockOptions struct {
	// Seed drives the random source. The same seed, span, and end date
	// always produce the same records.
	Seed int64

	// Days is the number of calendar days to generate, ending at End.
	// Zero means DefaultMockDays.
	Days int

	// End is the most recent day in the span. The zero value means today.
	End Date
}

// Mock generates synthetic daily contribution records.
//
// The shape is meant to look like a real calendar: weekdays are more
// likely to be active than weekends, and counts are skewed toward small
// values with occasional spikes. Levels are derived from counts via
// [LevelFor]. Records are returned in chronological order, one per day,
// including zero-count days.
func Mock(opts MockOptions) []Record {
	days := opts.Days
	if days <= 0 {
		days = DefaultMockDays
	}
	end := opts.End
	if end.IsZero() {
		end = Today()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	records := make([]Record, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := end.AddDays(-i)
		count := mockCount(rng, day.Weekday())
		records = append(records, Record{
			Date:  day,
			Count: count,
			Level: LevelFor(count),
		})
	}
	return records
}

// mockCount samples a day's contribution count weighted by weekday.
func mockCount(rng *rand.Rand, wd time.Weekday) int {
	activeChance := 0.7
	if wd == time.Saturday || wd == time.Sunday {
		activeChance = 0.3
	}
	if rng.Float64() >= activeChance {
		return 0
	}

	// Mostly small days, a long tail of busy ones.
	switch r := rng.Float64(); {
	case r < 0.5:
		return 1 + rng.Intn(2) // 1-2
	case r < 0.8:
		return 3 + rng.Intn(3) // 3-5
	case r < 0.95:
		return 6 + rng.Intn(4) // 6-9
	default:
		return 10 + rng.Intn(15) // 10-24
	}
}
