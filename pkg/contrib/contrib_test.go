package contrib

import (
	"encoding/json"
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"zero", 0, LevelNone},
		{"negative clamps to none", -3, LevelNone},
		{"one", 1, LevelFirst},
		{"two", 2, LevelFirst},
		{"three", 3, LevelSecond},
		{"five", 5, LevelSecond},
		{"six", 6, LevelThird},
		{"nine", 9, LevelThird},
		{"ten", 10, LevelFourth},
		{"spike", 100, LevelFourth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelFor(tt.count); got != tt.want {
				t.Errorf("LevelFor(%d) = %d, want %d", tt.count, got, tt.want)
			}
		})
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 9)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2025-03-09"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2025-03-09"`)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "not-a-date", "2025/01/02"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error", s)
		}
	}
}

func TestSortByDate(t *testing.T) {
	records := []Record{
		{Date: NewDate(2025, time.June, 3)},
		{Date: NewDate(2025, time.January, 1)},
		{Date: NewDate(2025, time.March, 15)},
	}
	SortByDate(records)

	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date.Time) {
			t.Fatalf("records not sorted at index %d: %s < %s", i, records[i].Date, records[i-1].Date)
		}
	}
}

func TestMockDeterminism(t *testing.T) {
	opts := MockOptions{Seed: 42, Days: 90, End: NewDate(2025, time.August, 30)}

	a := Mock(opts)
	b := Mock(opts)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("records differ at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMockSpan(t *testing.T) {
	end := NewDate(2025, time.August, 30)
	records := Mock(MockOptions{Seed: 7, Days: 14, End: end})

	if len(records) != 14 {
		t.Fatalf("got %d records, want 14", len(records))
	}
	if !records[len(records)-1].Date.Equal(end.Time) {
		t.Errorf("last record = %s, want %s", records[len(records)-1].Date, end)
	}
	if want := end.AddDays(-13); !records[0].Date.Equal(want.Time) {
		t.Errorf("first record = %s, want %s", records[0].Date, want)
	}
	for i, r := range records {
		if r.Level != LevelFor(r.Count) {
			t.Errorf("record %d: level %d does not match count %d", i, r.Level, r.Count)
		}
	}
}

func TestMockDifferentSeeds(t *testing.T) {
	end := NewDate(2025, time.August, 30)
	a := Mock(MockOptions{Seed: 1, Days: 180, End: end})
	b := Mock(MockOptions{Seed: 2, Days: 180, End: end})

	same := true
	for i := range a {
		if a[i].Count != b[i].Count {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical counts")
	}
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Date: NewDate(2024, time.December, 30), Count: 2, Level: 1},
		{Date: NewDate(2024, time.December, 31), Count: 4, Level: 2},
		{Date: NewDate(2025, time.January, 1), Count: 1, Level: 1},
		{Date: NewDate(2025, time.January, 2), Count: 0, Level: 0},
		{Date: NewDate(2025, time.January, 5), Count: 12, Level: 4},
	}

	s := Summarize(records)

	if s.Total != 19 {
		t.Errorf("Total = %d, want 19", s.Total)
	}
	if s.ActiveDays != 4 {
		t.Errorf("ActiveDays = %d, want 4", s.ActiveDays)
	}
	if s.FirstYear != 2024 || s.LastYear != 2025 {
		t.Errorf("years = %d-%d, want 2024-2025", s.FirstYear, s.LastYear)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", s.LongestStreak)
	}
	if got, want := s.YearRange(), "2024–2025"; got != want {
		t.Errorf("YearRange() = %q, want %q", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero stats", s)
	}
	if s.YearRange() != "" {
		t.Errorf("YearRange() = %q, want empty", s.YearRange())
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2025-08-17", "2025-08-17"}, // Sunday maps to itself
		{"2025-08-20", "2025-08-17"}, // Wednesday
		{"2025-08-23", "2025-08-17"}, // Saturday
		{"2025-08-24", "2025-08-24"}, // next Sunday
		{"2026-01-01", "2025-12-28"}, // across a year boundary
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.date, err)
		}
		if got := d.WeekStart().String(); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}
