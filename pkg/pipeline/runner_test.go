package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
)

// fakeFetcher serves canned records and counts calls.
type fakeFetcher struct {
	records  []contrib.Record
	err      error
	calendar int
	years    int
}

func (f *fakeFetcher) FetchCalendar(ctx context.Context, username string, end contrib.Date, refresh bool) ([]contrib.Record, error) {
	f.calendar++
	return f.records, f.err
}

func (f *fakeFetcher) FetchYear(ctx context.Context, username string, year int, refresh bool) ([]contrib.Record, error) {
	f.years++
	return f.records, f.err
}

func (f *fakeFetcher) FetchAccountYears(ctx context.Context, username string) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []int{2024, 2025}, nil
}

func fixtureRecords() []contrib.Record {
	var records []contrib.Record
	start := contrib.NewDate(2025, time.August, 17)
	for i := 0; i < 14; i++ {
		count := i % 5
		records = append(records, contrib.Record{
			Date:  start.AddDays(i),
			Count: count,
			Level: contrib.LevelFor(count),
		})
	}
	return records
}

func TestExecute(t *testing.T) {
	fetcher := &fakeFetcher{records: fixtureRecords()}
	runner := NewRunner(fetcher, nil)

	result, err := runner.Execute(context.Background(), Options{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Source != SourceGitHub {
		t.Errorf("Source = %q, want github", result.Source)
	}
	if fetcher.calendar != 1 {
		t.Errorf("FetchCalendar called %d times, want 1", fetcher.calendar)
	}
	if result.Stats.Days != 14 {
		t.Errorf("Days = %d, want 14", result.Stats.Days)
	}
	if result.Stats.Weeks != 2 {
		t.Errorf("Weeks = %d, want 2", result.Stats.Weeks)
	}
	if result.Stats.PathLength != 14 {
		t.Errorf("PathLength = %d, want 14", result.Stats.PathLength)
	}

	svg, ok := result.Artifacts[TypeGrid]
	if !ok {
		t.Fatal("missing grid artifact")
	}
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("grid artifact does not look like SVG: %.40s", svg)
	}
}

func TestExecuteDegradesToMock(t *testing.T) {
	fetcher := &fakeFetcher{err: stderrors.New("api down")}
	runner := NewRunner(fetcher, nil)

	result, err := runner.Execute(context.Background(), Options{Username: "octocat"})
	if err != nil {
		t.Fatalf("Execute() should degrade, not fail: %v", err)
	}
	if result.Source != SourceMock {
		t.Errorf("Source = %q, want mock", result.Source)
	}
	if result.Stats.Days != contrib.DefaultMockDays {
		t.Errorf("Days = %d, want %d", result.Stats.Days, contrib.DefaultMockDays)
	}
}

func TestExecuteNilFetcher(t *testing.T) {
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Source != SourceMock {
		t.Errorf("Source = %q, want mock", result.Source)
	}
}

func TestExecuteMockFlagSkipsFetcher(t *testing.T) {
	fetcher := &fakeFetcher{records: fixtureRecords()}
	runner := NewRunner(fetcher, nil)

	result, err := runner.Execute(context.Background(), Options{Mock: true})
	if err != nil {
		t.Fatal(err)
	}
	if fetcher.calendar != 0 {
		t.Errorf("FetchCalendar called %d times, want 0", fetcher.calendar)
	}
	if result.Source != SourceMock {
		t.Errorf("Source = %q, want mock", result.Source)
	}
}

func TestExecuteMockDeterminism(t *testing.T) {
	runner := NewRunner(nil, nil)
	end := contrib.NewDate(2025, time.August, 31)

	opts := Options{Mock: true, Seed: 7, End: end, DocumentID: "pg-test"}
	a, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(a.Artifacts[TypeGrid], b.Artifacts[TypeGrid]) {
		t.Error("same seed and document ID should produce identical SVG")
	}
}

func TestExecutePreloadedRecords(t *testing.T) {
	fetcher := &fakeFetcher{err: stderrors.New("should not be called")}
	runner := NewRunner(fetcher, nil)

	result, err := runner.Execute(context.Background(), Options{
		Records: fixtureRecords(),
		Source:  SourceGitHub,
	})
	if err != nil {
		t.Fatal(err)
	}
	if fetcher.calendar != 0 {
		t.Error("fetcher should be bypassed for preloaded records")
	}
	if result.Stats.Days != 14 {
		t.Errorf("Days = %d, want 14", result.Stats.Days)
	}
}

func TestExecuteAllYears(t *testing.T) {
	fetcher := &fakeFetcher{records: fixtureRecords()}
	runner := NewRunner(fetcher, nil)

	_, err := runner.Execute(context.Background(), Options{Username: "octocat", AllYears: true})
	if err != nil {
		t.Fatal(err)
	}
	if fetcher.years != 2 {
		t.Errorf("FetchYear called %d times, want 2", fetcher.years)
	}
	if fetcher.calendar != 0 {
		t.Errorf("FetchCalendar called %d times, want 0", fetcher.calendar)
	}
}

func TestExecuteJSONFormat(t *testing.T) {
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{Mock: true, Format: FormatJSON})
	if err != nil {
		t.Fatal(err)
	}

	var layout map[string]any
	if err := json.Unmarshal(result.Artifacts[TypeGrid], &layout); err != nil {
		t.Fatalf("grid artifact is not JSON: %v", err)
	}
	if _, ok := layout["points"]; !ok {
		t.Error("layout JSON missing points")
	}
}

func TestExecuteBanner(t *testing.T) {
	runner := NewRunner(nil, nil)

	result, err := runner.Execute(context.Background(), Options{
		Mock:  true,
		Types: []string{TypeGrid, TypeBanner},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Artifacts) != 2 {
		t.Fatalf("got %d artifacts, want 2", len(result.Artifacts))
	}
	if !bytes.Contains(result.Artifacts[TypeBanner], []byte("pacgrid")) {
		t.Error("banner should type the command line")
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	runner := NewRunner(nil, nil)
	if _, err := runner.Execute(context.Background(), Options{Format: "png"}); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestBannerLines(t *testing.T) {
	tests := []struct {
		name  string
		stats contrib.Stats
		want  int
	}{
		{"empty", contrib.Stats{}, 2},
		{"no streak", contrib.Stats{Total: 5, ActiveDays: 3, FirstYear: 2025, LastYear: 2025, LongestStreak: 1}, 3},
		{"full", contrib.Stats{Total: 100, ActiveDays: 40, FirstYear: 2024, LastYear: 2025, LongestStreak: 9}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := bannerLines("octocat", tt.stats)
			if len(lines) != tt.want {
				t.Errorf("got %d lines %q, want %d", len(lines), lines, tt.want)
			}
			if lines[0] != "pacgrid octocat" {
				t.Errorf("first line = %q", lines[0])
			}
		})
	}
}
