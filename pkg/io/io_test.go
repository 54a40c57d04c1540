package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/errors"
)

func sampleDataset() *Dataset {
	return &Dataset{
		Username:  "octocat",
		Source:    SourceGitHub,
		FetchedAt: time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
		Records: []contrib.Record{
			{Date: contrib.NewDate(2025, time.August, 24), Count: 2, Level: 1},
			{Date: contrib.NewDate(2025, time.August, 25), Count: 12, Level: 4},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleDataset(), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if got.Username != "octocat" || got.Source != SourceGitHub {
		t.Errorf("provenance = %s/%s", got.Username, got.Source)
	}
	if len(got.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(got.Records))
	}
	if got.Records[1].Count != 12 || got.Records[1].Level != 4 {
		t.Errorf("second record = %+v", got.Records[1])
	}
}

func TestReadJSONSortsRecords(t *testing.T) {
	input := `{
		"username": "octocat",
		"source": "mock",
		"records": [
			{"date": "2025-08-25", "count": 1, "level": 1},
			{"date": "2025-08-20", "count": 3, "level": 2}
		]
	}`

	d, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if d.Records[0].Date.String() != "2025-08-20" {
		t.Errorf("first record date = %s, want 2025-08-20", d.Records[0].Date)
	}
}

func TestReadJSONValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"records": [`},
		{"level too high", `{"records": [{"date": "2025-08-20", "count": 1, "level": 5}]}`},
		{"negative level", `{"records": [{"date": "2025-08-20", "count": 1, "level": -1}]}`},
		{"negative count", `{"records": [{"date": "2025-08-20", "count": -3, "level": 1}]}`},
		{"bad date", `{"records": [{"date": "someday", "count": 1, "level": 1}]}`},
		{"duplicate date", `{"records": [
			{"date": "2025-08-20", "count": 1, "level": 1},
			{"date": "2025-08-20", "count": 2, "level": 1}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "data.json")

	if err := ExportJSON(sampleDataset(), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	d, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if d.Username != "octocat" {
		t.Errorf("username = %s", d.Username)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist", "out.svg")

	if err := WriteFile(path, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := WriteFile(path, []byte("<svg>v2</svg>")); err != nil {
		t.Fatalf("WriteFile() overwrite error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg>v2</svg>" {
		t.Errorf("content = %q, want overwritten value", data)
	}
}
