package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
)

// Data sources recorded in exported datasets.
const (
	SourceGitHub = "github"
	SourceMock   = "mock"
)

// Dataset is a contribution calendar together with its provenance.
type Dataset struct {
	Username  string           `json:"username"`
	Source    string           `json:"source"`
	FetchedAt time.Time        `json:"fetched_at"`
	Records   []contrib.Record `json:"records"`
}

// NewDataset builds a dataset stamped with the current time.
func NewDataset(username, source string, records []contrib.Record) *Dataset {
	return &Dataset{
		Username:  username,
		Source:    source,
		FetchedAt: time.Now().UTC().Truncate(time.Second),
		Records:   records,
	}
}

// WriteJSON encodes the dataset as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the dataset to a JSON file at path, creating parent
// directories as needed.
func ExportJSON(d *Dataset, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// WriteFile writes rendered document bytes to path, creating parent
// directories as needed. An existing file is overwritten.
func WriteFile(path string, data []byte) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
