package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/errors"
)

// ReadJSON decodes a dataset from r and validates it.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A record's level is outside [0, 4]
//   - A record's count is negative
//   - Two records share the same date
//
// Records are returned sorted chronologically regardless of input
// order. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[string]bool, len(d.Records))
	for _, rec := range d.Records {
		if rec.Level < contrib.LevelNone || rec.Level > contrib.LevelFourth {
			return nil, fmt.Errorf("record %s: level %d out of range", rec.Date, rec.Level)
		}
		if rec.Count < 0 {
			return nil, fmt.Errorf("record %s: negative count %d", rec.Date, rec.Count)
		}
		key := rec.Date.String()
		if seen[key] {
			return nil, fmt.Errorf("duplicate record for %s", rec.Date)
		}
		seen[key] = true
	}

	contrib.SortByDate(d.Records)
	return &d, nil
}

// ImportJSON reads a dataset file at path. It returns the same
// validation errors as [ReadJSON], wrapped with the file path.
func ImportJSON(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "contribution file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return d, nil
}
