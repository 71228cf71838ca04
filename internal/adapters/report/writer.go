// Package report persists resolution reports as flat JSON files.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/zerr"
)

// Writer implements ports.ReportWriter using a JSON file.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores the resolved module listing at the given path. Entries are
// sorted by realm then canonical path so repeated runs produce identical files.
func (w *Writer) Write(path string, entries []domain.ReportEntry) error {
	sorted := make([]domain.ReportEntry, len(entries))
	copy(sorted, entries)
	slices.SortFunc(sorted, func(a, b domain.ReportEntry) int {
		if a.Realm != b.Realm {
			if a.Realm < b.Realm {
				return -1
			}
			return 1
		}
		switch {
		case a.Path.String() < b.Path.String():
			return -1
		case a.Path.String() > b.Path.String():
			return 1
		default:
			return 0
		}
	})

	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	cleaned := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleaned), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", cleaned)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(cleaned, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", cleaned)
	}

	return nil
}
