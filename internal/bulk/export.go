// Package bulk drives CSV import and export of the projection tables.
//
// Export serializes the currently displayed table verbatim: one header
// row, one data row per entity, standard CSV quoting. Import reads the
// same shape back and creates entities row by row; a bad row is
// recorded and skipped, never aborting the rest of the batch. There is
// no rollback: a partially failed import leaves the rows that did
// succeed in place.
package bulk

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nvdberg/splithorizon/internal/projection"
)

// ExportFilename is the suggested default name for an export file,
// e.g. "SplitBrain_Export_2026-08-25.csv". Callers may override it.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("SplitBrain_Export_%s.csv", now.Format("2006-01-02"))
}

// Export writes the table as CSV: header row first, then the rows
// verbatim.
func Export(w io.Writer, table projection.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	if err := cw.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}
	return nil
}

// ExportFile writes the table to path as a single atomic file
// operation: the content lands in a temp file first and is renamed
// into place only when complete. Returns the destination path.
func ExportFile(path string, table projection.Table) (string, error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.csv")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Export(tmp, table); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("finalize export file: %w", err)
	}
	return path, nil
}
