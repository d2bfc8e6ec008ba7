// Package storage implements the flat-file record store backing every
// tabular data file of the clinic: CSV files with a header row, read into
// row maps and rewritten whole with an atomic temp-file replace.
package storage

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Row maps a header field name to its string value for one record.
type Row = map[string]string

// Load reads a CSV file whose first row names the fields and returns one
// Row per data row, in file order. A file that is missing, unreadable or
// malformed yields an empty slice with a logged warning: the caller keeps
// running with no data rather than refusing to start.
func Load(path string) []Row {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: could not open %s: %v. Returning empty list.", path, err)
		return []Row{}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.Printf("Warning: could not parse %s: %v. Returning empty list.", path, err)
		return []Row{}
	}
	if len(records) == 0 {
		return []Row{}
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Save rewrites path with the given rows. An empty rows slice is a no-op
// and leaves any existing file untouched. When fieldnames is empty the
// column set is derived from the first row's keys, sorted for a stable
// header. The rows are serialized to a sibling temp file which is then
// renamed over the destination, so the file on disk is always either the
// old complete version or the new complete version; on any failure the
// temp file is removed and the error is returned to the caller.
func Save(path string, rows []Row, fieldnames []string) error {
	if len(rows) == 0 {
		return nil
	}
	if len(fieldnames) == 0 {
		fieldnames = make([]string, 0, len(rows[0]))
		for name := range rows[0] {
			fieldnames = append(fieldnames, name)
		}
		sort.Strings(fieldnames)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", path)
		}
	}

	tmp := path + ".tmp"
	if err := writeFile(tmp, rows, fieldnames); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Printf("failed to remove temp file %s: %v", tmp, removeErr)
		}
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		if removeErr := os.Remove(tmp); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Printf("failed to remove temp file %s: %v", tmp, removeErr)
		}
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}

func writeFile(path string, rows []Row, fieldnames []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(fieldnames); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write header to %s", path)
	}
	record := make([]string, len(fieldnames))
	for _, row := range rows {
		for i, name := range fieldnames {
			record[i] = row[name]
		}
		if err := writer.Write(record); err != nil {
			f.Close()
			return errors.Wrapf(err, "failed to write row to %s", path)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to flush %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}
