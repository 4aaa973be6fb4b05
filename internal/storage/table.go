// internal/storage/table.go
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Row is one stored record keyed by schema field name, pre-decoding.
type Row map[string]string

// Table is a single CSV file holding same-schema rows. The first line is the
// header and its field order is fixed by the schema. All mutations rewrite the
// whole file; Append is the only incremental operation.
//
// There is no locking: the store assumes a single writer process. Two
// concurrent writers race with last-write-wins semantics.
type Table struct {
	path   string
	fields []string
}

func NewTable(path string, fields []string) *Table {
	return &Table{path: path, fields: fields}
}

func (t *Table) Path() string { return t.path }

func (t *Table) Fields() []string { return t.fields }

// ReadAll returns every row in file order. A missing file is created with a
// header-only body so later writes have a known schema. Fully blank rows are
// skipped. Read failures degrade to an empty table and are logged; the
// application keeps serving with whatever data it can get.
func (t *Table) ReadAll() []Row {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := t.vivify(); err != nil {
				logrus.WithError(err).WithField("table", t.path).Error("Failed to create table file")
			}
			return nil
		}
		logrus.WithError(err).WithField("table", t.path).Error("Failed to open table file")
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		logrus.WithError(err).WithField("table", t.path).Error("Failed to read table file")
		return nil
	}
	if len(records) == 0 {
		return nil
	}

	header := records[0]
	var rows []Row
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, field := range header {
			if i < len(rec) {
				row[field] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteAll replaces the file's entire content with header + rows, in the
// given order. Unlike reads, write failures are returned so callers can tell
// the client that persistence was lost.
func (t *Table) WriteAll(rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data folder: %w", err)
	}

	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("failed to open table %s for writing: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.fields); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", t.path, err)
	}
	for _, row := range rows {
		if err := w.Write(t.record(row)); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", t.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush table %s: %w", t.path, err)
	}
	return nil
}

// Append adds one row to the end of the file without rewriting prior rows.
// The file is vivified first so the header always precedes data.
func (t *Table) Append(row Row) error {
	if _, err := os.Stat(t.path); os.IsNotExist(err) {
		if err := t.vivify(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open table %s for append: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.record(row)); err != nil {
		return fmt.Errorf("failed to append row to %s: %w", t.path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush append to %s: %w", t.path, err)
	}
	return nil
}

// NextID computes the next free surrogate key: 1 for an empty table, else one
// past the highest id ever handed out. Ids are not assumed contiguous or
// sorted, and rows whose id does not parse are ignored. A deleted id is never
// reused, even when it was the table maximum: the high-water mark persisted
// next to the table file keeps NextID from descending.
func (t *Table) NextID() int {
	maxID := t.highWater()
	for _, row := range t.ReadAll() {
		id, err := strconv.Atoi(row["id"])
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}

	next := maxID + 1
	if err := t.setHighWater(next); err != nil {
		logrus.WithError(err).WithField("table", t.path).Warn("Failed to persist id high-water mark")
	}
	return next
}

func (t *Table) highWaterPath() string {
	return t.path + ".maxid"
}

func (t *Table) highWater() int {
	data, err := os.ReadFile(t.highWaterPath())
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

func (t *Table) setHighWater(n int) error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(t.highWaterPath(), []byte(strconv.Itoa(n)), 0o644)
}

func (t *Table) vivify() error {
	if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data folder: %w", err)
	}
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", t.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.fields); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", t.path, err)
	}
	w.Flush()
	return w.Error()
}

func (t *Table) record(row Row) []string {
	rec := make([]string, len(t.fields))
	for i, field := range t.fields {
		rec[i] = row[field]
	}
	return rec
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if v != "" {
			return false
		}
	}
	return true
}
