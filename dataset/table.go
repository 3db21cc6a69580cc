package dataset

import (
	"strings"

	"github.com/tsawler/sticker/schema"
)

// Table is a loaded dataset: a header row plus data rows, all values
// already coerced to strings. Rows may be ragged; access past a row's end
// yields the empty string.
type Table struct {
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Head returns a copy of the first n data rows, for previewing a dataset
// before generating. Fewer rows are returned if the table is smaller.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	head := make([][]string, n)
	for i := 0; i < n; i++ {
		head[i] = append([]string(nil), t.Rows[i]...)
	}
	return head
}

// Record is one row of the dataset keyed by schema field. Unresolved and
// empty columns are both represented as the empty string.
type Record map[schema.Field]string

// Get returns the record's value for a field, or "" if absent.
func (r Record) Get(f schema.Field) string {
	return r[f]
}

// Record extracts the i-th data row as a Record using the resolved column
// map. Values are trimmed; columns the map does not bind are left empty.
func (t *Table) Record(i int, cm schema.ColumnMap) Record {
	rec := make(Record, len(t.Headers))
	if i < 0 || i >= len(t.Rows) {
		return rec
	}
	row := t.Rows[i]

	// Column name -> index of first occurrence.
	colIndex := make(map[string]int, len(t.Headers))
	for j, h := range t.Headers {
		if _, seen := colIndex[h]; !seen {
			colIndex[h] = j
		}
	}

	for _, f := range schema.Fields() {
		col, ok := cm.Column(f)
		if !ok {
			continue
		}
		j, ok := colIndex[col]
		if !ok || j >= len(row) {
			continue
		}
		rec[f] = strings.TrimSpace(row[j])
	}
	return rec
}

// Records extracts every data row in order.
func (t *Table) Records(cm schema.ColumnMap) []Record {
	records := make([]Record, len(t.Rows))
	for i := range t.Rows {
		records[i] = t.Record(i, cm)
	}
	return records
}
