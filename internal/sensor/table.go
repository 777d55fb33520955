package sensor

import (
	"fmt"
	"math"
	"strings"
)

// Table is a row-and-column view of one or more concatenated CSV files.
// Empty cells are stored as NaN.
type Table struct {
	Header []string
	Rows   [][]float64

	index map[string]int
}

// NewTable creates an empty table with the given header
func NewTable(header []string) *Table {
	t := &Table{Header: make([]string, len(header))}
	for i, h := range header {
		t.Header[i] = normalizeHeader(h)
	}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		t.index[strings.ToLower(h)] = i
	}
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is a column (case-insensitive)
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[strings.ToLower(name)]
	return ok
}

// Column returns a copy of the named column
func (t *Table) Column(name string) ([]float64, error) {
	idx, ok := t.index[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("column %q not found (have %s)", name, strings.Join(t.Header, ", "))
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Append concatenates other below t. Both tables must share a header.
func (t *Table) Append(other *Table) error {
	if !sameHeader(t.Header, other.Header) {
		return fmt.Errorf("header mismatch: [%s] vs [%s]",
			strings.Join(t.Header, ", "), strings.Join(other.Header, ", "))
	}
	t.Rows = append(t.Rows, other.Rows...)
	return nil
}

func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func isMissing(v float64) bool {
	return math.IsNaN(v)
}
