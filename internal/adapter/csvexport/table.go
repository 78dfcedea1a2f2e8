package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
)

// Column is one named column of a Table.
type Column[T any] struct {
	Name string
	Cell func(T) string
}

// Table writes values of T as CSV records under a fixed header.
type Table[T any] struct {
	csv     *csv.Writer
	columns []Column[T]
	header  []string
	record  []string
	settings

	headerDone bool
	rows       int
}

// NewTable creates a Table over out. WithTokenName does not apply to tables.
func NewTable[T any](out io.Writer, columns []Column[T], opts ...Option) *Table[T] {
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.Name
	}

	t := &Table[T]{
		csv:     csv.NewWriter(out),
		columns: columns,
		header:  header,
		record:  make([]string, len(columns)),
	}
	for _, opt := range opts {
		opt(&t.settings)
	}
	return t
}

// Columns returns the header the table emits.
func (t *Table[T]) Columns() []string {
	return slices.Clone(t.header)
}

// Rows returns the number of rows written so far.
func (t *Table[T]) Rows() int {
	return t.rows
}

// WriteHeader writes the header unless it was already written.
func (t *Table[T]) WriteHeader() error {
	if t.headerDone {
		return nil
	}
	t.headerDone = true
	if err := t.csv.Write(t.header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

// Write writes one row, preceded by the header on the first call.
func (t *Table[T]) Write(v T) error {
	if err := t.WriteHeader(); err != nil {
		return err
	}

	for i, c := range t.columns {
		t.record[i] = c.Cell(v)
	}
	if err := t.csv.Write(t.record); err != nil {
		return fmt.Errorf("write row %d: %w", t.rows+1, err)
	}
	t.rows++

	if t.flushEvery > 0 && t.rows%t.flushEvery == 0 {
		return t.Flush()
	}
	return nil
}

// Flush writes buffered records to the underlying writer and then calls the
// flush hook, if any.
func (t *Table[T]) Flush() error {
	t.csv.Flush()
	if err := t.csv.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if t.flush != nil {
		return t.flush()
	}
	return nil
}
