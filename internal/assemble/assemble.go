// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble accumulates parsed records into the rectangular
// output table and writes it as CSV.
package assemble

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// Table accumulates records in encounter order. One Table is owned by
// one pipeline invocation; there is no process-wide state.
type Table struct {
	rows    [][]string
	sources []types.Record
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// Append adds one record to the table, verifying that it carries
// exactly the schema field set. A violation is an internal defect of
// the field parser, never a data condition, so it is an error that
// aborts the run rather than emitting a malformed table.
func (t *Table) Append(r types.Record) error {
	row, ok := r.Row()
	if !ok {
		return fmt.Errorf("record %d of %s violates the field schema: got %d fields, want %d",
			r.Index, r.SourcePath, len(r.Fields), len(types.Schema))
	}
	t.rows = append(t.rows, row)
	t.sources = append(t.sources, r)
	return nil
}

// Len returns the number of appended records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Records returns the appended records in encounter order.
func (t *Table) Records() []types.Record {
	return t.sources
}

// WriteCSV writes the header row and all data rows to w, UTF-8
// encoded. Missing fields render as empty cells. Row order matches
// append order: input file order, then intra-file record order.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.Schema); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, truncating any existing file.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
