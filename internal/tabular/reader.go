// internal/tabular/reader.go
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// Row maps a header column to the cell value of one record.
type Row map[string]string

// Get returns the cell for column, or "" when the row has no such cell.
func (r Row) Get(column string) string {
	return r[column]
}

// RowReader yields rows one at a time and returns io.EOF after the last one.
type RowReader interface {
	Next() (Row, error)
}

// ReadAll drains r into memory.
func ReadAll(r RowReader) ([]Row, error) {
	rows := []Row{}
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// CSVReader reads header-keyed rows from comma separated text. The first
// record is the header; shorter records leave trailing columns empty.
type CSVReader struct {
	reader *csv.Reader
	header []string
}

func NewCSVReader(r io.Reader) *CSVReader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return &CSVReader{reader: reader}
}

func (r *CSVReader) Next() (Row, error) {
	if r.header == nil {
		header, err := r.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("failed to read csv header: %w", err)
		}
		r.header = normalizeHeader(header)
	}

	record, err := r.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read csv record: %w", err)
	}
	return buildRow(r.header, record), nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	copy(out, header)
	if len(out) > 0 {
		out[0] = strings.TrimPrefix(out[0], utf8BOM)
	}
	return out
}

func buildRow(header, record []string) Row {
	row := make(Row, len(header))
	for i, column := range header {
		if i < len(record) {
			row[column] = record[i]
		} else {
			row[column] = ""
		}
	}
	return row
}
