// internal/tabular/xlsx.go
package tabular

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads header-keyed rows from the first worksheet of a workbook.
type XLSXReader struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
}

func NewXLSXReader(r io.Reader) (*XLSXReader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, errors.New("workbook has no worksheets")
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read worksheet %s: %w", sheets[0], err)
	}

	return &XLSXReader{file: f, rows: rows}, nil
}

func (r *XLSXReader) Next() (Row, error) {
	for r.rows.Next() {
		cells, err := r.rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read worksheet row: %w", err)
		}
		if isBlank(cells) {
			continue
		}
		if r.header == nil {
			r.header = normalizeHeader(cells)
			continue
		}
		return buildRow(r.header, cells), nil
	}
	if err := r.rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate worksheet: %w", err)
	}
	return nil, io.EOF
}

func (r *XLSXReader) Close() error {
	rowsErr := r.rows.Close()
	if err := r.file.Close(); err != nil {
		return err
	}
	return rowsErr
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// EncodeXLSX builds a single-sheet workbook with a header row.
func EncodeXLSX(sheet string, header []string, records [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, column := range header {
		headerRow[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(header) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		f.SetCellStyle(sheet, "A1", last, style)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		record := record
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}
