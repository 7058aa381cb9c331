// internal/tabular/format.go
package tabular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ParseFormat accepts "csv" or "xlsx" in any case; "" means csv.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported format %q", value)
	}
}

// FormatFromFilename picks xlsx for .xlsx files and csv for everything else.
func FormatFromFilename(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return ContentTypeXLSX
	}
	return ContentTypeCSV
}

func (f Format) Extension() string {
	return "." + string(f)
}

// ReadFile parses every row of the file at path.
func ReadFile(path string, format Format) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	switch format {
	case FormatXLSX:
		reader, err := NewXLSXReader(file)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return ReadAll(reader)
	default:
		return ReadAll(NewCSVReader(file))
	}
}
