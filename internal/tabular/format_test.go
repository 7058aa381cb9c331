package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, FormatXLSX, FormatFromFilename("stock.XLSX"))
	assert.Equal(t, FormatCSV, FormatFromFilename("stock.csv"))
	assert.Equal(t, FormatCSV, FormatFromFilename("stock"))
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, ".xlsx", FormatXLSX.Extension())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("name,stock\nWidget,3\n"), 0o600))
	rows, err := ReadFile(csvPath, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []Row{{"name": "Widget", "stock": "3"}}, rows)

	data, err := EncodeXLSX("Products", []string{"name", "stock"}, [][]interface{}{{"Gadget", 7}})
	require.NoError(t, err)
	xlsxPath := filepath.Join(dir, "products.xlsx")
	require.NoError(t, os.WriteFile(xlsxPath, data, 0o600))
	rows, err = ReadFile(xlsxPath, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, []Row{{"name": "Gadget", "stock": "7"}}, rows)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"), FormatCSV)
	assert.Error(t, err)
}
