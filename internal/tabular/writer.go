// internal/tabular/writer.go
package tabular

import "strings"

// QuoteField doubles embedded quotes and wraps the value in quotes when it
// contains a comma, a quote or a newline. Nothing else is escaped.
func QuoteField(value string) string {
	escaped := strings.ReplaceAll(value, `"`, `""`)
	if strings.ContainsAny(escaped, ",\"\n") {
		return `"` + escaped + `"`
	}
	return escaped
}

// EncodeCSV renders header and records as newline separated lines with no
// trailing newline.
func EncodeCSV(header []string, records [][]string) []byte {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, joinFields(header))
	for _, record := range records {
		lines = append(lines, joinFields(record))
	}
	return []byte(strings.Join(lines, "\n"))
}

func joinFields(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = QuoteField(field)
	}
	return strings.Join(quoted, ",")
}
