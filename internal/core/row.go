package core

import "strings"

// Row is one record from the source table, keyed by lowercased column
// name. Cells are cleaned at load time; empty and absent columns are
// indistinguishable on purpose, since the export writes "" for both.
type Row struct {
	line   int
	fields map[string]string
}

// NewRow builds a Row from already-cleaned field values. Empty values
// are dropped so Get reports them as absent.
func NewRow(line int, fields map[string]string) Row {
	kept := make(map[string]string, len(fields))
	for k, v := range fields {
		if v != "" {
			kept[strings.ToLower(k)] = v
		}
	}
	return Row{line: line, fields: kept}
}

// Line returns the 1-based line number of the row in the source file.
func (r Row) Line() int { return r.line }

// Get returns the value of a column and whether it is present and
// non-empty.
func (r Row) Get(col string) (string, bool) {
	v, ok := r.fields[col]
	return v, ok
}

// Value returns the value of a column, or "" when absent.
func (r Row) Value(col string) string {
	return r.fields[col]
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)

	return strings.TrimSpace(s)
}
