package core

// PreviewColumns is how many header columns a dry-run preview shows.
var PreviewColumns = 10

// previewFields are the identifying columns sampled from the first row.
var previewFields = []string{"full_name", "email", "current_company", "location_name"}

// TablePreview summarizes a loaded table for dry-run output.
type TablePreview struct {
	RowCount int
	Columns  []string          // first PreviewColumns header names
	Sample   map[string]string // identifying fields from the first row
}

// BuildPreview inspects a loaded table without writing anything.
func BuildPreview(t *Table) TablePreview {
	p := TablePreview{
		RowCount: len(t.Rows),
		Sample:   make(map[string]string),
	}

	n := PreviewColumns
	if len(t.Columns) < n {
		n = len(t.Columns)
	}
	p.Columns = append(p.Columns, t.Columns[:n]...)

	if len(t.Rows) > 0 {
		first := t.Rows[0]
		for _, field := range previewFields {
			if v, ok := first.Get(field); ok {
				p.Sample[field] = v
			}
		}
	}

	return p
}
