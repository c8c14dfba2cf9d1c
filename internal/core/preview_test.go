package core

import "testing"

func TestBuildPreview(t *testing.T) {
	table := &Table{
		Columns: []string{"id", "public_id", "member_id", "profile_url", "email", "full_name", "first_name", "last_name", "headline", "summary", "address", "skills"},
		Rows: []Row{
			NewRow(2, map[string]string{
				"full_name":       "Jane Smith",
				"email":           "jane@example.com",
				"current_company": "Tech Corp",
			}),
		},
	}

	p := BuildPreview(table)

	if p.RowCount != 1 {
		t.Errorf("RowCount = %d, want 1", p.RowCount)
	}
	if len(p.Columns) != PreviewColumns {
		t.Errorf("Columns = %d, want %d", len(p.Columns), PreviewColumns)
	}
	if p.Sample["full_name"] != "Jane Smith" {
		t.Errorf("sample full_name = %q", p.Sample["full_name"])
	}
	if _, ok := p.Sample["location_name"]; ok {
		t.Error("absent sample field should be omitted")
	}
}

func TestBuildPreview_EmptyTable(t *testing.T) {
	p := BuildPreview(&Table{Columns: []string{"full_name"}})
	if p.RowCount != 0 || len(p.Sample) != 0 {
		t.Errorf("preview = %+v", p)
	}
	if len(p.Columns) != 1 {
		t.Errorf("Columns = %v", p.Columns)
	}
}
