package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeCSV(t, "Full_Name,email,organization_1\nJane Smith,jane@example.com,Tech Corp\nBob Jones,,\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}

	if len(table.Columns) != 3 || table.Columns[0] != "full_name" {
		t.Errorf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}

	first := table.Rows[0]
	if first.Line() != 2 {
		t.Errorf("line = %d, want 2", first.Line())
	}
	if v := first.Value("full_name"); v != "Jane Smith" {
		t.Errorf("full_name = %q", v)
	}

	// Empty cell reads as absent.
	if _, ok := table.Rows[1].Get("email"); ok {
		t.Error("empty email should be absent")
	}
}

func TestLoadTable_SkipsEmptyRows(t *testing.T) {
	path := writeCSV(t, "full_name,email\nJane,j@x.com\n,\n  ,\nBob,b@x.com\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Errorf("rows = %d, want 2 (blank rows skipped)", len(table.Rows))
	}
}

func TestLoadTable_RaggedRows(t *testing.T) {
	// Short rows simply leave trailing columns absent.
	path := writeCSV(t, "full_name,email,headline\nJane\n")

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	row := table.Rows[0]
	if v := row.Value("full_name"); v != "Jane" {
		t.Errorf("full_name = %q", v)
	}
	if _, ok := row.Get("headline"); ok {
		t.Error("missing trailing column should be absent")
	}
}

func TestLoadTable_MissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want ErrSourceUnreadable", err)
	}
}

func TestLoadTable_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	_, err := LoadTable(path)
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want ErrSourceUnreadable", err)
	}
}

func TestLoadTable_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "full_name,email\n")
	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(table.Rows))
	}
}

func TestLoadTable_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.csv")
	if err := os.WriteFile(path, []byte("full_name\nJos\xe9\n"), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	// The bad byte is replaced, not dropped.
	if v := table.Rows[0].Value("full_name"); v != "Jos�" {
		t.Errorf("full_name = %q", v)
	}
}
