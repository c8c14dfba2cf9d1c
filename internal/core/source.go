package core

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// MaxFileSize is the maximum allowed CSV file size (100MB).
var MaxFileSize int64 = 100 * 1024 * 1024

// Table is the fully loaded input: the header columns in file order and
// one Row per non-empty data record.
type Table struct {
	Columns []string
	Rows    []Row
}

// LoadTable reads the whole CSV into memory. The first record is the
// header; every later record becomes a Row keyed by the cleaned,
// lowercased header names. Any failure to produce a table is reported
// as ErrSourceUnreadable.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	if int64(len(data)) > MaxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %dMB limit", ErrSourceUnreadable, MaxFileSize/(1024*1024))
	}

	data = sanitizeUTF8(data)

	records, err := parseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse csv: %v", ErrSourceUnreadable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrSourceUnreadable)
	}

	header := records[0]
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.ToLower(CleanCell(h))
	}

	var rows []Row
	for i, record := range records[1:] {
		if isEmptyRow(record) {
			continue
		}
		fields := make(map[string]string, len(columns))
		for j, col := range columns {
			if col == "" || j >= len(record) {
				continue
			}
			fields[col] = CleanCell(record[j])
		}
		// Line numbers are 1-indexed and account for the header.
		rows = append(rows, NewRow(i+2, fields))
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// sanitizeUTF8 replaces invalid byte sequences so the csv reader never
// chokes on exports with mixed encodings.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('\uFFFD')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
