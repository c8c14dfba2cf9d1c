package core

// convert.go provides type coercion from raw CSV cells to PostgreSQL types.
//
// Profile exports mix date conventions freely, so ParseDate tries a fixed
// list of layouts in priority order and falls back to scanning for a bare
// year. All To* functions return pgtype values with Valid=false for
// empty/invalid input, allowing the database to store NULLs.

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// dateLayouts are tried in order; the first match wins. Month/day/year is
// deliberately tried before day/month/year, so "01/02/2020" reads as
// January 2nd. The export carries both conventions with no marker, which
// makes such strings inherently ambiguous.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"2/1/2006",
	"2006/1/2",
	"1-2-2006",
	"2-1-2006",
	"Jan 2006",
	"January 2006",
	"2006",
	"1/2006",
	"2006/1",
}

// yearRegex finds a plausible 4-digit year inside free-form date text.
var yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// digitsRegex matches unsigned integer strings.
var digitsRegex = regexp.MustCompile(`^\d+$`)

// ParseDate converts a raw cell to pgtype.Date. It never fails: empty or
// unparseable input yields an invalid (NULL) date, with a warning logged
// for non-empty input that matched nothing.
func ParseDate(s string) pgtype.Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Date{Valid: false}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	// Fall back to the first plausible year, treated as January 1st.
	if year := yearRegex.FindString(s); year != "" {
		if t, err := time.Parse("2006", year); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	slog.Warn("could not parse date", "value", s)
	return pgtype.Date{Valid: false}
}

// ToPgText converts a string to pgtype.Text.
// Returns invalid if the string is empty or only whitespace.
func ToPgText(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// ToPgInt4 converts a counter cell to pgtype.Int4. Only plain digit
// strings count; anything else ("1,234", "500+", "") becomes NULL.
func ToPgInt4(s string) pgtype.Int4 {
	s = strings.TrimSpace(s)
	if !digitsRegex.MatchString(s) {
		return pgtype.Int4{Valid: false}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(n), Valid: true}
}

// ToPgFloat8 wraps a float in a valid pgtype.Float8.
func ToPgFloat8(f float64) pgtype.Float8 {
	return pgtype.Float8{Float64: f, Valid: true}
}

// ToPgTimestamp wraps a time in a valid pgtype.Timestamp.
func ToPgTimestamp(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t, Valid: true}
}
