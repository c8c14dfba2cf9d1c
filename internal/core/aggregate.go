package core

import (
	"math"
	"time"

	db "github.com/JonMunkholm/CandidateDB/internal/database"
)

// daysPerYear uses the Julian year so durations average out leap days.
const daysPerYear = 365.25

// ExperienceYears sums the duration of all experience entries in
// fractional years, rounded to one decimal. Entries without a start date
// are skipped. Entries without an end date are treated as ongoing through
// now, so the aggregate drifts upward over time by design.
func ExperienceYears(entries []db.InsertExperienceParams, now time.Time) float64 {
	total := 0.0

	for _, e := range entries {
		if !e.StartDate.Valid {
			continue
		}
		end := now
		if e.EndDate.Valid {
			end = e.EndDate.Time
		}
		total += end.Sub(e.StartDate.Time).Hours() / 24 / daysPerYear
	}

	return math.Round(total*10) / 10
}
