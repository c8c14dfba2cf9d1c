package core

import (
	"testing"
	"time"

	db "github.com/JonMunkholm/CandidateDB/internal/database"
	"github.com/jackc/pgx/v5/pgtype"
)

func pgdate(y int, m time.Month, d int) pgtype.Date {
	return pgtype.Date{Time: date(y, m, d), Valid: true}
}

func TestExperienceYears(t *testing.T) {
	now := date(2024, time.June, 1)

	tests := []struct {
		name    string
		entries []db.InsertExperienceParams
		want    float64
	}{
		{
			name: "one year span",
			entries: []db.InsertExperienceParams{
				{StartDate: pgdate(2020, time.January, 1), EndDate: pgdate(2021, time.January, 1)},
			},
			want: 1.0,
		},
		{
			name: "eighteen months",
			entries: []db.InsertExperienceParams{
				{StartDate: pgdate(2020, time.January, 1), EndDate: pgdate(2021, time.July, 1)},
			},
			want: 1.5,
		},
		{
			name: "open ended runs to now",
			entries: []db.InsertExperienceParams{
				{StartDate: pgdate(2022, time.June, 1)},
			},
			want: 2.0,
		},
		{
			name: "missing start date skipped",
			entries: []db.InsertExperienceParams{
				{EndDate: pgdate(2021, time.January, 1)},
				{StartDate: pgdate(2020, time.January, 1), EndDate: pgdate(2021, time.January, 1)},
			},
			want: 1.0,
		},
		{
			name:    "no entries",
			entries: nil,
			want:    0.0,
		},
		{
			name: "sums across entries",
			entries: []db.InsertExperienceParams{
				{StartDate: pgdate(2018, time.January, 1), EndDate: pgdate(2020, time.January, 1)},
				{StartDate: pgdate(2020, time.January, 1), EndDate: pgdate(2021, time.January, 1)},
			},
			want: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExperienceYears(tt.entries, now)
			if got != tt.want {
				t.Errorf("ExperienceYears() = %v, want %v", got, tt.want)
			}
		})
	}
}
