package core

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

// ----------------------------------------------------------------------------
// Delimited list extraction
// ----------------------------------------------------------------------------

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated",
			input: "JavaScript, React, Node.js, Python, SQL, Git",
			want:  []string{"JavaScript", "React", "Node.js", "Python", "SQL", "Git"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
		{
			name:  "mixed separators",
			input: "Go; Rust | Zig • Erlang",
			want:  []string{"Go", "Rust", "Zig", "Erlang"},
		},
		{
			name:  "single character tokens dropped",
			input: "C, C++, Go, R",
			want:  []string{"C++", "Go"},
		},
		{
			name:  "empty tokens dropped",
			input: "SQL,, ,Git",
			want:  []string{"SQL", "Git"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractSkills(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractSkills(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractSkills_Truncation(t *testing.T) {
	tokens := make([]string, 25)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("skill%02d", i)
	}

	got := ExtractSkills(strings.Join(tokens, ", "))
	if len(got) != maxSkills {
		t.Fatalf("got %d skills, want %d", len(got), maxSkills)
	}
	// Order-preserving: exactly the first 20
	for i, s := range got {
		if s != tokens[i] {
			t.Errorf("skill[%d] = %q, want %q", i, s, tokens[i])
		}
	}
}

func TestExtractLanguages_Truncation(t *testing.T) {
	got := ExtractLanguages("English • Spanish • French • German • Dutch • Italian • Polish • Czech • Greek • Danish • Swedish • Finnish")
	if len(got) != maxLanguages {
		t.Fatalf("got %d languages, want %d", len(got), maxLanguages)
	}
	if got[0] != "English" || got[9] != "Danish" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestExtractWebsites(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "url-ish tokens kept",
			input: "https://example.com; portfolio; blog.example.org",
			want:  []string{"https://example.com", "blog.example.org"},
		},
		{
			name:  "http without dot kept",
			input: "http://localhost",
			want:  []string{"http://localhost"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractWebsites(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractWebsites(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Repeating-group extraction
// ----------------------------------------------------------------------------

func TestExtractEducation(t *testing.T) {
	row := NewRow(2, map[string]string{
		"education_1":             "MIT",
		"education_degree_1":      "BSc",
		"education_fos_1":         "Computer Science",
		"education_start_1":       "2010-09-01",
		"education_end_1":         "2014-06-01",
		"education_description_1": "Thesis on distributed systems",
		// Slot 2 has details but no institution: must be dropped.
		"education_degree_2": "MSc",
		"education_start_2":  "2014-09-01",
		// Slot 3 is institution-only.
		"education_3": "Stanford",
	})

	got := ExtractEducation(row)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}

	first := got[0]
	if first.Institution.String != "MIT" {
		t.Errorf("institution = %q, want MIT", first.Institution.String)
	}
	if first.Degree.String != "BSc" {
		t.Errorf("degree = %q, want BSc", first.Degree.String)
	}
	if !first.StartDate.Valid || first.StartDate.Time != date(2010, time.September, 1) {
		t.Errorf("start date = %+v", first.StartDate)
	}

	second := got[1]
	if second.Institution.String != "Stanford" {
		t.Errorf("institution = %q, want Stanford", second.Institution.String)
	}
	if second.Degree.Valid || second.StartDate.Valid || second.Description.Valid {
		t.Errorf("institution-only slot should have NULL details: %+v", second)
	}
}

func TestExtractExperience_SingleSlot(t *testing.T) {
	row := NewRow(2, map[string]string{
		"organization_1":       "Tech Corp",
		"organization_title_1": "Engineer",
		"organization_start_1": "2020-01-01",
	})

	got := ExtractExperience(row)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].OrganizationName.String != "Tech Corp" {
		t.Errorf("name = %q", got[0].OrganizationName.String)
	}
	if got[0].EndDate.Valid {
		t.Error("open-ended entry should have NULL end date")
	}
}

func TestExtractExperience_Empty(t *testing.T) {
	row := NewRow(2, map[string]string{"full_name": "No Jobs"})
	if got := ExtractExperience(row); len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestExtractExperience_OrderAndDuplicates(t *testing.T) {
	fields := map[string]string{}
	for i := 1; i <= 10; i++ {
		fields[fmt.Sprintf("organization_%d", i)] = "Same Co"
	}
	row := NewRow(2, fields)

	got := ExtractExperience(row)
	if len(got) != 10 {
		t.Fatalf("got %d entries, want 10; duplicate slots must not be merged", len(got))
	}
}

func TestExtractSiteLinks_LabelsFollowCollectedOrder(t *testing.T) {
	// website_2 missing: website_3 still gets the "website_2" label.
	row := NewRow(2, map[string]string{
		"website_1": "https://a.example.com",
		"website_3": "https://c.example.com",
	})

	got := ExtractSiteLinks(row)
	if len(got) != 2 {
		t.Fatalf("got %d links, want 2", len(got))
	}
	if got[0].WebsiteType.String != "website_1" || got[1].WebsiteType.String != "website_2" {
		t.Errorf("labels = %q, %q", got[0].WebsiteType.String, got[1].WebsiteType.String)
	}
	if got[1].WebsiteURL.String != "https://c.example.com" {
		t.Errorf("url = %q", got[1].WebsiteURL.String)
	}
}

// ----------------------------------------------------------------------------
// Candidate builder
// ----------------------------------------------------------------------------

func TestBuildCandidate(t *testing.T) {
	now := date(2024, time.June, 1)
	row := NewRow(2, map[string]string{
		"full_name":         "Jane Smith",
		"email":             "jane@example.com",
		"followers":         "512",
		"connections_count": "500+",
		"birthday":          "1990-04-15",
	})

	got := BuildCandidate(row, now)

	if got.FullName.String != "Jane Smith" {
		t.Errorf("full name = %q", got.FullName.String)
	}
	if !got.Followers.Valid || got.Followers.Int32 != 512 {
		t.Errorf("followers = %+v, want 512", got.Followers)
	}
	if got.ConnectionsCount.Valid {
		t.Error("connections_count \"500+\" should be NULL")
	}
	if !got.Birthday.Valid || got.Birthday.Time != date(1990, time.April, 15) {
		t.Errorf("birthday = %+v", got.Birthday)
	}
	if got.Headline.Valid || got.Summary.Valid || got.Phone1.Valid {
		t.Error("absent columns should be NULL")
	}
	if !got.CreatedAt.Valid || !got.CreatedAt.Time.Equal(now) {
		t.Errorf("created_at = %+v, want %v", got.CreatedAt, now)
	}
}

func TestBuildCandidate_EmptyRowNeverFails(t *testing.T) {
	got := BuildCandidate(NewRow(2, nil), time.Now())
	if got.FullName.Valid || got.Email.Valid || got.Birthday.Valid || got.Followers.Valid {
		t.Error("empty row should produce all-NULL candidate")
	}
}
