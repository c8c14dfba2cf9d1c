package core

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	db "github.com/JonMunkholm/CandidateDB/internal/database"
)

// Repeating-group slot counts in the export's flattened schema.
const (
	educationSlots  = 3
	experienceSlots = 10
	websiteSlots    = 3
)

// List caps applied after cleaning, preserving original order.
const (
	maxSkills    = 20
	maxLanguages = 10
	maxWebsites  = 5
)

// listDelimiters splits multi-value cells on the separators the export
// is known to use.
var listDelimiters = regexp.MustCompile(`[,;|•]`)

// extractList splits a raw multi-value cell, trims each token, keeps the
// ones passing keep, and truncates to max. It is total: malformed input
// at worst yields an empty list.
func extractList(raw string, max int, keep func(string) bool) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, token := range listDelimiters.Split(raw, -1) {
		token = strings.TrimSpace(token)
		if token == "" || !keep(token) {
			continue
		}
		out = append(out, token)
		if len(out) == max {
			break
		}
	}
	return out
}

// longerThanOne filters out empty and single-character tokens.
func longerThanOne(s string) bool { return len(s) > 1 }

// looksLikeURL is the loose validity check for website tokens.
func looksLikeURL(s string) bool {
	return strings.Contains(s, "http") || strings.Contains(s, ".")
}

// ExtractSkills returns up to 20 cleaned skill names from a delimited cell.
func ExtractSkills(raw string) []string {
	return extractList(raw, maxSkills, longerThanOne)
}

// ExtractLanguages returns up to 10 cleaned language names from a
// delimited cell.
func ExtractLanguages(raw string) []string {
	return extractList(raw, maxLanguages, longerThanOne)
}

// ExtractWebsites returns up to 5 URL-looking tokens from a delimited cell.
func ExtractWebsites(raw string) []string {
	return extractList(raw, maxWebsites, looksLikeURL)
}

// ExtractEducation unpacks the education_1..education_3 column group.
// A slot contributes an entry iff its institution column is non-empty;
// every other column in the slot is optional. Slot order is preserved and
// duplicate institutions across slots are kept as-is.
func ExtractEducation(row Row) []db.InsertEducationParams {
	var entries []db.InsertEducationParams

	for i := 1; i <= educationSlots; i++ {
		institution, ok := row.Get(fmt.Sprintf("education_%d", i))
		if !ok {
			continue
		}
		entries = append(entries, db.InsertEducationParams{
			Institution:  ToPgText(institution),
			Degree:       ToPgText(row.Value(fmt.Sprintf("education_degree_%d", i))),
			FieldOfStudy: ToPgText(row.Value(fmt.Sprintf("education_fos_%d", i))),
			StartDate:    ParseDate(row.Value(fmt.Sprintf("education_start_%d", i))),
			EndDate:      ParseDate(row.Value(fmt.Sprintf("education_end_%d", i))),
			Description:  ToPgText(row.Value(fmt.Sprintf("education_description_%d", i))),
		})
	}

	return entries
}

// ExtractExperience unpacks the organization_1..organization_10 column
// group. A slot contributes an entry iff its organization name column is
// non-empty.
func ExtractExperience(row Row) []db.InsertExperienceParams {
	var entries []db.InsertExperienceParams

	for i := 1; i <= experienceSlots; i++ {
		name, ok := row.Get(fmt.Sprintf("organization_%d", i))
		if !ok {
			continue
		}
		entries = append(entries, db.InsertExperienceParams{
			OrganizationName:    ToPgText(name),
			OrganizationID:      ToPgText(row.Value(fmt.Sprintf("organization_id_%d", i))),
			OrganizationURL:     ToPgText(row.Value(fmt.Sprintf("organization_url_%d", i))),
			Title:               ToPgText(row.Value(fmt.Sprintf("organization_title_%d", i))),
			StartDate:           ParseDate(row.Value(fmt.Sprintf("organization_start_%d", i))),
			EndDate:             ParseDate(row.Value(fmt.Sprintf("organization_end_%d", i))),
			Description:         ToPgText(row.Value(fmt.Sprintf("organization_description_%d", i))),
			Location:            ToPgText(row.Value(fmt.Sprintf("organization_location_%d", i))),
			Website:             ToPgText(row.Value(fmt.Sprintf("organization_website_%d", i))),
			Domain:              ToPgText(row.Value(fmt.Sprintf("organization_domain_%d", i))),
			PositionDescription: ToPgText(row.Value(fmt.Sprintf("position_description_%d", i))),
		})
	}

	return entries
}

// ExtractSiteLinks collects the dedicated website_1..website_3 columns in
// slot order. The type label is derived from the position in the
// collected list, so gaps in the source columns do not leave gaps in the
// labels.
func ExtractSiteLinks(row Row) []db.InsertWebsiteParams {
	var links []db.InsertWebsiteParams

	for i := 1; i <= websiteSlots; i++ {
		url, ok := row.Get(fmt.Sprintf("website_%d", i))
		if !ok {
			continue
		}
		links = append(links, db.InsertWebsiteParams{
			WebsiteURL:  ToPgText(url),
			WebsiteType: ToPgText(fmt.Sprintf("website_%d", len(links)+1)),
		})
	}

	return links
}

// BuildCandidate maps every scalar column of the export onto the
// candidate insert params. It cannot fail: absent columns become NULLs.
func BuildCandidate(row Row, now time.Time) db.InsertCandidateParams {
	return db.InsertCandidateParams{
		PublicID:                     ToPgText(row.Value("public_id")),
		MemberID:                     ToPgText(row.Value("member_id")),
		ProfileURL:                   ToPgText(row.Value("profile_url")),
		Email:                        ToPgText(row.Value("email")),
		FullName:                     ToPgText(row.Value("full_name")),
		FirstName:                    ToPgText(row.Value("first_name")),
		LastName:                     ToPgText(row.Value("last_name")),
		OriginalFullName:             ToPgText(row.Value("original_full_name")),
		Avatar:                       ToPgText(row.Value("avatar")),
		Headline:                     ToPgText(row.Value("headline")),
		LocationName:                 ToPgText(row.Value("location_name")),
		Industry:                     ToPgText(row.Value("industry")),
		Summary:                      ToPgText(row.Value("summary")),
		Address:                      ToPgText(row.Value("address")),
		Birthday:                     ParseDate(row.Value("birthday")),
		Followers:                    ToPgInt4(row.Value("followers")),
		ConnectionsCount:             ToPgInt4(row.Value("connections_count")),
		CurrentCompany:               ToPgText(row.Value("current_company")),
		CurrentCompanyCustom:         ToPgText(row.Value("current_company_custom")),
		CurrentCompanyPosition:       ToPgText(row.Value("current_company_position")),
		CurrentCompanyCustomPosition: ToPgText(row.Value("current_company_custom_position")),
		CurrentCompanyActualAt:       ParseDate(row.Value("current_company_actual_at")),
		CurrentCompanyIndustry:       ToPgText(row.Value("current_company_industry")),
		Phone1:                       ToPgText(row.Value("phone_1")),
		PhoneType1:                   ToPgText(row.Value("phone_type_1")),
		Phone2:                       ToPgText(row.Value("phone_2")),
		PhoneType2:                   ToPgText(row.Value("phone_type_2")),
		Messenger1:                   ToPgText(row.Value("messenger_1")),
		MessengerProvider1:           ToPgText(row.Value("messenger_provider_1")),
		Messenger2:                   ToPgText(row.Value("messenger_2")),
		MessengerProvider2:           ToPgText(row.Value("messenger_provider_2")),
		CreatedAt:                    ToPgTimestamp(now),
	}
}
