package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertCandidate = `
INSERT INTO candidate (
	public_id, member_id, profile_url, email, full_name, first_name,
	last_name, original_full_name, avatar, headline, location_name,
	industry, summary, address, birthday, followers, connections_count,
	current_company, current_company_custom, current_company_position,
	current_company_custom_position, current_company_actual_at,
	current_company_industry, phone_1, phone_type_1, phone_2, phone_type_2,
	messenger_1, messenger_provider_1, messenger_2, messenger_provider_2,
	created_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
	$31, $32
)
RETURNING candidate_id
`

// InsertCandidateParams mirrors the candidate table, one column per
// scalar attribute of the export. Invalid pgtype values insert as NULL.
type InsertCandidateParams struct {
	PublicID                     pgtype.Text
	MemberID                     pgtype.Text
	ProfileURL                   pgtype.Text
	Email                        pgtype.Text
	FullName                     pgtype.Text
	FirstName                    pgtype.Text
	LastName                     pgtype.Text
	OriginalFullName             pgtype.Text
	Avatar                       pgtype.Text
	Headline                     pgtype.Text
	LocationName                 pgtype.Text
	Industry                     pgtype.Text
	Summary                      pgtype.Text
	Address                      pgtype.Text
	Birthday                     pgtype.Date
	Followers                    pgtype.Int4
	ConnectionsCount             pgtype.Int4
	CurrentCompany               pgtype.Text
	CurrentCompanyCustom         pgtype.Text
	CurrentCompanyPosition       pgtype.Text
	CurrentCompanyCustomPosition pgtype.Text
	CurrentCompanyActualAt       pgtype.Date
	CurrentCompanyIndustry       pgtype.Text
	Phone1                       pgtype.Text
	PhoneType1                   pgtype.Text
	Phone2                       pgtype.Text
	PhoneType2                   pgtype.Text
	Messenger1                   pgtype.Text
	MessengerProvider1           pgtype.Text
	Messenger2                   pgtype.Text
	MessengerProvider2           pgtype.Text
	CreatedAt                    pgtype.Timestamp
}

// InsertCandidate inserts one candidate row and returns its generated key.
func (q *Queries) InsertCandidate(ctx context.Context, arg InsertCandidateParams) (int64, error) {
	row := q.db.QueryRow(ctx, insertCandidate,
		arg.PublicID, arg.MemberID, arg.ProfileURL, arg.Email, arg.FullName,
		arg.FirstName, arg.LastName, arg.OriginalFullName, arg.Avatar,
		arg.Headline, arg.LocationName, arg.Industry, arg.Summary,
		arg.Address, arg.Birthday, arg.Followers, arg.ConnectionsCount,
		arg.CurrentCompany, arg.CurrentCompanyCustom,
		arg.CurrentCompanyPosition, arg.CurrentCompanyCustomPosition,
		arg.CurrentCompanyActualAt, arg.CurrentCompanyIndustry,
		arg.Phone1, arg.PhoneType1, arg.Phone2, arg.PhoneType2,
		arg.Messenger1, arg.MessengerProvider1, arg.Messenger2,
		arg.MessengerProvider2, arg.CreatedAt,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const insertEducation = `
INSERT INTO education (
	candidate_id, institution, degree, field_of_study, start_date,
	end_date, description
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type InsertEducationParams struct {
	CandidateID  int64
	Institution  pgtype.Text
	Degree       pgtype.Text
	FieldOfStudy pgtype.Text
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	Description  pgtype.Text
}

func (q *Queries) InsertEducation(ctx context.Context, arg InsertEducationParams) error {
	_, err := q.db.Exec(ctx, insertEducation,
		arg.CandidateID, arg.Institution, arg.Degree, arg.FieldOfStudy,
		arg.StartDate, arg.EndDate, arg.Description,
	)
	return err
}

const insertExperience = `
INSERT INTO experience (
	candidate_id, organization_name, organization_id, organization_url,
	title, start_date, end_date, description, location, website, domain,
	position_description
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type InsertExperienceParams struct {
	CandidateID         int64
	OrganizationName    pgtype.Text
	OrganizationID      pgtype.Text
	OrganizationURL     pgtype.Text
	Title               pgtype.Text
	StartDate           pgtype.Date
	EndDate             pgtype.Date
	Description         pgtype.Text
	Location            pgtype.Text
	Website             pgtype.Text
	Domain              pgtype.Text
	PositionDescription pgtype.Text
}

func (q *Queries) InsertExperience(ctx context.Context, arg InsertExperienceParams) error {
	_, err := q.db.Exec(ctx, insertExperience,
		arg.CandidateID, arg.OrganizationName, arg.OrganizationID,
		arg.OrganizationURL, arg.Title, arg.StartDate, arg.EndDate,
		arg.Description, arg.Location, arg.Website, arg.Domain,
		arg.PositionDescription,
	)
	return err
}

const insertSkill = `
INSERT INTO skills (candidate_id, skill_name, proficiency)
VALUES ($1, $2, $3)
`

type InsertSkillParams struct {
	CandidateID int64
	SkillName   pgtype.Text
	Proficiency pgtype.Text
}

func (q *Queries) InsertSkill(ctx context.Context, arg InsertSkillParams) error {
	_, err := q.db.Exec(ctx, insertSkill, arg.CandidateID, arg.SkillName, arg.Proficiency)
	return err
}

const insertLanguage = `
INSERT INTO languages (candidate_id, language_name, proficiency)
VALUES ($1, $2, $3)
`

type InsertLanguageParams struct {
	CandidateID  int64
	LanguageName pgtype.Text
	Proficiency  pgtype.Text
}

func (q *Queries) InsertLanguage(ctx context.Context, arg InsertLanguageParams) error {
	_, err := q.db.Exec(ctx, insertLanguage, arg.CandidateID, arg.LanguageName, arg.Proficiency)
	return err
}

const insertWebsite = `
INSERT INTO websites (candidate_id, website_url, website_type)
VALUES ($1, $2, $3)
`

type InsertWebsiteParams struct {
	CandidateID int64
	WebsiteURL  pgtype.Text
	WebsiteType pgtype.Text
}

func (q *Queries) InsertWebsite(ctx context.Context, arg InsertWebsiteParams) error {
	_, err := q.db.Exec(ctx, insertWebsite, arg.CandidateID, arg.WebsiteURL, arg.WebsiteType)
	return err
}

const insertYearsOfExperience = `
INSERT INTO yearofexp (candidate_id, total_years_experience, calculated_date)
VALUES ($1, $2, $3)
`

type InsertYearsOfExperienceParams struct {
	CandidateID          int64
	TotalYearsExperience pgtype.Float8
	CalculatedDate       pgtype.Timestamp
}

func (q *Queries) InsertYearsOfExperience(ctx context.Context, arg InsertYearsOfExperienceParams) error {
	_, err := q.db.Exec(ctx, insertYearsOfExperience,
		arg.CandidateID, arg.TotalYearsExperience, arg.CalculatedDate,
	)
	return err
}
