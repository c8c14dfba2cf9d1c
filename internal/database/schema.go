package database

import (
	"context"
	"fmt"
)

// schemaStatements creates the candidate schema: one primary table, five
// child tables keyed by candidate_id, the yearofexp aggregate table, and
// the projects table carried for parity with older exports.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS candidate (
		candidate_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		public_id VARCHAR(255),
		member_id VARCHAR(255),
		profile_url TEXT,
		email TEXT,
		full_name VARCHAR(255),
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		original_full_name VARCHAR(255),
		avatar TEXT,
		headline TEXT,
		location_name VARCHAR(255),
		industry VARCHAR(255),
		summary TEXT,
		address TEXT,
		birthday DATE,
		followers INTEGER,
		connections_count INTEGER,
		current_company VARCHAR(255),
		current_company_custom VARCHAR(255),
		current_company_position VARCHAR(255),
		current_company_custom_position VARCHAR(255),
		current_company_actual_at DATE,
		current_company_industry VARCHAR(255),
		phone_1 VARCHAR(50),
		phone_type_1 VARCHAR(50),
		phone_2 VARCHAR(50),
		phone_type_2 VARCHAR(50),
		messenger_1 VARCHAR(255),
		messenger_provider_1 VARCHAR(100),
		messenger_2 VARCHAR(255),
		messenger_provider_2 VARCHAR(100),
		created_at TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		education_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		institution VARCHAR(255),
		degree VARCHAR(255),
		field_of_study VARCHAR(255),
		start_date DATE,
		end_date DATE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS experience (
		experience_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		organization_name VARCHAR(255),
		organization_id VARCHAR(255),
		organization_url TEXT,
		title VARCHAR(255),
		start_date DATE,
		end_date DATE,
		description TEXT,
		location VARCHAR(255),
		website TEXT,
		domain VARCHAR(255),
		position_description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		project_name VARCHAR(255),
		description TEXT,
		technologies TEXT,
		duration VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		skill_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		skill_name VARCHAR(255),
		proficiency VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS languages (
		language_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		language_name VARCHAR(255),
		proficiency VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS websites (
		website_id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		website_url TEXT,
		website_type VARCHAR(100)
	)`,
	`CREATE TABLE IF NOT EXISTS yearofexp (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		candidate_id BIGINT REFERENCES candidate(candidate_id),
		total_years_experience DOUBLE PRECISION,
		calculated_date TIMESTAMP
	)`,
}

// CreateSchema creates all tables if they do not already exist.
func CreateSchema(ctx context.Context, db DBTX) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
