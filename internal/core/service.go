package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	db "github.com/JonMunkholm/CandidateDB/internal/database"
	"github.com/google/uuid"
)

// ProgressLogEvery is how often the orchestrator logs batch progress,
// in rows. Set from config at startup.
var ProgressLogEvery = 1

// Service drives the ingest pipeline over a loaded table. One Service
// owns one store connection for the lifetime of a batch run.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service bound to a store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ProcessRow commits a single row: candidate first, then every child
// family under the generated candidate_id, then the experience-years
// aggregate, all in one transaction. Any failure rolls the whole row
// back; the returned outcome carries the error instead of propagating it.
//
// Re-running a batch inserts duplicates: there is no natural key on the
// candidate table and no upsert.
func (s *Service) ProcessRow(ctx context.Context, row Row) RowOutcome {
	out := RowOutcome{Line: row.Line(), FullName: row.Value("full_name")}

	candidate := BuildCandidate(row, s.now())

	tx, err := s.store.Begin(ctx)
	if err != nil {
		out.Err = fmt.Errorf("%w: begin: %v", ErrStoreUnavailable, err)
		return out
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	// The candidate must be flushed first: every child row needs its key.
	id, err := tx.InsertCandidate(ctx, candidate)
	if err != nil {
		out.Err = fmt.Errorf("insert candidate: %w", err)
		return out
	}
	out.CandidateID = id

	for _, edu := range ExtractEducation(row) {
		edu.CandidateID = id
		if err := tx.InsertEducation(ctx, edu); err != nil {
			out.Err = fmt.Errorf("insert education: %w", err)
			return out
		}
	}

	experience := ExtractExperience(row)
	for _, exp := range experience {
		exp.CandidateID = id
		if err := tx.InsertExperience(ctx, exp); err != nil {
			out.Err = fmt.Errorf("insert experience: %w", err)
			return out
		}
	}

	for _, skill := range ExtractSkills(row.Value("skills")) {
		// Proficiency is never present in the export, stored as NULL.
		err := tx.InsertSkill(ctx, db.InsertSkillParams{
			CandidateID: id,
			SkillName:   ToPgText(skill),
		})
		if err != nil {
			out.Err = fmt.Errorf("insert skill: %w", err)
			return out
		}
	}

	for _, language := range ExtractLanguages(row.Value("languages")) {
		err := tx.InsertLanguage(ctx, db.InsertLanguageParams{
			CandidateID:  id,
			LanguageName: ToPgText(language),
		})
		if err != nil {
			out.Err = fmt.Errorf("insert language: %w", err)
			return out
		}
	}

	for _, site := range ExtractSiteLinks(row) {
		site.CandidateID = id
		if err := tx.InsertWebsite(ctx, site); err != nil {
			out.Err = fmt.Errorf("insert website: %w", err)
			return out
		}
	}

	years := ExperienceYears(experience, s.now())
	err = tx.InsertYearsOfExperience(ctx, db.InsertYearsOfExperienceParams{
		CandidateID:          id,
		TotalYearsExperience: ToPgFloat8(years),
		CalculatedDate:       ToPgTimestamp(s.now()),
	})
	if err != nil {
		out.Err = fmt.Errorf("insert years of experience: %w", err)
		return out
	}

	if err := tx.Commit(ctx); err != nil {
		out.Err = fmt.Errorf("commit: %w", err)
		return out
	}
	committed = true

	return out
}

// ProcessAll runs the batch strictly in source order, one transaction per
// row. Row failures are tallied and logged but never abort the batch;
// only a store-connectivity failure does. A zero-row table yields an
// empty summary and no error.
func (s *Service) ProcessAll(ctx context.Context, rows []Row) (BatchSummary, error) {
	log := slog.With("run_id", uuid.NewString())
	summary := BatchSummary{Total: len(rows)}

	log.Info("starting batch", "rows", len(rows))

	for i, row := range rows {
		if ProgressLogEvery > 0 && i%ProgressLogEvery == 0 {
			log.Info("processing candidate", "row", i+1, "total", len(rows))
		}

		out := s.ProcessRow(ctx, row)
		if out.Failed() {
			summary.Failed++
			log.Error("row failed", "line", out.Line, "name", out.FullName, "error", out.Err)
			if errors.Is(out.Err, ErrStoreUnavailable) {
				return summary, out.Err
			}
			continue
		}

		summary.Success++
		log.Info("candidate stored", "name", out.FullName, "candidate_id", out.CandidateID)
	}

	log.Info("batch complete",
		"success", summary.Success,
		"failed", summary.Failed,
		"total", summary.Total,
		"success_rate", fmt.Sprintf("%.1f%%", summary.SuccessRate()),
	)

	return summary, nil
}
