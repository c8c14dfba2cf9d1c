package core

import (
	"context"

	db "github.com/JonMunkholm/CandidateDB/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store opens one transaction per row. The committer owns the
// transaction's full lifecycle: begin before the candidate insert, commit
// or rollback before the next row starts.
type Store interface {
	Begin(ctx context.Context) (StoreTx, error)
}

// StoreTx is a single row's transaction scope: the typed entity writes
// plus commit/rollback. InsertCandidate returns the generated surrogate
// key the child entities attach to.
type StoreTx interface {
	InsertCandidate(ctx context.Context, arg db.InsertCandidateParams) (int64, error)
	InsertEducation(ctx context.Context, arg db.InsertEducationParams) error
	InsertExperience(ctx context.Context, arg db.InsertExperienceParams) error
	InsertSkill(ctx context.Context, arg db.InsertSkillParams) error
	InsertLanguage(ctx context.Context, arg db.InsertLanguageParams) error
	InsertWebsite(ctx context.Context, arg db.InsertWebsiteParams) error
	InsertYearsOfExperience(ctx context.Context, arg db.InsertYearsOfExperienceParams) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// PgStore is the pgx-backed Store used in production.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore wraps a connection pool as a Store.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// Begin starts a transaction and binds the query layer to it.
func (s *PgStore) Begin(ctx context.Context) (StoreTx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgStoreTx{tx: tx, Queries: db.New(tx)}, nil
}

type pgStoreTx struct {
	tx pgx.Tx
	*db.Queries
}

func (t *pgStoreTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *pgStoreTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }
