package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, user_id, work_authorization, years_of_experience, resume_url, created_at, updated_at`

func (r *candidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidate_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *candidateRepo) scanOne(row pgx.Row) (*domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := row.Scan(&p.ID, &p.UserID, &p.WorkAuthorization, &p.YearsOfExperience,
		&p.ResumeURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *candidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	query := `
		INSERT INTO candidate_profiles (user_id, work_authorization, years_of_experience, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			work_authorization = EXCLUDED.work_authorization,
			years_of_experience = EXCLUDED.years_of_experience,
			resume_url = COALESCE(EXCLUDED.resume_url, candidate_profiles.resume_url),
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	now := time.Now()
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.WorkAuthorization, profile.YearsOfExperience,
		profile.ResumeURL, now, now,
	).Scan(&profile.ID, &profile.CreatedAt)
}

func (r *candidateRepo) SetResumeURL(ctx context.Context, userID string, resumeURL string) error {
	query := `UPDATE candidate_profiles SET resume_url = $2, updated_at = $3 WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query, userID, resumeURL, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
