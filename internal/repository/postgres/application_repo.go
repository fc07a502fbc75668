package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique index on
// (candidate_id, job_id) is the arbiter for concurrent duplicate attempts;
// a violation comes back as domain.ErrDuplicate.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, candidate_id, cover_letter, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	app.AppliedAt = time.Now()

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.CoverLetter, app.Status, app.AppliedAt,
	).Scan(&app.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
			j.title, ep.company_name, p.full_name, cp.resume_url
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		JOIN candidate_profiles cp ON a.candidate_id = cp.id
		JOIN profiles p ON cp.user_id = p.id
		WHERE a.id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status, &app.AppliedAt,
		&app.JobTitle, &app.CompanyName, &app.CandidateName, &app.ResumeURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
			p.full_name, cp.resume_url
		FROM applications a
		JOIN candidate_profiles cp ON a.candidate_id = cp.id
		JOIN profiles p ON cp.user_id = p.id
		WHERE a.job_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status,
			&app.AppliedAt, &app.CandidateName, &app.ResumeURL,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.applied_at,
			j.title, ep.company_name
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE a.candidate_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.CandidateID, &app.CoverLetter, &app.Status,
			&app.AppliedAt, &app.JobTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
