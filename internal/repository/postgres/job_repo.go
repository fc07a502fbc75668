package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `id, employer_id, title, description, location, job_type, salary_min, salary_max,
	skills_required, experience_required, work_authorization, is_active, created_at, updated_at`

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, location, job_type, salary_min, salary_max,
			skills_required, experience_required, work_authorization, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, job.SkillsRequired, job.ExperienceRequired,
		job.WorkAuthorization, job.IsActive, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.JobType, &job.SalaryMin, &job.SalaryMax, &job.SkillsRequired,
		&job.ExperienceRequired, &job.WorkAuthorization, &job.IsActive,
		&job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills_required, j.experience_required,
			j.work_authorization, j.is_active, j.created_at, j.updated_at,
			ep.company_name, ep.location, ep.website
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
		&job.JobType, &job.SalaryMin, &job.SalaryMax, &job.SkillsRequired,
		&job.ExperienceRequired, &job.WorkAuthorization, &job.IsActive,
		&job.CreatedAt, &job.UpdatedAt,
		&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchActive returns active postings only. The filter is part of the SQL:
// there is no way for a caller to see inactive jobs through this path.
func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills_required, j.experience_required,
			j.work_authorization, j.is_active, j.created_at, j.updated_at,
			ep.company_name, ep.location, ep.website
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_id = ep.id
		WHERE j.is_active = true
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	jobs, err := r.fetchWithEmployer(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	query := `
		SELECT j.id, j.employer_id, j.title, j.description, j.location, j.job_type,
			j.salary_min, j.salary_max, j.skills_required, j.experience_required,
			j.work_authorization, j.is_active, j.created_at, j.updated_at,
			ep.company_name, ep.location, ep.website
		FROM jobs j
		JOIN employer_profiles ep ON j.employer_id = ep.id
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	jobs, err := r.fetchWithEmployer(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) fetchWithEmployer(ctx context.Context, query string, limit, offset int) ([]domain.JobWithEmployer, error) {
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.JobType, &job.SalaryMin, &job.SalaryMax, &job.SkillsRequired,
			&job.ExperienceRequired, &job.WorkAuthorization, &job.IsActive,
			&job.CreatedAt, &job.UpdatedAt,
			&job.CompanyName, &job.CompanyLocation, &job.CompanyWebsite,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE employer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Location,
			&job.JobType, &job.SalaryMin, &job.SalaryMax, &job.SkillsRequired,
			&job.ExperienceRequired, &job.WorkAuthorization, &job.IsActive,
			&job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE employer_id = $1`, employerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		location = $4,
		job_type = $5,
		salary_min = $6,
		salary_max = $7,
		skills_required = $8,
		experience_required = $9,
		work_authorization = $10,
		updated_at = $11
	WHERE id = $1`

	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.JobType,
		job.SalaryMin, job.SalaryMax, job.SkillsRequired, job.ExperienceRequired,
		job.WorkAuthorization, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetActive(ctx context.Context, id int64, active bool) error {
	query := `UPDATE jobs SET is_active = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, active, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the job and its applications in one transaction. The FK
// already cascades; deleting applications explicitly keeps the invariant
// even on a schema without the cascade.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
