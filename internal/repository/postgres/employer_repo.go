package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

const employerColumns = `id, user_id, company_name, location, website, description, created_at, updated_at`

func (r *employerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `SELECT ` + employerColumns + ` FROM employer_profiles WHERE user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *employerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	query := `SELECT ` + employerColumns + ` FROM employer_profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *employerRepo) scanOne(row pgx.Row) (*domain.EmployerProfile, error) {
	var p domain.EmployerProfile
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Location, &p.Website,
		&p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerRepo) Upsert(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (user_id, company_name, location, website, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			description = EXCLUDED.description,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	now := time.Now()
	profile.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.Location,
		profile.Website, profile.Description, now, now,
	).Scan(&profile.ID, &profile.CreatedAt)
}
