package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, email, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.FullName, profile.Email, profile.Phone,
		string(profile.Role), profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, full_name, email, phone, role, created_at, updated_at FROM profiles WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	query := `SELECT id, full_name, email, phone, role, created_at, updated_at FROM profiles WHERE email = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *profileRepo) scanOne(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var role string
	err := row.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &role, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.Role = domain.ParseRole(role)
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET full_name = $2, phone = $3, updated_at = $4 WHERE id = $1`
	profile.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, profile.ID, profile.FullName, profile.Phone, profile.UpdatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	query := `UPDATE profiles SET role = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, string(role), time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	// Role profiles, jobs and applications go with it via FK cascade.
	query := `DELETE FROM profiles WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
