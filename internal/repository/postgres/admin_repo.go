package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type adminRepo struct {
	db *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) domain.AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM profiles),
			(SELECT COUNT(*) FROM profiles WHERE role = 'admin'),
			(SELECT COUNT(*) FROM profiles WHERE role = 'employer'),
			(SELECT COUNT(*) FROM profiles WHERE role = 'candidate'),
			(SELECT COUNT(*) FROM jobs),
			(SELECT COUNT(*) FROM jobs WHERE is_active = true),
			(SELECT COUNT(*) FROM applications)`

	var stats domain.AdminStats
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalUsers,
		&stats.UsersByRole.Admin,
		&stats.UsersByRole.Employer,
		&stats.UsersByRole.Candidate,
		&stats.TotalJobs,
		&stats.ActiveJobs,
		&stats.TotalApplications,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *adminRepo) ListProfiles(ctx context.Context, role domain.Role, page, pageSize int) ([]domain.Profile, int64, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT id, full_name, email, phone, role, created_at, updated_at
		FROM profiles
		WHERE ($1 = '' OR role = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	roleFilter := ""
	if role != domain.RoleUnknown && role != "" {
		roleFilter = string(role)
	}

	rows, err := r.db.Query(ctx, query, roleFilter, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		var roleStr string
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &roleStr, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		p.Role = domain.ParseRole(roleStr)
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE ($1 = '' OR role = $1)`, roleFilter).Scan(&total); err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
