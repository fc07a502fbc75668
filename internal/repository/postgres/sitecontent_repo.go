package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type siteContentRepo struct {
	db *pgxpool.Pool
}

func NewSiteContentRepository(db *pgxpool.Pool) domain.SiteContentRepository {
	return &siteContentRepo{db: db}
}

func (r *siteContentRepo) GetBySectionKey(ctx context.Context, sectionKey string) (*domain.SiteContent, error) {
	query := `SELECT section_key, content, last_updated_by, updated_at FROM site_content WHERE section_key = $1`

	var sc domain.SiteContent
	err := r.db.QueryRow(ctx, query, sectionKey).Scan(
		&sc.SectionKey, &sc.Content, &sc.LastUpdatedBy, &sc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sc, nil
}

func (r *siteContentRepo) Upsert(ctx context.Context, content *domain.SiteContent) error {
	query := `
		INSERT INTO site_content (section_key, content, last_updated_by, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section_key) DO UPDATE SET
			content = EXCLUDED.content,
			last_updated_by = EXCLUDED.last_updated_by,
			updated_at = EXCLUDED.updated_at`

	content.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		content.SectionKey, content.Content, content.LastUpdatedBy, content.UpdatedAt,
	)
	return err
}
