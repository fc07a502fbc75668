package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type siteContentUsecase struct {
	repo domain.SiteContentRepository
}

func NewSiteContentUsecase(repo domain.SiteContentRepository) domain.SiteContentUsecase {
	return &siteContentUsecase{repo: repo}
}

// GetSection is the public read for site copy. A section that was never
// saved renders as an empty map so the site can fall back to defaults.
func (u *siteContentUsecase) GetSection(ctx context.Context, sectionKey string) (*domain.SiteContent, error) {
	content, err := u.repo.GetBySectionKey(ctx, sectionKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.SiteContent{
				SectionKey: sectionKey,
				Content:    map[string]string{},
			}, nil
		}
		return nil, apperror.Internal(err)
	}
	return content, nil
}

// UpdateSection is admin-only and records who last touched the copy.
func (u *siteContentUsecase) UpdateSection(ctx context.Context, userID string, content *domain.SiteContent) error {
	if roleFromCtx(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can edit site content")
	}
	if content.SectionKey == "" {
		return apperror.BadRequest("Section key is required")
	}

	content.LastUpdatedBy = &userID

	if err := u.repo.Upsert(ctx, content); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
