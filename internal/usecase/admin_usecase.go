package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type adminUsecase struct {
	adminRepo   domain.AdminRepository
	profileRepo domain.ProfileRepository
}

func NewAdminUsecase(adminRepo domain.AdminRepository, profileRepo domain.ProfileRepository) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo:   adminRepo,
		profileRepo: profileRepo,
	}
}

func (u *adminUsecase) requireAdmin(ctx context.Context) error {
	if roleFromCtx(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Admin access required")
	}
	return nil
}

func (u *adminUsecase) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	stats, err := u.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return stats, nil
}

func (u *adminUsecase) ListUsers(ctx context.Context, role domain.Role, page, pageSize int) (*domain.PaginatedResult[domain.Profile], error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	profiles, total, err := u.adminRepo.ListProfiles(ctx, role, page, pageSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResult[domain.Profile]{
		Data:       profiles,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (u *adminUsecase) UpdateUserRole(ctx context.Context, userID string, role domain.Role) (*domain.Profile, error) {
	if err := u.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if role != domain.RoleCandidate && role != domain.RoleEmployer && role != domain.RoleAdmin {
		return nil, apperror.BadRequest("Invalid role")
	}

	if err := u.profileRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

// DeleteUser removes the profile row. The schema cascades through the
// role-specific profile, any jobs it owns, and their applications; there
// is deliberately no second deletion path. Removing the auth principal
// itself is the auth provider's concern.
func (u *adminUsecase) DeleteUser(ctx context.Context, userID string) error {
	if err := u.requireAdmin(ctx); err != nil {
		return err
	}
	if userIDFromCtx(ctx) == userID {
		return apperror.BadRequest("You cannot delete your own account")
	}

	if err := u.profileRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
