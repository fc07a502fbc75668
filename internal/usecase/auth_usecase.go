package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type authUsecase struct {
	profileRepo domain.ProfileRepository
}

func NewAuthUsecase(profileRepo domain.ProfileRepository) domain.AuthUsecase {
	return &authUsecase{profileRepo: profileRepo}
}

// Resolve maps a principal to its profile and role. A missing profile row
// is a legitimate transient state right after signup, before provisioning
// has run: it resolves to RoleUnknown with no error, and callers render a
// degraded view rather than failing.
func (u *authUsecase) Resolve(ctx context.Context, principalID string) (*domain.Profile, domain.Role, error) {
	profile, err := u.profileRepo.GetByID(ctx, principalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.RoleUnknown, nil
		}
		return nil, domain.RoleUnknown, err
	}
	return profile, profile.Role, nil
}

// EnsureProfile idempotently creates the profile row on first authenticated
// contact. Role defaults to candidate when the signup flow did not set one.
func (u *authUsecase) EnsureProfile(ctx context.Context, profile *domain.Profile) error {
	existing, err := u.profileRepo.GetByID(ctx, profile.ID)
	if existing != nil && err == nil {
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	if profile.Role == "" || profile.Role == domain.RoleUnknown {
		profile.Role = domain.RoleCandidate
	}
	if err := u.profileRepo.Create(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// AssignRole changes a user's role. Role is admin-mutable only.
func (u *authUsecase) AssignRole(ctx context.Context, userID string, role domain.Role) error {
	if roleFromCtx(ctx) != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can assign roles")
	}
	if role != domain.RoleCandidate && role != domain.RoleEmployer && role != domain.RoleAdmin {
		return apperror.BadRequest("Invalid role")
	}

	err := u.profileRepo.UpdateRole(ctx, userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// UpdateOwnProfile updates name/phone for the authenticated principal.
// The profile ID is always forced to the context user.
func (u *authUsecase) UpdateOwnProfile(ctx context.Context, profile *domain.Profile) error {
	userID := userIDFromCtx(ctx)
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	profile.ID = userID

	if profile.FullName == "" {
		return apperror.BadRequest("Full name is required")
	}

	err := u.profileRepo.Update(ctx, profile)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
