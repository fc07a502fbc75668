package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	ctxUserID := userIDFromCtx(ctx)
	if ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	owner := ctxUserID == userID
	if !domain.Allowed(roleFromCtx(ctx), domain.ResourceProfile, domain.OpRead, owner) {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Candidate profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	ctxUserID := userIDFromCtx(ctx)
	if ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	role := roleFromCtx(ctx)
	// Admins may edit any candidate; everyone else only their own. The
	// UserID is forced for non-admins so a forged body cannot retarget
	// the write.
	if role != domain.RoleAdmin {
		profile.UserID = ctxUserID
	}
	if !domain.Allowed(role, domain.ResourceProfile, domain.OpWrite, profile.UserID == ctxUserID) {
		return apperror.Forbidden("You can only update your own profile")
	}

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// AttachResume records the uploaded file's public URL on the candidate's
// profile. A profile row must already exist.
func (u *candidateUsecase) AttachResume(ctx context.Context, userID string, resumeURL string) error {
	ctxUserID := userIDFromCtx(ctx)
	if ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if !domain.Allowed(roleFromCtx(ctx), domain.ResourceProfile, domain.OpWrite, userID == ctxUserID) {
		return apperror.Forbidden("You can only update your own resume")
	}

	err := u.repo.SetResumeURL(ctx, userID, resumeURL)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Candidate profile not found. Complete your profile first.")
		}
		return apperror.Internal(err)
	}
	return nil
}
