package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employerUsecase struct {
	repo     domain.EmployerRepository
	validate *validator.Validate
}

func NewEmployerUsecase(repo domain.EmployerRepository, validate *validator.Validate) domain.EmployerUsecase {
	return &employerUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *employerUsecase) GetProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	ctxUserID := userIDFromCtx(ctx)
	if ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if !domain.Allowed(roleFromCtx(ctx), domain.ResourceProfile, domain.OpRead, ctxUserID == userID) {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Employer profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	ctxUserID := userIDFromCtx(ctx)
	if ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	role := roleFromCtx(ctx)
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
