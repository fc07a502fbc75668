package domain

import (
	"context"
	"time"
)

// EmployerProfile is the company record owned 1:1 by an employer profile.
// Jobs hang off its ID, not off the user ID.
type EmployerProfile struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id" validate:"required"`
	CompanyName string    `json:"company_name" validate:"required,min=2,max=200"`
	Location    string    `json:"location" validate:"max=200"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	Description string    `json:"description" validate:"max=2000"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	GetByID(ctx context.Context, id int64) (*EmployerProfile, error)
	Upsert(ctx context.Context, profile *EmployerProfile) error
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, profile *EmployerProfile) error
}
