package domain

import (
	"context"
	"time"
)

// CandidateProfile holds the candidate-specific attributes. ResumeURL is
// nullable; a set resume is the precondition for applying to any job.
type CandidateProfile struct {
	ID                int64     `json:"id"`
	UserID            string    `json:"user_id" validate:"required"`
	WorkAuthorization string    `json:"work_authorization" validate:"max=100"`
	YearsOfExperience *int      `json:"years_of_experience,omitempty" validate:"omitempty,gte=0"`
	ResumeURL         *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasResume reports whether a resume is on file.
func (p *CandidateProfile) HasResume() bool {
	return p != nil && p.ResumeURL != nil && *p.ResumeURL != ""
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	GetByID(ctx context.Context, id int64) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
	SetResumeURL(ctx context.Context, userID string, resumeURL string) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
	// AttachResume records the uploaded resume's public URL on the
	// candidate's profile.
	AttachResume(ctx context.Context, userID string, resumeURL string) error
}
