package domain

import (
	"context"
	"time"
)

// Application statuses. Every status is reachable from every other via
// employer or admin action; resetting to pending is the supported undo.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application relates one candidate to one job. At most one row exists per
// (candidate, job) pair; AppliedAt is immutable after creation.
type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	CandidateName *string `json:"candidate_name,omitempty"`
	ResumeURL     *string `json:"resume_url,omitempty"`
}

type ApplicationRepository interface {
	// Create inserts the application; a duplicate (candidate, job) pair
	// surfaces as ErrDuplicate via the unique constraint.
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByJobID(ctx context.Context, jobID int64) ([]Application, error)
	GetByCandidateID(ctx context.Context, candidateID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	// Candidate operations
	Apply(ctx context.Context, userID string, jobID int64, coverLetter string) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Employer/admin operations
	ListByJob(ctx context.Context, userID string, jobID int64) ([]Application, error)
	GetApplication(ctx context.Context, userID string, applicationID int64) (*Application, error)
	UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error
}
