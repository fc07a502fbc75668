package domain

import (
	"context"
	"time"
)

// Job types accepted by the posting form.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a posting owned by exactly one employer profile. IsActive gates
// public visibility only; toggling it never touches applications.
type Job struct {
	ID                 int64     `json:"id"`
	EmployerID         int64     `json:"employer_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Location           string    `json:"location"`
	JobType            string    `json:"job_type"`
	SalaryMin          *int64    `json:"salary_min,omitempty"`
	SalaryMax          *int64    `json:"salary_max,omitempty"`
	SkillsRequired     []string  `json:"skills_required"`
	ExperienceRequired int       `json:"experience_required"`
	WorkAuthorization  []string  `json:"work_authorization"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// JobWithEmployer extends Job with the owning company's public details
// for listing pages.
type JobWithEmployer struct {
	Job
	CompanyName     string  `json:"company_name"`
	CompanyLocation string  `json:"company_location"`
	CompanyWebsite  *string `json:"company_website,omitempty"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	// FetchActive returns only is_active = true rows; the filter is part
	// of the SQL, not a caller responsibility.
	FetchActive(ctx context.Context, limit, offset int) ([]JobWithEmployer, int64, error)
	FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]Job, int64, error)
	FetchAll(ctx context.Context, limit, offset int) ([]JobWithEmployer, int64, error)
	Update(ctx context.Context, job *Job) error
	SetActive(ctx context.Context, id int64, active bool) error
	// Delete removes the job and all of its applications atomically.
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	// GetPublicJob behaves like GetJob but hides inactive postings from
	// non-owners.
	GetPublicJob(ctx context.Context, id int64) (*JobWithEmployer, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]JobWithEmployer, int64, error)
	ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	ListAllJobs(ctx context.Context, page, pageSize int) ([]JobWithEmployer, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	SetJobActive(ctx context.Context, userID string, id int64, active bool) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
