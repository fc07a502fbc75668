package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	employerRepo domain.EmployerRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, employerRepo domain.EmployerRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
	}
}

// validateJob checks the posting's required fields and ranges. The salary
// and experience checks are deliberate: the legacy site accepted
// min > max silently.
func validateJob(job *domain.Job) error {
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if job.Location == "" {
		return apperror.BadRequest("Location is required")
	}
	if job.Description == "" {
		return apperror.BadRequest("Description is required")
	}
	if !domain.ValidJobType(job.JobType) {
		return apperror.BadRequest("Job type must be Full-time, Part-time, Contract, or Internship")
	}
	if job.SalaryMin != nil && job.SalaryMax != nil && *job.SalaryMin > *job.SalaryMax {
		return apperror.BadRequest("Minimum salary cannot exceed maximum salary")
	}
	if job.ExperienceRequired < 0 {
		return apperror.BadRequest("Experience required cannot be negative")
	}
	return nil
}

// authorizeJobWrite resolves whether the context principal may mutate the
// given job, consulting the policy table with ownership resolved against
// the caller's employer profile.
func (u *jobUsecase) authorizeJobWrite(ctx context.Context, userID string, job *domain.Job) error {
	role := roleFromCtx(ctx)
	owner := false
	if role == domain.RoleEmployer {
		employer, err := u.employerRepo.GetByUserID(ctx, userID)
		if err == nil && employer != nil {
			owner = employer.ID == job.EmployerID
		}
	}
	if !domain.Allowed(role, domain.ResourceJob, domain.OpWrite, owner) {
		return apperror.Forbidden("You do not have permission to modify this job")
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, userID string, job *domain.Job) error {
	role := roleFromCtx(ctx)
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		return apperror.Forbidden("Only employers can create jobs")
	}

	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Employer profile not found. Please complete your company profile first.")
	}
	job.EmployerID = employer.ID

	if err := validateJob(job); err != nil {
		return err
	}

	// New postings are visible until deactivated
	job.IsActive = true

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// GetPublicJob hides inactive postings from everyone but the owning
// employer and admins; to others an inactive job does not exist.
func (u *jobUsecase) GetPublicJob(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	job, err := u.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.IsActive {
		return job, nil
	}

	role := roleFromCtx(ctx)
	owner := false
	if role == domain.RoleEmployer {
		employer, empErr := u.employerRepo.GetByUserID(ctx, userIDFromCtx(ctx))
		if empErr == nil && employer != nil {
			owner = employer.ID == job.EmployerID
		}
	}
	if !domain.Allowed(role, domain.ResourceJob, domain.OpReadInactive, owner) {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

// ListActiveJobs is the public/candidate listing. Only active postings are
// returned; the filter lives in the repository's SQL.
func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithEmployer, int64, error) {
	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchActive(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]domain.Job, int64, error) {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperror.NotFound("Employer profile not found. Please complete your company profile first.")
	}

	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchByEmployerID(ctx, employer.ID, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) ListAllJobs(ctx context.Context, page, pageSize int) ([]domain.JobWithEmployer, int64, error) {
	if roleFromCtx(ctx) != domain.RoleAdmin {
		return nil, 0, apperror.Forbidden("Only admins can list all jobs")
	}

	limit, offset := paginate(page, pageSize)
	jobs, total, err := u.jobRepo.FetchAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return jobs, total, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, userID string, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorizeJobWrite(ctx, userID, existing); err != nil {
		return err
	}
	if err := validateJob(job); err != nil {
		return err
	}

	// Ownership and activation are not editable through this path
	job.EmployerID = existing.EmployerID

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// SetJobActive flips visibility. Idempotent: setting the current state is
// not an error. Existing applications are untouched.
func (u *jobUsecase) SetJobActive(ctx context.Context, userID string, id int64, active bool) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorizeJobWrite(ctx, userID, job); err != nil {
		return err
	}
	if job.IsActive == active {
		return nil
	}

	if err := u.jobRepo.SetActive(ctx, id, active); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteJob removes the posting and all of its applications; no orphan
// applications may survive.
func (u *jobUsecase) DeleteJob(ctx context.Context, userID string, id int64) error {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorizeJobWrite(ctx, userID, job); err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
