package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	candidateRepo   domain.CandidateRepository
	employerRepo    domain.EmployerRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	candidateRepo domain.CandidateRepository,
	employerRepo domain.EmployerRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		candidateRepo:   candidateRepo,
		employerRepo:    employerRepo,
	}
}

// Apply creates a pending application for the authenticated candidate.
// Preconditions: a resume on file, an existing active job, and no earlier
// application for the same job. The duplicate check is the database's
// unique constraint, not a read-then-insert; a conflict comes back as
// "already applied", which the UI treats as informational.
func (u *applicationUsecase) Apply(ctx context.Context, userID string, jobID int64, coverLetter string) (*domain.Application, error) {
	if !domain.Allowed(roleFromCtx(ctx), domain.ResourceApplication, domain.OpCreate, true) {
		return nil, apperror.Forbidden("Only candidates can apply for jobs")
	}

	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Complete your candidate profile before applying")
		}
		return nil, apperror.Internal(err)
	}
	if !candidate.HasResume() {
		return nil, apperror.BadRequest("A resume is required to apply. Upload one to your profile first.")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidate.ID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// No profile yet means no applications; empty state, not error
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}

	apps, err := u.applicationRepo.GetByCandidateID(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// ListByJob returns a job's applicants for the owning employer or an admin.
func (u *applicationUsecase) ListByJob(ctx context.Context, userID string, jobID int64) ([]domain.Application, error) {
	if err := u.authorizeJobAccess(ctx, userID, jobID, domain.OpListForJob); err != nil {
		return nil, err
	}

	apps, err := u.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// GetApplication returns one application to the applying candidate, the
// employer owning its job, or an admin.
func (u *applicationUsecase) GetApplication(ctx context.Context, userID string, applicationID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	role := roleFromCtx(ctx)
	owner := false
	switch role {
	case domain.RoleCandidate:
		candidate, cErr := u.candidateRepo.GetByUserID(ctx, userID)
		owner = cErr == nil && candidate != nil && candidate.ID == app.CandidateID
	case domain.RoleEmployer:
		owner = u.ownsJob(ctx, userID, app.JobID)
	}

	if !domain.Allowed(role, domain.ResourceApplication, domain.OpRead, owner) {
		return nil, apperror.Forbidden("You do not have permission to view this application")
	}
	return app, nil
}

// UpdateStatus moves an application between pending, accepted and rejected.
// Any target state is reachable from any other; resetting to pending is the
// supported undo. Only the job's owning employer or an admin may act; the
// candidate never writes status.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, userID string, applicationID int64, status string) error {
	if !domain.ValidApplicationStatus(status) {
		return apperror.BadRequest("Status must be pending, accepted, or rejected")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}

	if err := u.authorizeJobAccess(ctx, userID, app.JobID, domain.OpStatusWrite); err != nil {
		return err
	}

	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// authorizeJobAccess checks the policy table for operations scoped to a
// job's applications (listing applicants, writing status).
func (u *applicationUsecase) authorizeJobAccess(ctx context.Context, userID string, jobID int64, op domain.Operation) error {
	role := roleFromCtx(ctx)
	owner := role == domain.RoleEmployer && u.ownsJob(ctx, userID, jobID)
	if !domain.Allowed(role, domain.ResourceApplication, op, owner) {
		return apperror.Forbidden("You do not have permission to manage this job's applications")
	}
	return nil
}

func (u *applicationUsecase) ownsJob(ctx context.Context, userID string, jobID int64) bool {
	employer, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil || employer == nil {
		return false
	}
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil || job == nil {
		return false
	}
	return job.EmployerID == employer.ID
}
