package usecase_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newJobFixture() (*MockJobRepo, *MockEmployerRepo, domain.JobUsecase) {
	jobRepo := new(MockJobRepo)
	empRepo := new(MockEmployerRepo)
	uc := usecase.NewJobUsecase(jobRepo, empRepo)
	return jobRepo, empRepo, uc
}

func int64Ptr(v int64) *int64 { return &v }

func validJob() *domain.Job {
	return &domain.Job{
		Title:       "Backend Engineer",
		Description: "Build things",
		Location:    "Remote",
		JobType:     domain.JobTypeFullTime,
	}
}

func TestCreateJob(t *testing.T) {
	t.Run("Candidate cannot create jobs", func(t *testing.T) {
		_, _, uc := newJobFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		err := uc.CreateJob(ctx, "cand1", validJob())
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Employer without company profile is rejected", func(t *testing.T) {
		_, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		empRepo.On("GetByUserID", mock.Anything, "emp1").Return(nil, domain.ErrNotFound)

		err := uc.CreateJob(ctx, "emp1", validJob())
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("New jobs are forced active and owned by the caller", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*domain.Job)
				assert.True(t, job.IsActive)
				assert.Equal(t, int64(5), job.EmployerID)
			})

		job := validJob()
		job.IsActive = false // a forged inactive flag is overridden
		job.EmployerID = 999 // a forged owner is overridden

		err := uc.CreateJob(ctx, "emp1", job)
		assert.NoError(t, err)
	})
}

func TestJobValidation(t *testing.T) {
	_, empRepo, uc := newJobFixture()

	ctx := ctxWith("emp1", domain.RoleEmployer)
	empRepo.On("GetByUserID", mock.Anything, "emp1").
		Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)

	t.Run("Rejects missing title", func(t *testing.T) {
		job := validJob()
		job.Title = ""
		err := uc.CreateJob(ctx, "emp1", job)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Rejects unknown job type", func(t *testing.T) {
		job := validJob()
		job.JobType = "Gig"
		err := uc.CreateJob(ctx, "emp1", job)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Rejects salary_min above salary_max", func(t *testing.T) {
		job := validJob()
		job.SalaryMin = int64Ptr(200000)
		job.SalaryMax = int64Ptr(100000)
		err := uc.CreateJob(ctx, "emp1", job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Minimum salary cannot exceed maximum salary")
	})

	t.Run("Rejects negative experience", func(t *testing.T) {
		job := validJob()
		job.ExperienceRequired = -1
		err := uc.CreateJob(ctx, "emp1", job)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Accepts equal salary bounds", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		empRepo2 := new(MockEmployerRepo)
		uc2 := usecase.NewJobUsecase(jobRepo, empRepo2)

		empRepo2.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		job := validJob()
		job.SalaryMin = int64Ptr(100000)
		job.SalaryMax = int64Ptr(100000)
		assert.NoError(t, uc2.CreateJob(ctx, "emp1", job))
	})
}

func TestGetPublicJobVisibility(t *testing.T) {
	inactive := &domain.JobWithEmployer{
		Job:         domain.Job{ID: 1, EmployerID: 5, IsActive: false},
		CompanyName: "Acme",
	}

	t.Run("Inactive job is a 404 for candidates", func(t *testing.T) {
		jobRepo, _, uc := newJobFixture()
		jobRepo.On("GetByIDWithEmployer", mock.Anything, int64(1)).Return(inactive, nil)

		ctx := ctxWith("cand1", domain.RoleCandidate)
		_, err := uc.GetPublicJob(ctx, 1)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Inactive job is a 404 for other employers", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()
		jobRepo.On("GetByIDWithEmployer", mock.Anything, int64(1)).Return(inactive, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp2").
			Return(&domain.EmployerProfile{ID: 6, UserID: "emp2"}, nil)

		ctx := ctxWith("emp2", domain.RoleEmployer)
		_, err := uc.GetPublicJob(ctx, 1)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Owning employer sees own inactive job", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()
		jobRepo.On("GetByIDWithEmployer", mock.Anything, int64(1)).Return(inactive, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)

		ctx := ctxWith("emp1", domain.RoleEmployer)
		job, err := uc.GetPublicJob(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, job.IsActive)
	})

	t.Run("Admin sees any inactive job", func(t *testing.T) {
		jobRepo, _, uc := newJobFixture()
		jobRepo.On("GetByIDWithEmployer", mock.Anything, int64(1)).Return(inactive, nil)

		ctx := ctxWith("admin1", domain.RoleAdmin)
		_, err := uc.GetPublicJob(ctx, 1)
		assert.NoError(t, err)
	})

	t.Run("Active job is visible without auth", func(t *testing.T) {
		jobRepo, _, uc := newJobFixture()
		jobRepo.On("GetByIDWithEmployer", mock.Anything, int64(2)).
			Return(&domain.JobWithEmployer{Job: domain.Job{ID: 2, IsActive: true}}, nil)

		ctx := ctxWith("", domain.RoleUnknown)
		_, err := uc.GetPublicJob(ctx, 2)
		assert.NoError(t, err)
	})
}

func TestSetJobActive(t *testing.T) {
	t.Run("Toggle is idempotent", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)

		// Activating an already-active job succeeds without a write
		err := uc.SetJobActive(ctx, "emp1", 1, true)
		assert.NoError(t, err)
		jobRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Deactivation writes the flag", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("SetActive", mock.Anything, int64(1), false).Return(nil)

		err := uc.SetJobActive(ctx, "emp1", 1, false)
		assert.NoError(t, err)
		jobRepo.AssertCalled(t, "SetActive", mock.Anything, int64(1), false)
	})

	t.Run("Non-owner cannot toggle", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp2", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp2").
			Return(&domain.EmployerProfile{ID: 6, UserID: "emp2"}, nil)

		err := uc.SetJobActive(ctx, "emp2", 1, false)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})
}

func TestUpdateJobOwnership(t *testing.T) {
	t.Run("Ownership cannot be reassigned through update", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).
			Return(nil).
			Run(func(args mock.Arguments) {
				job := args.Get(1).(*domain.Job)
				assert.Equal(t, int64(5), job.EmployerID)
			})

		job := validJob()
		job.ID = 1
		job.EmployerID = 42 // forged

		assert.NoError(t, uc.UpdateJob(ctx, "emp1", job))
	})

	t.Run("Candidate cannot update a job", func(t *testing.T) {
		jobRepo, _, uc := newJobFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)

		job := validJob()
		job.ID = 1
		err := uc.UpdateJob(ctx, "cand1", job)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})
}

func TestDeleteJob(t *testing.T) {
	t.Run("Owner deletes job and repository cascades applications", func(t *testing.T) {
		jobRepo, empRepo, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, uc.DeleteJob(ctx, "emp1", 1))
	})

	t.Run("Missing job returns 404", func(t *testing.T) {
		jobRepo, _, uc := newJobFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.DeleteJob(ctx, "emp1", 99)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestListAllJobsAdminOnly(t *testing.T) {
	_, _, uc := newJobFixture()

	ctx := ctxWith("emp1", domain.RoleEmployer)
	_, _, err := uc.ListAllJobs(ctx, 1, 10)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}

func TestListActiveJobsPagination(t *testing.T) {
	jobRepo, _, uc := newJobFixture()

	// Out-of-range page and size fall back to defaults
	jobRepo.On("FetchActive", mock.Anything, 10, 0).
		Return([]domain.JobWithEmployer{}, int64(0), nil)

	_, _, err := uc.ListActiveJobs(ctxWith("", domain.RoleUnknown), -3, 5000)
	assert.NoError(t, err)
	jobRepo.AssertCalled(t, "FetchActive", mock.Anything, 10, 0)
}
