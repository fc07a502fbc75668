package usecase_test

import (
	"context"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newApplicationFixture() (*MockApplicationRepo, *MockJobRepo, *MockCandidateRepo, *MockEmployerRepo, domain.ApplicationUsecase) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	candRepo := new(MockCandidateRepo)
	empRepo := new(MockEmployerRepo)
	uc := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo, empRepo)
	return appRepo, jobRepo, candRepo, empRepo, uc
}

func TestApplyPreconditions(t *testing.T) {
	t.Run("Should reject non-candidates", func(t *testing.T) {
		_, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		_, err := uc.Apply(ctx, "emp1", 1, "")
		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		_, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("new_user", domain.RoleUnknown)
		_, err := uc.Apply(ctx, "new_user", 1, "")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Should require a candidate profile", func(t *testing.T) {
		_, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, "cand1", 1, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Complete your candidate profile")
	})

	t.Run("Should require a resume on file", func(t *testing.T) {
		_, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: 10, UserID: "cand1"}, nil)

		_, err := uc.Apply(ctx, "cand1", 1, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "resume is required")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Should reject inactive jobs", func(t *testing.T) {
		_, jobRepo, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: 10, UserID: "cand1", ResumeURL: strPtr("https://cdn.example.com/cv.pdf")}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: false}, nil)

		_, err := uc.Apply(ctx, "cand1", 1, "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting applications")
	})

	t.Run("Should return 404 for a missing job", func(t *testing.T) {
		_, jobRepo, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: 10, UserID: "cand1", ResumeURL: strPtr("https://cdn.example.com/cv.pdf")}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, "cand1", 99, "")
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestApplyDuplicate(t *testing.T) {
	appRepo, jobRepo, candRepo, _, uc := newApplicationFixture()

	ctx := ctxWith("cand1", domain.RoleCandidate)
	candRepo.On("GetByUserID", mock.Anything, "cand1").
		Return(&domain.CandidateProfile{ID: 10, UserID: "cand1", ResumeURL: strPtr("https://cdn.example.com/cv.pdf")}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(domain.ErrDuplicate)

	_, err := uc.Apply(ctx, "cand1", 1, "hello")
	assert.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.Contains(t, err.Error(), "already applied")
}

func TestApplySuccess(t *testing.T) {
	appRepo, jobRepo, candRepo, _, uc := newApplicationFixture()

	ctx := ctxWith("cand1", domain.RoleCandidate)
	candRepo.On("GetByUserID", mock.Anything, "cand1").
		Return(&domain.CandidateProfile{ID: 10, UserID: "cand1", ResumeURL: strPtr("https://cdn.example.com/cv.pdf")}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Job{ID: 1, EmployerID: 5, IsActive: true}, nil)
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(nil).
		Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, int64(10), app.CandidateID)
			assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		})

	app, err := uc.Apply(ctx, "cand1", 1, "cover letter")
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.NotNil(t, app.CoverLetter)
}

func TestGetMyApplicationsEmptyState(t *testing.T) {
	t.Run("Missing profile means empty list, not error", func(t *testing.T) {
		_, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").Return(nil, domain.ErrNotFound)

		apps, err := uc.GetMyApplications(ctx, "cand1")
		assert.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("Existing profile returns applications", func(t *testing.T) {
		appRepo, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		candRepo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: 10, UserID: "cand1"}, nil)
		appRepo.On("GetByCandidateID", mock.Anything, int64(10)).
			Return([]domain.Application{{ID: 1, JobID: 1, CandidateID: 10, Status: "pending"}}, nil)

		apps, err := uc.GetMyApplications(ctx, "cand1")
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})
}

func TestListByJobAuthorization(t *testing.T) {
	t.Run("Owning employer lists applicants", func(t *testing.T) {
		appRepo, jobRepo, _, empRepo, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)
		appRepo.On("GetByJobID", mock.Anything, int64(1)).
			Return([]domain.Application{{ID: 1, JobID: 1}}, nil)

		apps, err := uc.ListByJob(ctx, "emp1", 1)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Non-owning employer is denied", func(t *testing.T) {
		_, jobRepo, _, empRepo, uc := newApplicationFixture()

		ctx := ctxWith("emp2", domain.RoleEmployer)
		empRepo.On("GetByUserID", mock.Anything, "emp2").
			Return(&domain.EmployerProfile{ID: 6, UserID: "emp2"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)

		_, err := uc.ListByJob(ctx, "emp2", 1)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Candidate is denied", func(t *testing.T) {
		_, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		_, err := uc.ListByJob(ctx, "cand1", 1)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Admin lists any job's applicants", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("admin1", domain.RoleAdmin)
		appRepo.On("GetByJobID", mock.Anything, int64(1)).
			Return([]domain.Application{}, nil)

		_, err := uc.ListByJob(ctx, "admin1", 1)
		assert.NoError(t, err)
	})
}

func TestGetApplicationVisibility(t *testing.T) {
	stored := &domain.Application{ID: 7, JobID: 1, CandidateID: 10, Status: "pending"}

	t.Run("Applying candidate sees own application", func(t *testing.T) {
		appRepo, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
		candRepo.On("GetByUserID", mock.Anything, "cand1").
			Return(&domain.CandidateProfile{ID: 10, UserID: "cand1"}, nil)

		app, err := uc.GetApplication(ctx, "cand1", 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), app.ID)
	})

	t.Run("Another candidate is denied", func(t *testing.T) {
		appRepo, _, candRepo, _, uc := newApplicationFixture()

		ctx := ctxWith("cand2", domain.RoleCandidate)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
		candRepo.On("GetByUserID", mock.Anything, "cand2").
			Return(&domain.CandidateProfile{ID: 11, UserID: "cand2"}, nil)

		_, err := uc.GetApplication(ctx, "cand2", 7)
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Job-owning employer sees it", func(t *testing.T) {
		appRepo, jobRepo, _, empRepo, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)

		_, err := uc.GetApplication(ctx, "emp1", 7)
		assert.NoError(t, err)
	})
}

func TestUpdateStatus(t *testing.T) {
	stored := &domain.Application{ID: 7, JobID: 1, CandidateID: 10, Status: "accepted"}

	t.Run("Should reject unknown status values", func(t *testing.T) {
		_, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		err := uc.UpdateStatus(ctx, "emp1", 7, "withdrawn")
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Candidate never writes status, even on own application", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("cand1", domain.RoleCandidate)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)

		err := uc.UpdateStatus(ctx, "cand1", 7, "accepted")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
	})

	t.Run("Owning employer resets an accepted application to pending", func(t *testing.T) {
		appRepo, jobRepo, _, empRepo, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp1").
			Return(&domain.EmployerProfile{ID: 5, UserID: "emp1"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)
		appRepo.On("UpdateStatus", mock.Anything, int64(7), "pending").Return(nil)

		err := uc.UpdateStatus(ctx, "emp1", 7, "pending")
		assert.NoError(t, err)
		appRepo.AssertCalled(t, "UpdateStatus", mock.Anything, int64(7), "pending")
	})

	t.Run("Non-owning employer is denied", func(t *testing.T) {
		appRepo, jobRepo, _, empRepo, uc := newApplicationFixture()

		ctx := ctxWith("emp2", domain.RoleEmployer)
		appRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)
		empRepo.On("GetByUserID", mock.Anything, "emp2").
			Return(&domain.EmployerProfile{ID: 6, UserID: "emp2"}, nil)
		jobRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Job{ID: 1, EmployerID: 5}, nil)

		err := uc.UpdateStatus(ctx, "emp2", 7, "rejected")
		assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing application returns 404", func(t *testing.T) {
		appRepo, _, _, _, uc := newApplicationFixture()

		ctx := ctxWith("emp1", domain.RoleEmployer)
		appRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.UpdateStatus(ctx, "emp1", 99, "accepted")
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestUpdateStatusUnauthenticated(t *testing.T) {
	appRepo, _, _, _, uc := newApplicationFixture()

	appRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Application{ID: 7, JobID: 1, CandidateID: 10}, nil)

	// No identity keys in context at all
	err := uc.UpdateStatus(context.Background(), "", 7, "accepted")
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
}
