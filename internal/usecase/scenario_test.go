package usecase_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestHiringFlow walks the whole employer/candidate story through the job
// and application usecases against shared stateful mocks: post a job, apply,
// review, accept, undo back to pending, deactivate, and verify a late
// applicant is turned away.
func TestHiringFlow(t *testing.T) {
	jobRepo := new(MockJobRepo)
	empRepo := new(MockEmployerRepo)
	candRepo := new(MockCandidateRepo)
	appRepo := new(MockApplicationRepo)

	jobUC := usecase.NewJobUsecase(jobRepo, empRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, candRepo, empRepo)

	employerCtx := ctxWith("emp1", domain.RoleEmployer)
	candidateCtx := ctxWith("cand1", domain.RoleCandidate)
	lateCtx := ctxWith("cand2", domain.RoleCandidate)

	empRepo.On("GetByUserID", mock.Anything, "emp1").
		Return(&domain.EmployerProfile{ID: 5, UserID: "emp1", CompanyName: "Acme"}, nil)
	candRepo.On("GetByUserID", mock.Anything, "cand1").
		Return(&domain.CandidateProfile{ID: 10, UserID: "cand1", ResumeURL: strPtr("https://cdn.example.com/cv1.pdf")}, nil)
	candRepo.On("GetByUserID", mock.Anything, "cand2").
		Return(&domain.CandidateProfile{ID: 11, UserID: "cand2", ResumeURL: strPtr("https://cdn.example.com/cv2.pdf")}, nil)

	// The posting's backing row; mocks hand out this pointer so state
	// changes are visible to later steps.
	posted := &domain.Job{ID: 1, EmployerID: 5, IsActive: true}
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).
		Return(nil).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Job).ID = 1
		})
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(posted, nil)
	jobRepo.On("SetActive", mock.Anything, int64(1), false).
		Return(nil).
		Run(func(args mock.Arguments) {
			posted.IsActive = false
		})

	application := &domain.Application{ID: 7, JobID: 1, CandidateID: 10, Status: domain.ApplicationStatusPending}
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(nil).Once().
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Application).ID = 7
		})
	appRepo.On("GetByID", mock.Anything, int64(7)).Return(application, nil)
	appRepo.On("GetByJobID", mock.Anything, int64(1)).
		Return([]domain.Application{*application}, nil)
	appRepo.On("UpdateStatus", mock.Anything, int64(7), mock.AnythingOfType("string")).
		Return(nil).
		Run(func(args mock.Arguments) {
			application.Status = args.String(2)
		})

	// Employer posts the job
	job := &domain.Job{
		Title:       "Backend Engineer",
		Description: "Build the job board",
		Location:    "Remote",
		JobType:     domain.JobTypeFullTime,
	}
	assert.NoError(t, jobUC.CreateJob(employerCtx, "emp1", job))
	assert.True(t, job.IsActive)

	// Candidate applies and lands in pending
	app, err := appUC.Apply(candidateCtx, "cand1", 1, "hello")
	assert.NoError(t, err)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)

	// A second submit from the same candidate conflicts
	appRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).
		Return(domain.ErrDuplicate).Once()
	_, err = appUC.Apply(candidateCtx, "cand1", 1, "hello again")
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	// Employer reviews the applicant list
	apps, err := appUC.ListByJob(employerCtx, "emp1", 1)
	assert.NoError(t, err)
	assert.Len(t, apps, 1)

	// Accept, then change their mind back to pending
	assert.NoError(t, appUC.UpdateStatus(employerCtx, "emp1", 7, domain.ApplicationStatusAccepted))
	assert.Equal(t, domain.ApplicationStatusAccepted, application.Status)
	assert.NoError(t, appUC.UpdateStatus(employerCtx, "emp1", 7, domain.ApplicationStatusPending))
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)

	// The candidate still sees their application but cannot touch its status
	got, err := appUC.GetApplication(candidateCtx, "cand1", 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	err = appUC.UpdateStatus(candidateCtx, "cand1", 7, domain.ApplicationStatusRejected)
	assert.True(t, apperror.IsKind(err, apperror.KindForbidden))

	// Employer deactivates the posting; the pending application survives
	assert.NoError(t, jobUC.SetJobActive(employerCtx, "emp1", 1, false))
	assert.False(t, posted.IsActive)
	assert.Equal(t, domain.ApplicationStatusPending, application.Status)

	// A late candidate is turned away by the inactive posting
	_, err = appUC.Apply(lateCtx, "cand2", 1, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no longer accepting applications")
}
