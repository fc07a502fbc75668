package usecase_test

import (
	"context"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	return m.Called(ctx, id, role).Error(0)
}
func (m *MockProfileRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}
func (m *MockCandidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCandidateRepo) SetResumeURL(ctx context.Context, userID string, resumeURL string) error {
	return m.Called(ctx, userID, resumeURL).Error(0)
}

type MockEmployerRepo struct {
	mock.Mock
}

func (m *MockEmployerRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) GetByID(ctx context.Context, id int64) (*domain.EmployerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployerProfile), args.Error(1)
}
func (m *MockEmployerRepo) Upsert(ctx context.Context, profile *domain.EmployerProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithEmployer), args.Error(1)
}
func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	args := m.Called(ctx, limit, offset)
	var jobs []domain.JobWithEmployer
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobWithEmployer)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByEmployerID(ctx context.Context, employerID int64, limit, offset int) ([]domain.Job, int64, error) {
	args := m.Called(ctx, employerID, limit, offset)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.JobWithEmployer, int64, error) {
	args := m.Called(ctx, limit, offset)
	var jobs []domain.JobWithEmployer
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.JobWithEmployer)
	}
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) SetActive(ctx context.Context, id int64, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByCandidateID(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	args := m.Called(ctx, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockSiteContentRepo struct {
	mock.Mock
}

func (m *MockSiteContentRepo) GetBySectionKey(ctx context.Context, sectionKey string) (*domain.SiteContent, error) {
	args := m.Called(ctx, sectionKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteContent), args.Error(1)
}
func (m *MockSiteContentRepo) Upsert(ctx context.Context, content *domain.SiteContent) error {
	return m.Called(ctx, content).Error(0)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetStats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) ListProfiles(ctx context.Context, role domain.Role, page, pageSize int) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, role, page, pageSize)
	var profiles []domain.Profile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.Profile)
	}
	return profiles, args.Get(1).(int64), args.Error(2)
}

// ctxWith builds a request context carrying an authenticated principal.
func ctxWith(userID string, role domain.Role) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, string(role))
}

func strPtr(s string) *string { return &s }
