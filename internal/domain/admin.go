package domain

import "context"

// AdminStats contains dashboard statistics
type AdminStats struct {
	TotalUsers        int64       `json:"totalUsers"`
	UsersByRole       UsersByRole `json:"usersByRole"`
	TotalJobs         int64       `json:"totalJobs"`
	ActiveJobs        int64       `json:"activeJobs"`
	TotalApplications int64       `json:"totalApplications"`
}

type UsersByRole struct {
	Admin     int64 `json:"admin"`
	Employer  int64 `json:"employer"`
	Candidate int64 `json:"candidate"`
}

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// AdminRepository defines admin-specific data access
type AdminRepository interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListProfiles(ctx context.Context, role Role, page, pageSize int) ([]Profile, int64, error)
}

// AdminUsecase defines admin moderation logic. Job moderation goes through
// JobUsecase with the admin role; this covers users and dashboard stats.
type AdminUsecase interface {
	GetStats(ctx context.Context) (*AdminStats, error)
	ListUsers(ctx context.Context, role Role, page, pageSize int) (*PaginatedResult[Profile], error)
	UpdateUserRole(ctx context.Context, userID string, role Role) (*Profile, error)
	// DeleteUser removes the profile row; the schema cascades through
	// the role profile, its jobs, and their applications. One path, no
	// partial fallback.
	DeleteUser(ctx context.Context, userID string) error
}
