package domain

import (
	"context"
	"time"
)

// Role determines what a principal may see and do. RoleUnknown is a
// legitimate transient state: a freshly signed-up principal whose profile
// row has not been provisioned yet resolves to it, and callers must
// degrade gracefully instead of failing.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
	RoleUnknown   Role = "unknown"
)

// ParseRole maps a stored role string to a Role, defaulting to RoleUnknown.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return Role(s)
	default:
		return RoleUnknown
	}
}

// Profile is the role-bearing record attached 1:1 to an authenticated
// principal. Its ID equals the principal's auth UUID.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	UpdateRole(ctx context.Context, id string, role Role) error
	// Delete removes the profile row; the schema cascades to the
	// role-specific profile and everything hanging off it.
	Delete(ctx context.Context, id string) error
}

// AuthUsecase resolves authenticated principals to roles and owns the
// admin-only role mutations.
type AuthUsecase interface {
	// Resolve returns the profile and role for a principal. A missing
	// profile row resolves to (nil, RoleUnknown, nil) - not an error.
	Resolve(ctx context.Context, principalID string) (*Profile, Role, error)
	// EnsureProfile idempotently creates the profile row on first
	// authenticated contact, standing in for the signup trigger.
	EnsureProfile(ctx context.Context, profile *Profile) error
	AssignRole(ctx context.Context, userID string, role Role) error
	UpdateOwnProfile(ctx context.Context, profile *Profile) error
}
