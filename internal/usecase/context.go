package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

// userIDFromCtx returns the authenticated principal's ID, or "" when the
// request is unauthenticated.
func userIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(domain.KeyUserID).(string)
	return id
}

// roleFromCtx returns the resolved role. Missing or unparseable values
// come back as RoleUnknown so guards fail safe instead of panicking.
func roleFromCtx(ctx context.Context) domain.Role {
	role, ok := ctx.Value(domain.KeyUserRole).(string)
	if !ok {
		return domain.RoleUnknown
	}
	return domain.ParseRole(role)
}
