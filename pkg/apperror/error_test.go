package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapKindAndStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *apperror.AppError
		kind apperror.Kind
		code int
	}{
		{"bad request", apperror.BadRequest("x"), apperror.KindValidation, http.StatusBadRequest},
		{"unauthorized", apperror.Unauthorized("x"), apperror.KindUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperror.Forbidden("x"), apperror.KindForbidden, http.StatusForbidden},
		{"not found", apperror.NotFound("x"), apperror.KindNotFound, http.StatusNotFound},
		{"conflict", apperror.Conflict("x"), apperror.KindConflict, http.StatusConflict},
		{"timeout", apperror.Timeout("x"), apperror.KindTimeout, http.StatusGatewayTimeout},
		{"internal", apperror.Internal(errors.New("boom")), apperror.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := apperror.Conflict("You have already applied to this job")
	wrapped := fmt.Errorf("apply failed: %w", base)

	assert.True(t, apperror.IsKind(wrapped, apperror.KindConflict))
	assert.False(t, apperror.IsKind(wrapped, apperror.KindNotFound))
	assert.False(t, apperror.IsKind(errors.New("plain"), apperror.KindConflict))
	assert.False(t, apperror.IsKind(nil, apperror.KindConflict))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperror.Internal(cause)

	// The message shown to clients never carries the cause
	assert.Equal(t, "Internal Server Error", err.Error())
	assert.True(t, errors.Is(err, cause))
}
