package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error so callers (and ultimately the UI) can pick the
// right message: "already applied" is not the same failure as "access denied".
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindForbidden       Kind = "forbidden"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindTimeout         Kind = "timeout"
	KindValidation      Kind = "validation"
	KindInternal        Kind = "internal"
)

type AppError struct {
	Kind    Kind   `json:"kind"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, code int, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(KindValidation, http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthenticated, http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, http.StatusNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(KindConflict, http.StatusConflict, message, nil)
}

func Timeout(message string) *AppError {
	return New(KindTimeout, http.StatusGatewayTimeout, message, nil)
}

func Internal(err error) *AppError {
	return New(KindInternal, http.StatusInternalServerError, "Internal Server Error", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
