package deadline

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/pkg/apperror"
)

// Call runs fn with a bounded context. A deadline breach yields a typed
// timeout error rather than silence, and the caller decides whether to
// retry; nothing here retries on its own.
func Call(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}
	return Translate(ctx, err)
}

// Translate maps a context deadline breach to apperror.Timeout, leaving
// other errors untouched. Handlers use it for errors that bubbled up from
// a request-scoped deadline rather than a Call-scoped one.
func Translate(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperror.Timeout("The operation timed out. Please try again.")
	}
	return err
}
