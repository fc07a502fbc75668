package middleware

import (
	"context"
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the gin context into the JSON
// envelope. Typed AppErrors keep their kind and status; a breached request
// deadline becomes a typed timeout; anything else is logged server-side
// and returned as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, string(appErr.Kind))
			return
		}

		if errors.Is(err, context.DeadlineExceeded) || c.Request.Context().Err() == context.DeadlineExceeded {
			response.Error(c, http.StatusGatewayTimeout,
				"The request timed out. Please try again.", string(apperror.KindTimeout))
			return
		}

		logger.Log.Error("unhandled error",
			"error", err.Error(),
			"path", c.FullPath(),
			"method", c.Request.Method,
		)
		response.Error(c, http.StatusInternalServerError,
			"An unexpected error occurred. Please try again later.", string(apperror.KindInternal))
	}
}
