package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds every request with a single deadline that all downstream
// calls (database, storage) inherit. A breach surfaces as a typed timeout
// through the error middleware instead of a stuck request; retrying is
// always an explicit new request, never automatic.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
