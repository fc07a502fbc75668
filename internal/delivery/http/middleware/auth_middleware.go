package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and resolves the principal's
// role from the database. The token's role claim is never trusted - it can
// be stale or just "authenticated".
//
// A valid token whose profile row does not exist yet is NOT rejected: the
// row may simply not be provisioned yet right after signup. Such requests
// proceed with role "unknown" and every role-gated usecase denies them,
// which lets clients render a loading/guest state instead of an error.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized,
				"Authorization header or auth_token cookie required",
				string(apperror.KindUnauthenticated))
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", string(apperror.KindUnauthenticated))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", string(apperror.KindUnauthenticated))
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		_, role, err := authUC.Resolve(c.Request.Context(), sub)
		if err != nil {
			logger.Log.Error("role resolution failed", "error", err.Error(), "user_id", sub)
			response.Error(c, http.StatusInternalServerError,
				"An unexpected error occurred. Please try again later.", string(apperror.KindInternal))
			c.Abort()
			return
		}

		// Set on both the gin context (for handlers using GetString) and the
		// request context (for usecases reading typed keys).
		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), string(role))

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, string(role))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. RoleUnknown never
// matches, so unprovisioned principals are denied with a clear message
// rather than a crash.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := domain.ParseRole(c.GetString(string(domain.KeyUserRole)))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Access denied", string(apperror.KindForbidden))
		c.Abort()
	}
}
