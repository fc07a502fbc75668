package v1

import (
	"net/http"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	CandidateUC   domain.CandidateUsecase
	EmployerUC    domain.EmployerUsecase
	ApplicationUC domain.ApplicationUsecase
	SiteContentUC domain.SiteContentUsecase
	AdminUC       domain.AdminUsecase
	ResumeStore   *storage.ResumeStore
	JWKSProvider  *auth.Provider
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.Timeout(deps.Config.RequestTimeout))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Readiness probe: checks the dependencies that can degrade silently.
	// Redis being down is reported but not fatal (rate limiting falls back
	// to in-memory); storage being down is.
	v1.GET("/health/ready", func(c *gin.Context) {
		checks := gin.H{"storage": "ok", "redis": "ok"}

		if err := deps.ResumeStore.HealthCheck(c.Request.Context()); err != nil {
			checks["storage"] = err.Error()
			response.Error(c, http.StatusServiceUnavailable, "Storage unreachable", "internal")
			return
		}
		if err := redis.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = "degraded: " + err.Error()
		}

		response.Success(c, http.StatusOK, "Ready", checks)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewCandidateHandler(protected, deps.CandidateUC, deps.ResumeStore)
		NewEmployerHandler(protected, deps.EmployerUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewSiteContentHandler(v1, protected, deps.SiteContentUC)
		NewAdminHandler(protected, deps.AdminUC, deps.JobUC)
	}

	return r
}
