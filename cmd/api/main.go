package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board Backend API
// @version         1.0
// @description     Backend for the job board using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err.Error())
	}
	defer redis.Close()

	// 5. Setup Resume Storage
	resumeStore, err := storage.NewResumeStore(context.Background(), storage.Config{
		AccessKeyID:     cfg.StorageAccessKeyID,
		SecretAccessKey: cfg.StorageSecretAccessKey,
		Region:          cfg.StorageRegion,
		Endpoint:        cfg.StorageEndpoint,
		Bucket:          cfg.StorageBucket,
		PublicBaseURL:   cfg.StoragePublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to set up resume storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	siteContentRepo := postgres.NewSiteContentRepository(dbPool)
	adminRepo := postgres.NewAdminRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(profileRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate)
	employerUC := usecase.NewEmployerUsecase(employerRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, candidateRepo, employerRepo)
	siteContentUC := usecase.NewSiteContentUsecase(siteContentRepo)
	adminUC := usecase.NewAdminUsecase(adminRepo, profileRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		CandidateUC:   candidateUC,
		EmployerUC:    employerUC,
		ApplicationUC: applicationUC,
		SiteContentUC: siteContentUC,
		AdminUC:       adminUC,
		ResumeStore:   resumeStore,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
