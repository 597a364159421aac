package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itspb-ux/AccessHire/config"
	_ "github.com/itspb-ux/AccessHire/docs" // Important for Swagger
	v1 "github.com/itspb-ux/AccessHire/internal/delivery/http/v1"
	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/internal/repository/cache"
	"github.com/itspb-ux/AccessHire/internal/repository/memory"
	"github.com/itspb-ux/AccessHire/internal/repository/postgres"
	"github.com/itspb-ux/AccessHire/internal/usecase"
	"github.com/itspb-ux/AccessHire/pkg/database"
	"github.com/itspb-ux/AccessHire/pkg/logger"
	"github.com/itspb-ux/AccessHire/pkg/redis"
	"github.com/itspb-ux/AccessHire/pkg/security"
	"github.com/itspb-ux/AccessHire/pkg/validation"
)

// @title           AccessHire API
// @version         1.0
// @description     Accessible job discovery, sign-up form validation and employer toolkit.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting AccessHire API", "port", cfg.Port)

	audit := security.InitSecurityLogger(cfg.ServiceName, security.Environment())
	defer func() { _ = audit.Sync() }()

	// 3. Load Catalog
	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logger.Log.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional)
	var redisCheck func(ctx context.Context) error
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory fallbacks", "error", err)
		} else {
			defer func() { _ = redis.Close() }()
		}
		redisCheck = redis.HealthCheck
	}

	// 5. Setup Repositories
	var listingRepo domain.ListingRepository
	listingSource := "memory"
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(context.Background(), cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		listingRepo = postgres.NewListingRepository(dbPool)
		listingSource = "postgres"

		if rdb := redis.Client(); rdb != nil && cfg.ListingCacheTTLSeconds > 0 {
			listingRepo = cache.NewListingCache(listingRepo, rdb, time.Duration(cfg.ListingCacheTTLSeconds)*time.Second)
			listingSource = "postgres+redis"
		}
	} else {
		listingRepo = memory.NewListingRepository(catalog.Listings)
	}
	toolkitRepo := memory.NewToolkitRepository(catalog.Dashboard.Stats, catalog.Dashboard.Checklist, catalog.Dashboard.Resources)

	// 6. Setup UseCases
	formValidator := validation.NewFormValidator(catalog.FormSchema(), validation.NewValidator(), cfg.FormStrictValidation)
	listingUC := usecase.NewListingUsecase(listingRepo, catalog.Facets)
	formUC := usecase.NewFormUsecase(formValidator, audit)
	employerUC := usecase.NewEmployerUsecase(toolkitRepo, listingRepo)
	healthUC := usecase.NewHealthUsecase(listingSource, redisCheck)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ListingUC:  listingUC,
		FormUC:     formUC,
		EmployerUC: employerUC,
		HealthUC:   healthUC,
		Config:     cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
