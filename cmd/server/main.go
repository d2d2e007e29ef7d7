package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stravigo-admin/internal/assets"
	"stravigo-admin/internal/cache"
	"stravigo-admin/internal/config"
	"stravigo-admin/internal/data"
	"stravigo-admin/internal/handler"
	"stravigo-admin/internal/logger"
	"stravigo-admin/internal/render"
	"stravigo-admin/internal/service"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/v2"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, os.Stdout)

	// --- Pre-flight Checks ---
	if cfg.Admin.Passphrase == "" {
		log.Fatal(errors.New("admin passphrase not set"), "Please set a STRAVIGO_ADMIN_PASSPHRASE environment variable.")
	}
	if cfg.DB.DSN == "" {
		log.Fatal(errors.New("database DSN not set"), "Please set a STRAVIGO_DB_DSN environment variable.")
	}

	// --- Database Initialization and Migration ---
	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(cfg.DB.DSN); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB.DSN)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	// --- Session Management Setup ---
	sessionManager := scs.New()
	sessionManager.Store = postgresstore.New(db.DB)
	sessionManager.Lifetime = time.Duration(cfg.Admin.SessionLifetime) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Server.TLS.Enabled

	// --- Cache Initialization ---
	log.Info("Initializing SQLite cache...")
	statsCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer statsCache.Close()
	log.Info("Cache initialized.")

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	leadRepository := data.NewLeadRepository(db)
	caseStudyRepository := data.NewCaseStudyRepository(db)
	insightRepository := data.NewInsightRepository(db)
	jobRepository := data.NewJobRepository(db)

	pageService := service.NewPageService(data.NewPageRepository(db))
	caseStudyService := service.NewCaseStudyService(caseStudyRepository)
	insightService := service.NewInsightService(insightRepository)
	leadService := service.NewLeadService(leadRepository)
	testimonialService := service.NewTestimonialService(data.NewTestimonialRepository(db))
	careersService := service.NewCareersService(jobRepository, data.NewApplicantRepository(db))
	dashboardService := service.NewDashboardService(
		data.NewStats(leadRepository, caseStudyRepository, insightRepository, jobRepository),
		statsCache,
	)

	authHandler := handler.NewAuthHandler(cfg.Admin.Passphrase, sessionManager)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	pageHandler := handler.NewPageHandler(pageService)
	caseStudyHandler := handler.NewCaseStudyHandler(caseStudyService)
	insightHandler := handler.NewInsightHandler(insightService, render.New())
	leadHandler := handler.NewLeadHandler(leadService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	careersHandler := handler.NewCareersHandler(careersService)
	assetHandler := handler.NewAssetHandler(assets.New(cfg.Assets))

	// --- Router Setup ---
	router := handler.NewRouter(
		log,
		sessionManager,
		authHandler,
		dashboardHandler,
		pageHandler,
		caseStudyHandler,
		insightHandler,
		leadHandler,
		testimonialHandler,
		careersHandler,
		assetHandler,
	)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
