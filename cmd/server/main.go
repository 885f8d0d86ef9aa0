package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/soumyadiya/portfolio-backend/internal/auth"
	"github.com/soumyadiya/portfolio-backend/internal/config"
	"github.com/soumyadiya/portfolio-backend/internal/handlers"
	"github.com/soumyadiya/portfolio-backend/internal/logger"
	"github.com/soumyadiya/portfolio-backend/internal/middleware"
	"github.com/soumyadiya/portfolio-backend/internal/repositories"
	"github.com/soumyadiya/portfolio-backend/internal/services"
	"github.com/soumyadiya/portfolio-backend/internal/storage"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Portfolio Backend API
// @version 1.0
// @description Content backend for a personal portfolio website

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Portfolio Backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize upload storage
	uploadStorage, err := storage.NewLocalStorage(cfg.Uploads.BasePath)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize upload storage", zap.Error(err))
	}

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	profileRepo := repositories.NewProfileRepository(db, logger.Logger)
	aboutRepo := repositories.NewAboutRepository(db, logger.Logger)
	skillRepo := repositories.NewSkillRepository(db, logger.Logger)
	projectRepo := repositories.NewProjectRepository(db, logger.Logger)
	experienceRepo := repositories.NewExperienceRepository(db, logger.Logger)
	achievementRepo := repositories.NewAchievementRepository(db, logger.Logger)
	contactRepo := repositories.NewContactInfoRepository(db, logger.Logger)
	messageRepo := repositories.NewMessageRepository(db, logger.Logger)
	resumeRepo := repositories.NewResumeRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	profileService := services.NewProfileService(profileRepo, aboutRepo, uploadStorage, logger.Logger)
	portfolioService := services.NewPortfolioService(skillRepo, projectRepo, experienceRepo, achievementRepo, uploadStorage, logger.Logger)
	contactService := services.NewContactService(contactRepo, messageRepo, logger.Logger)
	resumeService := services.NewResumeService(resumeRepo, uploadStorage, logger.Logger)

	// Seed the bootstrap admin account
	if cfg.Admin.Password != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := authService.EnsureAdminUser(ctx, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Email); err != nil {
			logger.Logger.Fatal("Failed to seed admin user", zap.Error(err))
		}
		cancel()
	} else {
		logger.Logger.Warn("ADMIN_PASSWORD not set, skipping admin user seeding")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	profileHandler := handlers.NewProfileHandler(profileService, logger.Logger)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, logger.Logger)
	contactHandler := handlers.NewContactHandler(contactService, logger.Logger)
	resumeHandler := handlers.NewResumeHandler(resumeService, logger.Logger)

	// Initialize auth middleware
	authMiddleware := middleware.AuthMiddleware(tokenGenerator)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(10 * 1024 * 1024)) // 10MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Serve uploaded files
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Uploads.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authMiddleware)
		profileHandler.RegisterRoutes(r, authMiddleware)
		portfolioHandler.RegisterRoutes(r, authMiddleware)
		contactHandler.RegisterRoutes(r, authMiddleware)
		resumeHandler.RegisterRoutes(r, authMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
