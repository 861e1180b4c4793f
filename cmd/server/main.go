package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"litmark/internal/auth"
	"litmark/internal/config"
	"litmark/internal/handler"
	"litmark/internal/middleware"
	"litmark/internal/repository/postgres"
	"litmark/internal/service"
	"litmark/internal/storage"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"app", cfg.AppName,
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	ctx := context.Background()

	// Apply schema migrations before accepting traffic
	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create object store for image uploads
	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create object store: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	chipRepo := postgres.NewChipRepository(repoConfig)
	imageRepo := postgres.NewImageRepository(repoConfig)
	tokenRepo := postgres.NewRefreshTokenRepository(repoConfig)

	// Token manager for minting and verifying access tokens
	tokens := auth.NewTokenManager([]byte(cfg.AccessTokenSecret), cfg.AccessTokenTTL)

	// Create services
	validator := service.NewResourceValidator(folderRepo)
	imageService := service.NewImageService(imageRepo, store, cfg.DefaultImageURL, logger)
	folderService := service.NewFolderService(folderRepo, chipRepo, imageService, validator, logger)
	chipService := service.NewChipService(chipRepo, validator, logger)
	userService := service.NewUserService(userRepo, tokenRepo, imageService, logger)
	authService := service.NewAuthService(userRepo, tokenRepo, tokens, cfg.RefreshTokenTTL, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	folderHandler := handler.NewFolderHandler(folderService, imageService, logger)
	chipHandler := handler.NewChipHandler(chipService, logger)
	imageHandler := handler.NewImageHandler(imageService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Auth routes (public)
	mux.Handle("POST /api/auth/register", middleware.ValidateBody(handler.RegisterSchema)(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", middleware.ValidateBody(handler.LoginSchema)(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /api/auth/refresh", middleware.ValidateBody(handler.RefreshSchema)(http.HandlerFunc(authHandler.Refresh)))

	// User routes
	mux.HandleFunc("POST /api/user", userHandler.Create)
	mux.HandleFunc("GET /api/user/{id}", userHandler.Get)
	mux.Handle("PATCH /api/user/{id}", middleware.ValidateBody(handler.UpdateUserSchema)(http.HandlerFunc(userHandler.Update)))
	mux.HandleFunc("DELETE /api/user/{id}", userHandler.Delete)

	// Folder routes
	mux.HandleFunc("GET /api/folder", folderHandler.List)
	mux.HandleFunc("GET /api/folder/{id}", folderHandler.Get)
	mux.Handle("POST /api/folder", middleware.ValidateBody(handler.CreateFolderSchema)(http.HandlerFunc(folderHandler.Create)))
	mux.Handle("PATCH /api/folder/{id}", middleware.ValidateBody(handler.UpdateFolderSchema)(http.HandlerFunc(folderHandler.Update)))
	mux.HandleFunc("DELETE /api/folder/{id}", folderHandler.Delete)

	// Chip routes
	mux.HandleFunc("GET /api/chip", chipHandler.List)
	mux.HandleFunc("GET /api/chip/{id}", chipHandler.Get)
	mux.Handle("POST /api/chip", middleware.ValidateBody(handler.CreateChipSchema)(http.HandlerFunc(chipHandler.Create)))
	mux.Handle("PATCH /api/chip/{id}", middleware.ValidateBody(handler.UpdateChipSchema)(http.HandlerFunc(chipHandler.Update)))
	mux.HandleFunc("DELETE /api/chip/{id}", chipHandler.Delete)

	// Image routes
	mux.HandleFunc("GET /api/image", imageHandler.List)
	mux.HandleFunc("POST /api/image", imageHandler.Upload)

	// Fallback for unmatched routes
	mux.HandleFunc("/", handler.NotFound)

	// Build middleware chain; applied in reverse order (they wrap each other)
	// Order: CORS, Recovery, KnownRoutes, Auth, routes
	var h http.Handler = mux
	h = middleware.Auth(tokens, "/api/auth/", "/health")(h)
	// Unmatched paths get the fixed 404 before the auth guard runs
	h = middleware.KnownRoutes(mux, http.HandlerFunc(handler.NotFound))(h)
	h = middleware.Recovery(logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
