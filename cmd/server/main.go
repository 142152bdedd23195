package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/news-comments-api/internal/api"
	"github.com/news-comments-api/internal/auth"
	"github.com/news-comments-api/internal/config"
	"github.com/news-comments-api/internal/database"
	"github.com/news-comments-api/internal/repository"
	"github.com/news-comments-api/internal/search"
	"github.com/news-comments-api/internal/service"
	"github.com/news-comments-api/internal/session"
	"github.com/news-comments-api/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting news comments API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize session store (in-process; swap for a shared store when
	// running more than one instance)
	sessions := session.NewMemoryStore()

	// Initialize OIDC provider client
	verifier := auth.NewHS256Verifier(cfg.OIDC.ClientSecret, cfg.OIDC.Issuer, cfg.OIDC.ClientID)
	oidc := auth.NewProviderClient(cfg.OIDC, verifier, log)
	defer oidc.Close()

	// Initialize article search client
	searchClient := search.NewClient(cfg.Search, log)
	defer searchClient.Close()

	// Initialize services
	authorizer := auth.NewRoleAuthorizer(cfg.Session.ModeratorEmails)
	services := service.NewServices(repos, authorizer, log)

	// Initialize router
	router := api.NewRouter(services, sessions, oidc, searchClient, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
