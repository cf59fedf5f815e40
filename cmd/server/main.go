package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "vecitools-backend/internal/api/http"
	"vecitools-backend/internal/config"
	"vecitools-backend/internal/logger"
	"vecitools-backend/internal/repository/postgres"
	"vecitools-backend/internal/security"
	"vecitools-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VeciTools backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize side channels
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	sink := service.NewStoreNotificationSink(store.NotificationRepository)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.ReviewRepository)
	toolSvc := service.NewToolService(store.ToolRepository, store.UserRepository, sink, emailSvc)
	loanSvc := service.NewLoanService(store.LoanRepository, store.ToolRepository, store.UserRepository, store, sink, emailSvc)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.LoanRepository)
	msgSvc := service.NewMessageService(store.MessageRepository, store.UserRepository, sink)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	favSvc := service.NewFavoriteService(store.FavoriteRepository, store.ToolRepository)

	// Initialize Router
	handlers := httpapi.NewHandlers(authSvc, userSvc, toolSvc, loanSvc, reviewSvc, msgSvc, noteSvc, favSvc)
	router := httpapi.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
