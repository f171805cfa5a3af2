package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	"github.com/commupay/rewards-wallet/internal/domain/usecase/records"
	"github.com/commupay/rewards-wallet/internal/domain/usecase/session"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/database"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/database/migration"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/logger"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/repository"
	timeProvider "github.com/commupay/rewards-wallet/internal/infrastructure/adapter/time"
	"github.com/commupay/rewards-wallet/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Record store configuration
	dbConfig := &database.Config{
		Path:         cfg.Database.Path,
		BusyTimeout:  cfg.Database.BusyTimeout,
		QueryTimeout: cfg.Database.QueryTimeout,
		LogLevel:     cfg.Database.LogLevel,
	}

	tp := timeProvider.NewRealTimeProvider()

	// Open the record store
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	db, err := dbManager.Connect()
	if err != nil {
		appLogger.Error("Failed to open record store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close record store", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// One-time schema creation and seeding
	migrationMgr := migration.NewManager(db, appLogger, tp)
	if err := migrationMgr.Initialize(context.Background()); err != nil {
		appLogger.Error("Failed to initialize record store", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and record store
	userRepo := repository.NewUserRepository(db, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	store := records.NewStore(userRepo, transactionRepo, appLogger)

	// Session controller, with transitions logged through the observer
	// contract the presentation shells rely on
	sessions := session.NewController(store, appLogger)
	sessions.Subscribe(func(state session.State, user *entity.User) {
		fields := map[string]any{"logged_in": state == session.StateLoggedIn}
		if user != nil {
			fields["user_id"] = user.ID
		}
		appLogger.Debug("Session state changed", fields)
	})

	// API handlers
	sessionHandler := handler.NewSessionHandler(sessions, appLogger)
	walletHandler := handler.NewWalletHandler(store, sessions, appLogger)

	// Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, sessionHandler, walletHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Database.Path == "" {
		missingConfigs = append(missingConfigs, "database.path (or CP_DB_PATH environment variable)")
	}
	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
