package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainit-backend/internal/api/middleware"
	"trainit-backend/internal/api/routes"
	"trainit-backend/internal/config"
	"trainit-backend/internal/database"
	apperrors "trainit-backend/internal/errors"
	"trainit-backend/internal/logger"
	"trainit-backend/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "trainit-backend/docs" // This is needed for swag
)

//	@title			TrainIt API
//	@version		1.0
//	@description	Backend API for TrainIt, an animal training plan tracker. Trainers belong to an organization and share its animals, training plans, plan steps, session notes and time logs.

//	@contact.name	TrainIt Support
//	@contact.url	https://train-it.app

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		if apperrors.IsConfiguration(err) {
			log.Fatal("Invalid configuration: ", err)
		}
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	// Initialize database
	dbOptions := &database.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
		SkipMigrate:  !cfg.DBAutoMigrate,
	}
	if cfg.LogLevel == "debug" {
		dbOptions.LogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOptions)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Rate limiting is optional; a nil limiter leaves signup and login unthrottled
	var limiter middleware.Limiter
	if cfg.RedisURL != "" {
		rl, err := ratelimit.NewRateLimiter(ctx, cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Redis unavailable, auth rate limiting disabled")
		} else {
			defer rl.Close()
			limiter = rl
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg, limiter)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
