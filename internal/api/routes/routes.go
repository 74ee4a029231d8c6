package routes

import (
	"fmt"
	"net/http"
	"time"

	"trainit-backend/internal/api/handlers"
	"trainit-backend/internal/api/middleware"
	"trainit-backend/internal/auth"
	"trainit-backend/internal/config"
	"trainit-backend/internal/repository"
	"trainit-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// authRateWindow is the window AUTH_RATE_LIMIT is counted over
const authRateWindow = time.Minute

// SetupRoutes configures all the routes for the application.
// limiter may be nil, which disables rate limiting on signup and login.
func SetupRoutes(db *gorm.DB, cfg *config.Config, limiter middleware.Limiter) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Metrics live on their own registry so every router gets fresh collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := middleware.NewHTTPMetrics(registry)

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(httpMetrics.Handler())

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	planRepo := repository.NewTrainingPlanRepository(db)
	stepRepo := repository.NewPlanStepRepository(db)
	noteRepo := repository.NewStepSessionNoteRepository(db)
	timeLogRepo := repository.NewTimeLogRepository(db)

	// Initialize services
	access := service.NewOwnershipVerifier(userRepo, animalRepo, planRepo, stepRepo, noteRepo)
	animalService := service.NewAnimalService(animalRepo, access, validator)
	planService := service.NewTrainingPlanService(planRepo, access, validator)
	stepService := service.NewPlanStepService(stepRepo, noteRepo, access, validator)
	timeLogService := service.NewTimeLogService(timeLogRepo, access, validator)

	// Initialize auth
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	animalHandler := handlers.NewAnimalHandler(animalService)
	planHandler := handlers.NewTrainingPlanHandler(planService)
	stepHandler := handlers.NewPlanStepHandler(stepService)
	timeLogHandler := handlers.NewTimeLogHandler(timeLogService)

	// Public routes
	router.GET("/", handlers.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/signup", middleware.RateLimit(limiter, "signup", cfg.AuthRateLimit, authRateWindow), authHandler.Signup)
		authRoutes.POST("/login", middleware.RateLimit(limiter, "login", cfg.AuthRateLimit, authRateWindow), authHandler.Login)
		authRoutes.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Everything below requires a bearer token
	protected := router.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Animal routes
		animals := protected.Group("/animals")
		{
			animals.GET("", animalHandler.ListAnimals)
			animals.POST("", animalHandler.CreateAnimal)
			animals.GET("/:id", animalHandler.GetAnimal)
			animals.PUT("/:id", animalHandler.UpdateAnimal)
			animals.DELETE("/:id", animalHandler.DeleteAnimal)
		}

		// Training plan and time log routes
		plans := protected.Group("/plans")
		{
			plans.GET("", planHandler.ListPlans)
			plans.POST("/animal/:id", planHandler.CreatePlanForAnimal)
			plans.GET("/animal/:id", planHandler.ListPlansForAnimal)
			plans.POST("/log", timeLogHandler.CreateLog)
			plans.GET("/logs", timeLogHandler.ListLogs)
			plans.GET("/stats", timeLogHandler.Stats)
			plans.GET("/:id", planHandler.GetPlan)
			plans.PUT("/:id", planHandler.UpdatePlan)
			plans.DELETE("/:id", planHandler.DeletePlan)
		}

		// Plan step and session note routes
		steps := protected.Group("/steps")
		{
			steps.PUT("/:id", stepHandler.UpdateStep)
			steps.DELETE("/:id", stepHandler.DeleteStep)
			steps.POST("/:id/complete", stepHandler.CompleteStep)
			steps.POST("/:id/notes", stepHandler.AddNote)
			steps.GET("/:id/notes", stepHandler.ListNotes)
			steps.PUT("/notes/:id", stepHandler.UpdateNote)
			steps.DELETE("/notes/:id", stepHandler.DeleteNote)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
