package main

import (
	"fitlog-be/internal/cache"
	"fitlog-be/internal/config"
	"fitlog-be/internal/controllers"
	"fitlog-be/internal/database"
	"fitlog-be/internal/middleware"
	"fitlog-be/internal/repository"
	"fitlog-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logrus.Warnf("Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			logrus.Info("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, userRepo, cacheClient)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	exerciseController := controllers.NewExerciseController(exerciseService)

	// Initialize rate limiter for the API surface
	apiRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Create a Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logrus.StandardLogger()))
	router.Use(middleware.CORS())

	// Static landing page and assets
	router.StaticFile("/", "./views/index.html")
	router.Static("/public", "./public")

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Exercise API routes with rate limiting
	api := router.Group("/api/exercise")
	api.Use(apiRateLimiter.LimitMiddleware())
	{
		api.POST("/new-user", userController.CreateUser)
		api.GET("/users", userController.ListUsers)
		api.POST("/add", exerciseController.AddExercise)
		api.GET("/log", exerciseController.GetLog)
	}

	// Any unmatched route renders a plain-text 404
	router.NoRoute(controllers.NotFound)

	logrus.Infof("Server starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}
