// @title QuizLog API
// @version 1.0
// @description Quiz attempt scoring and statistics service.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"quizlog/internal/adapter"
	"quizlog/internal/cache"
	"quizlog/internal/config"
	"quizlog/internal/database"
	"quizlog/internal/domain"
	"quizlog/internal/handler"
	"quizlog/internal/logger"
	"quizlog/internal/middleware"
	"quizlog/internal/repository"
	"quizlog/internal/service"
	"quizlog/internal/validation"
	"strconv"
	"syscall"
	"time"

	_ "quizlog/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	tagRepository := repository.NewTagDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize Redis. A missing Redis only disables the statistics
	// snapshot cache; everything else keeps working.
	var cacheAdapter domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, statistics caching disabled", zap.Error(err))
	} else {
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	}

	// Initialize services
	statisticsService := service.NewStatisticsService(attemptRepository, cacheAdapter, cfg)
	quizService := service.NewQuizService(quizRepository)
	questionService := service.NewQuestionService(quizRepository)
	tagService := service.NewTagService(tagRepository)
	attemptService := service.NewAttemptService(quizRepository, attemptRepository, txManager, statisticsService)

	// Initialize handlers
	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService, questionService, validator)
	tagHandler := handler.NewTagHandler(tagService, validator)
	attemptHandler := handler.NewAttemptHandler(attemptService, validator)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	apiGroup := app.Group("/api")

	// Quiz routes
	apiGroup.Get("/quizzes", quizHandler.ListQuizzes)
	apiGroup.Post("/quizzes", quizHandler.CreateQuiz)
	apiGroup.Get("/quizzes/:id", quizHandler.GetQuiz)
	apiGroup.Put("/quizzes/:id", quizHandler.UpdateQuiz)
	apiGroup.Delete("/quizzes/:id", quizHandler.DeleteQuiz)
	apiGroup.Post("/quizzes/:id/questions", quizHandler.CreateQuestion)
	apiGroup.Put("/questions/:id", quizHandler.UpdateQuestion)
	apiGroup.Delete("/questions/:id", quizHandler.DeleteQuestion)

	// Tag routes
	apiGroup.Get("/tags", tagHandler.ListTags)
	apiGroup.Post("/tags", tagHandler.CreateTag)

	// Attempt and statistics routes
	apiGroup.Post("/attempts", attemptHandler.SubmitAttempt)
	apiGroup.Get("/attempts", attemptHandler.ListAttempts)
	apiGroup.Get("/statistics", statisticsHandler.GetStatistics)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
