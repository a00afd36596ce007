// @title SurveyForge API
// @version 1.0
// @description Survey authoring, collection and analytics API.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"surveyforge/internal/adapter"
	"surveyforge/internal/adapter/surveygen"
	"surveyforge/internal/cache"
	"surveyforge/internal/config"
	"surveyforge/internal/domain"
	"surveyforge/internal/handler"
	"surveyforge/internal/logger"
	"surveyforge/internal/middleware"
	"surveyforge/internal/repository"
	"surveyforge/internal/service"
	"surveyforge/internal/store"
	"surveyforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	// Database drivers for the sql storage backends.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
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
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

// newBackend selects the document store backend from configuration.
func newBackend(cfg *config.Config) (store.Backend, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return store.NewMemoryBackend(), nil
	case config.DriverFile:
		return store.NewFileBackend(cfg.Storage.Path), nil
	case config.DriverSQLite:
		return store.NewSQLBackend("sqlite3", cfg.Storage.DSN)
	case config.DriverPostgres:
		return store.NewSQLBackend("postgres", cfg.Storage.DSN)
	case config.DriverRedis:
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisBackend(client), nil
	default:
		return store.NewFileBackend(cfg.Storage.Path), nil
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

	ctx := context.Background()

	// Open the document store on the configured backend.
	backend, err := newBackend(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage backend",
			zap.String("driver", string(cfg.Storage.Driver)),
			zap.Error(err))
	}
	docStore, err := store.Open(ctx, backend, store.WithLatency(cfg.Storage.Latency))
	if err != nil {
		appLogger.Fatal("Failed to open document store", zap.Error(err))
	}
	appLogger.Info("Document store ready", zap.String("driver", string(cfg.Storage.Driver)))

	// Initialize repositories
	surveyRepository := repository.NewSurveyRepository(docStore)
	userRepository := repository.NewUserRepository(docStore)
	responseRepository := repository.NewResponseRepository(docStore)

	// The analytics cache is optional; without Redis every summary read
	// recomputes.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("RedisCacheAdapter initialized")
	} else {
		appLogger.Info("No Redis address configured; analytics caching disabled")
	}

	// Initialize the survey generator
	generator, err := surveygen.NewGeminiSurveyGenerator(ctx, cfg.Gemini, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create survey generator", zap.Error(err))
	}

	// Initialize services
	surveyService := service.NewSurveyService(surveyRepository, cacheAdapter)
	userService := service.NewUserService(userRepository)
	responseService := service.NewResponseService(responseRepository, cacheAdapter)
	analyticsService := service.NewAnalyticsService(surveyRepository, responseRepository, cacheAdapter, cfg.Redis.AnalyticsTTL)
	generationService := service.NewGenerationService(generator, surveyRepository)

	// Initialize handlers
	validator := validation.NewValidator()
	surveyHandler := handler.NewSurveyHandler(surveyService, validator)
	userHandler := handler.NewUserHandler(userService, validator)
	responseHandler := handler.NewResponseHandler(responseService, validator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	generationHandler := handler.NewGenerationHandler(generationService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Survey routes
	apiGroup.Get("/surveys", surveyHandler.ListSurveys)
	apiGroup.Post("/surveys", surveyHandler.CreateSurvey)
	apiGroup.Get("/surveys/:id", surveyHandler.GetSurvey)
	apiGroup.Patch("/surveys/:id", surveyHandler.UpdateSurvey)
	apiGroup.Delete("/surveys/:id", surveyHandler.DeleteSurvey)

	// Question routes. The reorder route must precede the :qid routes so
	// "reorder" is not captured as a question id.
	apiGroup.Post("/surveys/:id/questions/reorder", surveyHandler.ReorderQuestions)
	apiGroup.Post("/surveys/:id/questions", surveyHandler.AddQuestion)
	apiGroup.Patch("/surveys/:id/questions/:qid", surveyHandler.UpdateQuestion)
	apiGroup.Delete("/surveys/:id/questions/:qid", surveyHandler.DeleteQuestion)

	// Option/row/column routes
	apiGroup.Post("/surveys/:id/questions/:qid/:kind", surveyHandler.AddEntry)
	apiGroup.Patch("/surveys/:id/questions/:qid/:kind/:eid", surveyHandler.UpdateEntry)
	apiGroup.Delete("/surveys/:id/questions/:qid/:kind/:eid", surveyHandler.DeleteEntry)

	// Response routes
	apiGroup.Get("/responses", responseHandler.ListResponses)
	apiGroup.Post("/surveys/:id/responses", responseHandler.SubmitResponse)

	// Analytics route
	apiGroup.Get("/surveys/:id/analytics", analyticsHandler.GetSurveySummary)

	// User routes
	apiGroup.Get("/users/me", userHandler.GetCurrentUser)
	apiGroup.Get("/users", userHandler.ListUsers)
	apiGroup.Post("/users", userHandler.AddUser)
	apiGroup.Patch("/users/:id", userHandler.UpdateUser)
	apiGroup.Delete("/users/:id", userHandler.DeleteUser)

	// Generation route
	apiGroup.Post("/generate", generationHandler.GenerateSurvey)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
