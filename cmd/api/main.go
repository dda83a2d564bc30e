package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentlens/resume-analyzer/internal/config"
	"talentlens/resume-analyzer/internal/handlers"
	"talentlens/resume-analyzer/internal/models"
	"talentlens/resume-analyzer/internal/services"
)

func main() {
	// Load configuration; a missing API key is fatal before we listen.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Println("Config loaded successfully")

	// Initialize the LLM gateway for the configured provider
	chatClient, err := newChatClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.Provider.Name, err)
	}
	log.Printf("LLM provider %q initialized (model %q)", cfg.Provider.Name, cfg.Provider.Model)

	// Initialize services
	extractor := services.NewTextExtractor()
	analyzer := services.NewAnalyzerService(extractor, chatClient)
	log.Println("Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzer, cfg.Storage.MaxFileSize)
	followUpHandler := handlers.NewFollowUpHandler(analyzer)
	detectHandler := handlers.NewDetectHandler(analyzer, cfg.Storage.MaxFileSize)
	log.Println("Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api := app.Group("/api/v1")
	api.Post("/analyze/match", analyzeHandler.HandleMatch)
	api.Post("/analyze/questions", analyzeHandler.HandleQuestions)
	api.Post("/analyze/evaluate", analyzeHandler.HandleEvaluate)
	api.Post("/analyze/coverage", analyzeHandler.HandleCoverage)
	api.Post("/followup", followUpHandler.HandleFollowUp)
	api.Post("/resume/detect", detectHandler.HandleDetect)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze/match",
				"POST /api/v1/analyze/questions",
				"POST /api/v1/analyze/evaluate",
				"POST /api/v1/analyze/coverage",
				"POST /api/v1/followup",
				"POST /api/v1/resume/detect",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newChatClient(cfg *config.Config) (services.ChatClient, error) {
	switch cfg.Provider.Name {
	case "gemini":
		return services.NewGeminiClient(context.Background(), cfg.Provider)
	default:
		return services.NewOpenAIClient(cfg.Provider), nil
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: models.APIError{
			Code:    models.CodeInternalError,
			Message: err.Error(),
		},
	})
}
