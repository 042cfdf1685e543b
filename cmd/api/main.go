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

	"resumeai/reviewer/internal/config"
	"resumeai/reviewer/internal/handlers"
	"resumeai/reviewer/internal/repositories"
	"resumeai/reviewer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	resumeParser := services.NewResumeParserService(pdfParser)
	atsScorer := services.NewATSScorerService()
	skillGap := services.NewSkillGapService()
	recommender := services.NewRecommenderService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize role vector store
	roleStore, err := services.NewRoleStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := roleStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		analysisRepo,
		geminiService,
		roleStore,
		atsScorer,
		skillGap,
		recommender,
		cfg.Indexer.RetryMaxAttempts,
	)
	mentorService := services.NewMentorService(geminiService)
	log.Println("✅ Analyzer service initialized")

	// Initialize background indexer
	indexer := services.NewIndexer(
		docRepo,
		geminiService,
		roleStore,
		cfg.Indexer.Concurrency,
		cfg.Indexer.PollInterval,
	)

	ctx := context.Background()
	indexer.Start(ctx)
	log.Println("✅ Indexer started successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		resumeParser,
		indexer,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService)
	chatHandler := handlers.NewChatHandler(mentorService)
	rolesHandler := handlers.NewRolesHandler()
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Reviewer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "AI Resume Reviewer",
			"time":    time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/analyze", analyzeHandler.HandleAnalyze)
	api.Post("/chat", chatHandler.HandleChat)
	api.Get("/roles", rolesHandler.HandleGetRoles)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Reviewer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/analyze",
				"POST /api/v1/chat",
				"GET /api/v1/roles",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		indexer.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
