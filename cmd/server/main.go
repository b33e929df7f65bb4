package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/anusha761/shopassist/internal/config"
	"github.com/anusha761/shopassist/internal/handler"
	"github.com/anusha761/shopassist/internal/repository"
	"github.com/anusha761/shopassist/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("ShopAssist Laptop Advisor")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewCatalogueRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize OpenAI client
	if !cfg.OpenAI.Enabled {
		log.Fatalf("OPENAI_API_KEY is not set - the assistant cannot run without the model service")
	}
	aiClient := service.NewOpenAIClient(&cfg.OpenAI)
	log.Printf("✅ OpenAI client initialized")
	log.Printf("   - API Base: %s", cfg.OpenAI.APIBase)
	log.Printf("   - Chat model: %s", cfg.OpenAI.ChatModel)
	log.Printf("   - Embedding model: %s", cfg.OpenAI.EmbeddingModel)

	// Initialize services
	validator := service.NewProfileValidator(cfg.Matching.BudgetFloor)
	gate := service.NewSafetyGate(aiClient)
	extractor := service.NewProfileExtractor(aiClient)
	classifier := service.NewFeatureClassifier(aiClient)
	engine := service.NewConversationEngine(aiClient, gate, validator)
	matcher := service.NewCatalogueMatcher(repo, classifier, extractor, cfg.Matching.TopK, cfg.Matching.Workers)
	filter := service.NewRecommendationFilter(cfg.Matching.MinScore)
	recommender := service.NewRecommendationService(validator, extractor, matcher, filter, aiClient)

	log.Println("✅ Services initialized")

	// Initialize handlers
	conversationHandler := handler.NewConversationHandler(engine, recommender)
	recommendHandler := handler.NewRecommendHandler(recommender, repo)
	embeddingHandler := handler.NewEmbeddingHandler(repo, aiClient)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "shopassist",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Conversation endpoints
		apiV1.POST("/conversations", conversationHandler.Start)
		apiV1.POST("/conversations/:id/messages", conversationHandler.Advance)
		apiV1.GET("/conversations/:id", conversationHandler.Get)

		// Recommendation and catalogue endpoints
		apiV1.POST("/recommendations", recommendHandler.Recommend)
		apiV1.GET("/laptops/:id", recommendHandler.GetLaptop)

		// Embedding endpoints
		apiV1.POST("/embeddings/batch", embeddingHandler.BatchUpdate)
		apiV1.POST("/embeddings/generate", embeddingHandler.Generate)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
