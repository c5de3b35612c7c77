package main

import (
	"context"
	"log"
	"os"

	"notemind/controller"
	"notemind/models"
	"notemind/repository"
	"notemind/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const dbFile = "notemind.db"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	if err != nil {
		log.Fatalf("FATAL: Failed to open %s: %v", dbFile, err)
	}
	// First-run schema creation; there is no further migration support.
	if err := db.AutoMigrate(&models.Note{}); err != nil {
		log.Fatalf("FATAL: Failed to migrate note schema: %v", err)
	}

	ctx := context.Background()

	noteRepo := repository.NewNoteRepository(db)
	aiService := services.NewGeminiAIService(ctx)
	noteService := services.NewNoteService(noteRepo, aiService)
	noteController := controller.NewNoteController(noteService)

	// Pick up GEMINI_API_KEY edits without a restart.
	go services.WatchEnvFile(ctx, ".env", aiService)

	router := gin.Default()

	// CORS middleware so the page can be served from elsewhere during dev.
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Tag every request with an id for log correlation.
	router.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Next()
	})

	// The page is a plain static collaborator of the JSON API.
	router.StaticFile("/", "./static/index.html")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "NoteMind API",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/notes", noteController.ListNotes)
		api.POST("/notes", noteController.CreateNote)
		api.PUT("/notes/:id", noteController.UpdateNote)
		api.DELETE("/notes/:id", noteController.DeleteNote)
		api.POST("/generate-title", noteController.GenerateTitle)
		api.POST("/process-ai", noteController.ProcessAI)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Printf("NoteMind server starting on http://localhost:%s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}
