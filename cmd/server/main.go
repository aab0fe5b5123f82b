package main

import (
	"context"
	"log"
	"os"
	"voicedrop/internal/api"
	"voicedrop/internal/config"
	"voicedrop/internal/db"
	"voicedrop/internal/repository"
	"voicedrop/internal/storage"
	"voicedrop/internal/transcribe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	uploader, err := storage.NewUploader(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("Failed to create storage uploader: %v", err)
	}

	transcriber := transcribe.NewClient(cfg.TranscribeURL, cfg.TranscribeToken)
	repo := repository.NewPostgresRepository(conn)

	r := gin.Default()
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())

	handler := api.NewHandler(uploader, transcriber, repo, cfg.TranscribeMode)
	api.RegisterRoutes(r, handler)

	log.Printf("voicedrop backend running on :%s (mode: %s)", cfg.Port, cfg.TranscribeMode)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware propagates or assigns an X-Request-ID header so
// individual requests can be traced through the logs.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}
