package config

import (
	"fmt"
	"os"
	"strings"
)

// Transcription modes for the /upload route.
const (
	ModeInline   = "inline"   // transcribe during upload and return the text
	ModeDeferred = "deferred" // upload only, transcribe later via /transcribe/:file_id
)

type Config struct {
	Port            string
	DatabaseURL     string
	CredentialsFile string
	TranscribeURL   string
	TranscribeToken string
	TranscribeMode  string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		CredentialsFile: os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"),
		TranscribeURL:   os.Getenv("RUNPOD_API_URL"),
		TranscribeToken: os.Getenv("RUNPOD_API_TOKEN"),
		TranscribeMode:  strings.ToLower(getEnv("TRANSCRIBE_MODE", ModeDeferred)),
	}

	// Validate required environment variables
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CredentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_FILE is required")
	}
	if cfg.TranscribeURL == "" {
		return nil, fmt.Errorf("RUNPOD_API_URL is required")
	}
	if cfg.TranscribeToken == "" {
		return nil, fmt.Errorf("RUNPOD_API_TOKEN is required")
	}

	if cfg.TranscribeMode != ModeInline && cfg.TranscribeMode != ModeDeferred {
		return nil, fmt.Errorf("unsupported TRANSCRIBE_MODE: %s. Supported: %s, %s",
			cfg.TranscribeMode, ModeInline, ModeDeferred)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
