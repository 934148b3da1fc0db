package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	APIKey string

	// Ollama generation
	OllamaURL   string
	OllamaModel string
	UseAI       bool

	// Question sourcing
	QuestionsPerCategory int
	ConcurrentRequests   int
	MinAIQuestions       int

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// Output
	OutputDir string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		APIKey: os.Getenv("PREPGUIDE_API_KEY"),

		OllamaURL:   envOr("OLLAMA_URL", "http://localhost:11500"),
		OllamaModel: envOr("OLLAMA_MODEL", "llama3.1:latest"),
		UseAI:       envBool("USE_AI_GENERATION", true),

		QuestionsPerCategory: envInt("QUESTIONS_PER_CATEGORY", 20),
		ConcurrentRequests:   envInt("CONCURRENT_REQUESTS", 5),
		MinAIQuestions:       envInt("MIN_AI_QUESTIONS", 100),

		WorkerCount:  envInt("WORKER_COUNT", 2),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 50),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		JobTTL: envDuration("JOB_TTL", 1*time.Hour),

		OutputDir: envOr("OUTPUT_DIR", "."),
	}

	if cfg.QuestionsPerCategory <= 0 {
		cfg.QuestionsPerCategory = 20
	}
	if cfg.ConcurrentRequests <= 0 {
		cfg.ConcurrentRequests = 5
	}
	if cfg.MinAIQuestions <= 0 {
		cfg.MinAIQuestions = 100
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 50
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	return cfg
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("PREPGUIDE_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
