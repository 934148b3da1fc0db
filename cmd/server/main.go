package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mtreece/prepguide/internal/api"
	"github.com/mtreece/prepguide/internal/config"
	"github.com/mtreece/prepguide/internal/pipeline"
	"github.com/mtreece/prepguide/internal/question"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Question sources: catalog always, Ollama generation when enabled.
	catalog := question.NewCatalog()
	var (
		stats  *question.LLMStats
		client *question.OllamaClient
		gen    *question.Generator
	)
	if cfg.UseAI {
		stats = question.NewLLMStats(24 * time.Hour)
		client = question.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, stats)
		gen = question.NewGenerator(client, cfg.QuestionsPerCategory, cfg.ConcurrentRequests, log)
	}
	supply := question.NewSupply(catalog, gen, cfg.MinAIQuestions, log)

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, supply, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(orch, stats, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		if client != nil {
			client.Close()
		}
	}()

	log.Info("starting prepguide", "port", cfg.Port, "ai_generation", cfg.UseAI)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
