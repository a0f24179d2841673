package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/garuda-sec/garuda/internal/assistant"
	"github.com/garuda-sec/garuda/internal/classify"
	"github.com/garuda-sec/garuda/internal/config"
	"github.com/garuda-sec/garuda/internal/handlers"
	"github.com/garuda-sec/garuda/internal/ocr"
	"github.com/garuda-sec/garuda/internal/ratelimit"
	"github.com/garuda-sec/garuda/internal/server"
)

func main() {
	cfg := config.Load()

	logger := server.SetupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	// Init components
	classifier := classify.New(cfg.Classifier, logger)
	ocrClient := ocr.NewClient(cfg.OCR)
	chatAssistant := assistant.New(cfg.Assistant, logger)
	limiter := ratelimit.New()

	phishingHandler := handlers.NewPhishingHandler(classifier, ocrClient, limiter, logger)
	chatHandler := handlers.NewChatHandler(chatAssistant, limiter, logger)

	// Build router
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(corsMiddleware)

	// Health check
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("pong"))
	})

	r.Post("/api/phishing", phishingHandler.Detect)
	r.Post("/api/chat", chatHandler.Chat)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // remote model cold starts are slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "err", err)
		}
	}()

	logger.Info("server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// corsMiddleware allows the web frontend to call the API from another origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
