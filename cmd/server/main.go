package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creatoros/internal/config"
	"creatoros/internal/handler"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	ctx := context.Background()

	// Wiring
	container, err := config.NewContainer(ctx)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer container.Close()

	// Handlers
	logger := container.Logger
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(),
		Usage:      handler.NewUsageHandler(container.UsageService, logger),
		Generation: handler.NewGenerationHandler(container.GenerationService, container.UsageService, logger),
		Tips:       handler.NewTipsHandler(container.TipsService),
		Dashboard:  handler.NewDashboardHandler(container.DashboardService, container.PDFService, logger),
		Proxy:      handler.NewProxyHandler(container.Proxy, logger),
		Webhook:    handler.NewWebhookHandler(container.WebhookService, logger),
	}

	authMiddleware := handler.NewAuthMiddleware(
		container.AuthService,
		logger,
	)
	proxyMiddleware := handler.NewProjectKeyMiddleware(
		[]string{container.Config.GetSupabaseKey(), container.Config.GetSupabaseServiceKey()},
		container.AuthService,
		logger,
	)

	// Router
	router := handler.NewRouter(
		handlers,
		authMiddleware.Middleware,
		proxyMiddleware.Middleware,
		container.Config.GetCORSAllowedOrigins(),
		logger,
	)

	// AI generations can take most of AI_TIMEOUT, so the write timeout leaves room for it.
	server := &http.Server{
		Addr:              ":" + container.Config.GetServerPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      container.Config.GetAITimeout()*3 + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Run server
	go func() {
		logger.Info("Server listening", "address", server.Addr, "environment", container.Config.GetEnvironment())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", err)
	}

	logger.Info("Server exited")
}
