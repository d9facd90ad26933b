package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d0ggzi/currency-parser/internal/handlers"
	"github.com/d0ggzi/currency-parser/internal/middleware"
	"github.com/d0ggzi/currency-parser/internal/platform/app"
	"github.com/d0ggzi/currency-parser/internal/platform/config"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

const shutdownTimeout = 10 * time.Second

// @title Currency Parser API
// @version 1.0
// @description Scrapes historical exchange rates, stores them relative to a baseline and serves per-country chart data.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	flags := pflag.NewFlagSet("currency_parser", pflag.ExitOnError)
	config.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to build application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Seed(logctx.WithLogger(ctx, logger)); err != nil {
		logger.Error("Failed to seed currencies", slog.String("error", err.Error()))
		application.Close()
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		application.Close()
		os.Exit(1)
	}

	ingestLimiter, err := middleware.NewMemoryLimiter(cfg.IngestRateLimit)
	if err != nil {
		logger.Error("Failed to configure ingestion rate limit", slog.String("error", err.Error()))
		application.Close()
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, application.Services, ingestLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			application.Close()
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}
