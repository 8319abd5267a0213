package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"revcheck.app/checker/common/id"
	"revcheck.app/checker/common/logger"
	"revcheck.app/checker/common/otel"
	"revcheck.app/checker/core/config"
	"revcheck.app/checker/internal/brain"
	"revcheck.app/checker/internal/http/middleware"
	httprouter "revcheck.app/checker/internal/http/router"
	"revcheck.app/checker/internal/service"
	"revcheck.app/checker/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "revcheck starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	oracle, err := brain.OracleFromConfig(cfg.Oracle)
	if err != nil {
		slog.ErrorContext(ctx, "failed to configure oracle", "error", err)
		os.Exit(1)
	}
	orchestrator := brain.NewOrchestrator(oracle)
	slog.InfoContext(ctx, "oracle configured", "oracle", orchestrator.OracleName(), "model", cfg.Oracle.Model)

	sessions := store.NewSessionStore(cfg.Session.TTL)
	janitor := store.NewJanitor(sessions, cfg.Session.JanitorInterval)
	go janitor.Run(ctx)

	svc := service.NewAnalysisService(sessions, orchestrator)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, svc)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	janitor.Stop()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, svc service.AnalysisService) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 2 * cfg.Upload.MaxBytes

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
		router.Use(middleware.TraceHeader(cfg.TraceHeaderName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, svc, httprouter.RouterConfig{
		MaxUploadBytes: cfg.Upload.MaxBytes,
	})

	return router
}

const banner = `
 ┏━┓┏━╸╻ ╻┏━╸╻ ╻┏━╸┏━╸╻┏
 ┣┳┛┣╸ ┃┏┛┃  ┣━┫┣╸ ┃  ┣┻┓
 ╹┗╸┗━╸┗┛ ┗━╸╹ ╹┗━╸┗━╸╹ ╹
`
