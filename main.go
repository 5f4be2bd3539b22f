// Package main provides the k8s-hello microservice.
//
// The service exposes:
//   - GET|HEAD /        greeting
//   - GET|HEAD /health  liveness/readiness probe target
//   - GET /metrics      Prometheus metrics
//
// Usage:
//
//	./k8s-hello
//
// Environment:
//
//	PORT:             Server port (default: 8080)
//	LOG_LEVEL:        debug, info, warn or error (default: info)
//	GIN_MODE:         debug, release or test (default: release)
//	SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 30s)
//
// A .env file in the working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k8s-hello/handlers"
	"k8s-hello/logger"
	"k8s-hello/middleware"
	"k8s-hello/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const version = "1.0"

func main() {
	cfg, err := services.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rt := services.DetectRuntime()
	logger.Logger.Info("Starting k8s-hello",
		zap.String("addr", cfg.Addr()),
		zap.String("version", version),
		zap.Any("runtime", rt),
	)

	gin.SetMode(cfg.GinMode)
	router := setupRouter()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Logger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	GracefulShutdown(server, cfg.ShutdownTimeout)
}

// setupRouter configures and returns the Gin router with all routes and middleware
func setupRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Recovery runs innermost so logging and metrics see the 500
	router.Use(
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.RecoveryMiddleware(),
	)

	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)

	// Load balancers and uptime checkers often probe with HEAD
	router.HEAD("/", handlers.Root)
	router.HEAD("/health", handlers.HealthCheck)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// GracefulShutdown drains in-flight requests within timeout
func GracefulShutdown(server *http.Server, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
