package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.opentelemetry.io/otel"

	"github.com/isu2cal/isu2cal/internal/api"
	"github.com/isu2cal/isu2cal/internal/httpx"
	"github.com/isu2cal/isu2cal/internal/itmo"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	_ = godotenv.Load()

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Error("API_KEY environment variable not set")
		os.Exit(1)
	}

	tokenFile := os.Getenv("ITMO_TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = "token.json"
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	// Initialize OpenTelemetry
	meterProvider, _, err := httpx.SetupPrometheusExporter()
	if err != nil {
		slog.Error("Failed to initialize OpenTelemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpx.Shutdown(shutdownCtx, meterProvider); err != nil {
			slog.Error("Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	otel.SetMeterProvider(meterProvider)
	slog.Info("OpenTelemetry initialized", "metrics_endpoint", "/metrics")

	// Initialize components
	tokens, err := itmo.NewFileTokenSource(ctx, tokenFile)
	if err != nil {
		slog.Error("Failed to load ITMO token", "path", tokenFile, "error", err)
		os.Exit(1)
	}
	server := api.NewServer(itmo.NewClient(tokens), apiKey)

	// Initialize telemetry
	telemetry, err := httpx.NewTelemetry()
	if err != nil {
		slog.Error("Failed to initialize telemetry", "error", err)
		os.Exit(1)
	}

	// Configure handler
	handler := mux.NewRouter()
	handler.Use(
		telemetry.Middleware,
		httpx.Logger(),
		httpx.Recovery(),
	)

	handler.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, "isu2cal: personal schedule to iCalendar")
	})

	handler.Handle("/metrics", promhttp.Handler())

	handler.HandleFunc("/calendar", server.Calendar).Methods(http.MethodGet)

	httpServer := &http.Server{
		Addr:         listenAddr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Starting the server", "addr", listenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
