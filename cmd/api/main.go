package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	api "todoapi/internal/adapter/http"
	coretelemetry "todoapi/internal/core/telemetry"
	"todoapi/pkg/config"
	"todoapi/pkg/logging"
	"todoapi/pkg/telemetry"
)

func main() {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger, err := logging.NewAppLogger("todoapi", cfg.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	tel, err := telemetry.InitTelemetry(telemetry.TelemetryConfig{
		ServiceName:    "todoapi",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		MetricsPort:    envOr("METRICS_PORT", "9091"),
		OTLPEndpoint:   envOr("OTLP_ENDPOINT", "localhost:4317"),
	})
	if err != nil {
		log.Fatal("Failed to initialize telemetry: ", err)
	}
	defer tel.Shutdown(context.Background())

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	probe := coretelemetry.NewOtelProbe(metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.StartServer(ctx, metrics, probe, logger, cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
