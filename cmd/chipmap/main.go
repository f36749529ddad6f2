// Package main is the entry point for chipmap.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/chipmap/internal/app"
	"github.com/samdwyer/chipmap/internal/telemetry"
)

// setupTelemetry is replaced in tests.
var setupTelemetry = telemetry.Setup

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Not fatal - env vars might be set directly
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

// run performs one conversion and returns the process exit code. Deferred
// telemetry shutdown always runs before it returns, so failed runs still
// flush their spans.
func run(ctx context.Context, args []string, stdout io.Writer) int {
	cfg, err := app.ConfigFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return 2
	}
	if len(args) > 0 {
		cfg.ImagePath = args[0]
	}

	if cfg.Telemetry {
		setupOTelEnv()
		shutdown, err := setupTelemetry(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			telemetry.Disable()
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	} else {
		telemetry.Disable()
	}

	a, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		return 1
	}

	if err := a.Run(ctx, stdout); err != nil {
		slog.Error("conversion failed", "image", cfg.ImagePath, "error", err)
		return 1
	}
	return 0
}

// setupOTelEnv fills OTLP headers from CHIPMAP_OTLP_API_KEY when the
// standard variables are not already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}

	apiKey := os.Getenv("CHIPMAP_OTLP_API_KEY")
	dataset := os.Getenv("CHIPMAP_OTLP_DATASET")
	if dataset == "" {
		dataset = "chipmap"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
