// Command currency_ingest performs a single ingestion run from the command line
// and prints the run report as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/d0ggzi/currency-parser/internal/dto"
	"github.com/d0ggzi/currency-parser/internal/platform/logctx"
	"github.com/d0ggzi/currency-parser/internal/platform/app"
	"github.com/d0ggzi/currency-parser/internal/platform/config"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("currency_ingest", pflag.ExitOnError)
	config.RegisterFlags(flags)
	start := flags.String("start", "", "first day of the window, YYYY-MM-DD (required)")
	end := flags.String("end", "", "last day of the window, YYYY-MM-DD (required)")
	_ = flags.Parse(os.Args[1:])

	if *start == "" || *end == "" {
		fmt.Fprintln(os.Stderr, "usage: currency_ingest --start YYYY-MM-DD --end YYYY-MM-DD")
		flags.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(flags)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logctx.WithLogger(ctx, logger)

	if err := run(ctx, cfg, logger, *start, *end); err != nil {
		logger.Error("Ingestion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, start, end string) error {
	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.Seed(ctx); err != nil {
		return err
	}

	report, err := application.Services.Ingestion.Ingest(ctx, start, end)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.ToIngestReportResponse(report))
}
