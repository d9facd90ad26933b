// Package app wires configuration, storage, scrapers and services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/finmarket"
	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/htmlpage"
	"github.com/d0ggzi/currency-parser/internal/adapters/scrapers/ibanru"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/core/services"
	"github.com/d0ggzi/currency-parser/internal/platform/config"
	"github.com/d0ggzi/currency-parser/internal/platform/seed"
	"github.com/d0ggzi/currency-parser/internal/repositories/database/migrations"
	"github.com/d0ggzi/currency-parser/internal/repositories/database/pgsql"
	"github.com/d0ggzi/currency-parser/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App is the fully wired application.
type App struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer

	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Build connects to PostgreSQL, applies migrations and constructs every component.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, migrations.Dir, logger); err != nil {
		database.ClosePgxPool(pool)
		return nil, err
	}

	pages := htmlpage.NewFetcher(
		htmlpage.WithTimeout(cfg.HTTPTimeout),
		htmlpage.WithRateLimit(cfg.ScrapeRatePerSecond),
	)
	history, err := finmarket.NewClient(pages, cfg.HistorySourceURL)
	if err != nil {
		database.ClosePgxPool(pool)
		return nil, err
	}
	countries := ibanru.NewClient(pages, cfg.CountrySourceURL)

	repos := pgsql.NewRepositoryProvider(pool)

	return &App{
		Config:   cfg,
		Services: services.NewServiceContainer(cfg, *repos, countries, history),
		pool:     pool,
		logger:   logger,
	}, nil
}

// Seed loads the currency seed file and resolves every baseline. An
// apperrors.ErrNoBaselineData failure means the process cannot start.
func (a *App) Seed(ctx context.Context) error {
	if a.Config.SkipSeed {
		a.logger.Info("Currency seeding skipped")
		return nil
	}
	records, err := seed.Load(a.Config.CurrencySeedFile)
	if err != nil {
		return err
	}
	a.logger.Info("Seeding currencies",
		slog.Int("records", len(records)),
		slog.String("file", a.Config.CurrencySeedFile))
	if _, err := a.Services.Currency.SeedCurrencies(ctx, records, a.Config.BaselineDate); err != nil {
		return fmt.Errorf("failed to seed currencies: %w", err)
	}
	return nil
}

// Close releases the database pool.
func (a *App) Close() {
	database.ClosePgxPool(a.pool)
}
