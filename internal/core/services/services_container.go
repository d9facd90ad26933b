package services

import (
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/d0ggzi/currency-parser/internal/core/ports/scrapers"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	countries scrapers.CountryMappingFetcher,
	history scrapers.CurrencyHistoryFetcher,
) *portssvc.ServiceContainer {
	validator := NewDateRangeValidator()

	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRepo, NewBaselineResolver(history)),
		Ingestion: NewIngestionService(
			repos.CurrencyRepo,
			repos.CountryRepo,
			repos.ValueRepo,
			countries,
			history,
			WithIngestConcurrency(cfg.IngestConcurrency),
			WithIngestValidator(validator),
		),
		Chart: NewChartService(repos.CountryRepo, repos.ValueRepo, WithChartValidator(validator)),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.IngestionSvc      = (*ingestionService)(nil)
	_ portssvc.ChartSvc          = (*chartService)(nil)
)
