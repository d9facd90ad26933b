package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/d0ggzi/currency-parser/internal/core/ports/scrapers"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ingestionService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	countryRepo  portsrepo.CountryWriter
	valueRepo    portsrepo.ValueWriter
	countries    scrapers.CountryMappingFetcher
	history      scrapers.CurrencyHistoryFetcher
	validator    *DateRangeValidator
	concurrency  int
}

// IngestionServiceOption configures the ingestion service.
type IngestionServiceOption func(*ingestionService)

// WithIngestConcurrency sets how many currencies are fetched and stored at once.
func WithIngestConcurrency(n int) IngestionServiceOption {
	return func(s *ingestionService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithIngestValidator replaces the date range validator.
func WithIngestValidator(v *DateRangeValidator) IngestionServiceOption {
	return func(s *ingestionService) {
		s.validator = v
	}
}

func NewIngestionService(
	currencyRepo portsrepo.CurrencyReader,
	countryRepo portsrepo.CountryWriter,
	valueRepo portsrepo.ValueWriter,
	countries scrapers.CountryMappingFetcher,
	history scrapers.CurrencyHistoryFetcher,
	opts ...IngestionServiceOption,
) portssvc.IngestionSvc {
	s := &ingestionService{
		currencyRepo: currencyRepo,
		countryRepo:  countryRepo,
		valueRepo:    valueRepo,
		countries:    countries,
		history:      history,
		validator:    NewDateRangeValidator(),
		concurrency:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ingest runs the country mapping pass and then the per-currency history pass.
// Any fetch, parse or storage failure aborts the run; rows written before the
// failure stay in place and are safe to overwrite on a retry.
func (s *ingestionService) Ingest(ctx context.Context, startDate, endDate string) (*domain.IngestReport, error) {
	r, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateIngestion(r); err != nil {
		return nil, err
	}

	report := &domain.IngestReport{
		RunID: uuid.NewString(),
		Start: r.Start,
		End:   r.End,
	}
	runLog := slog.String("run_id", report.RunID)
	started := time.Now()
	s.LogInfo(ctx, "Ingestion started", runLog,
		slog.String("start", startDate), slog.String("end", endDate))

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracked currencies: %w", err)
	}
	known := make(map[string]struct{}, len(currencies))
	for _, c := range currencies {
		known[c.RuName] = struct{}{}
	}

	mapping, err := s.countries.FetchMapping(ctx, known)
	if err != nil {
		s.LogError(ctx, err, "Country mapping fetch failed", runLog)
		return nil, fmt.Errorf("failed to fetch country mapping: %w", err)
	}
	for _, names := range mapping {
		report.CountriesFetched += len(names)
	}
	report.CountryRowsChanged, err = s.countryRepo.UpsertCountries(ctx, mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to store country mapping: %w", err)
	}

	stats := make([]domain.CurrencyIngestStats, len(currencies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, c := range currencies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw, err := s.history.FetchHistory(gctx, c.Code, r.Start, r.End)
			if err != nil {
				s.LogError(ctx, err, "History fetch failed", runLog, slog.String("currency", c.EnName))
				return fmt.Errorf("failed to fetch history of %s: %w", c.EnName, err)
			}
			changed, err := s.valueRepo.UpsertValues(gctx, c, NormalizeSeries(c, raw))
			if err != nil {
				return fmt.Errorf("failed to store history of %s: %w", c.EnName, err)
			}
			stats[i] = domain.CurrencyIngestStats{
				CurrencyID:    c.ID,
				EnName:        c.EnName,
				PointsFetched: len(raw),
				RowsChanged:   changed,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Currencies = stats

	s.LogInfo(ctx, "Ingestion finished", runLog,
		slog.Int("countries", report.CountriesFetched),
		slog.Int("currencies", len(stats)),
		slog.Int64("rows_changed", report.TotalRowsChanged()),
		slog.Duration("took", time.Since(started)))
	return report, nil
}
