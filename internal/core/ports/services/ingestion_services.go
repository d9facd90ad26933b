package services

import (
	"context"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// IngestionSvc runs the scrape-normalize-persist pipeline.
type IngestionSvc interface {
	// Ingest validates the YYYY-MM-DD window and performs one full ingestion run.
	Ingest(ctx context.Context, startDate, endDate string) (*domain.IngestReport, error)
}

// ChartSvc serves the read side of stored series.
type ChartSvc interface {
	// ListCountries returns every known country name.
	ListCountries(ctx context.Context) ([]string, error)

	// QueryChartData assembles one dataset per country over the YYYY-MM-DD window.
	QueryChartData(ctx context.Context, countries []string, startDate, endDate string) (*domain.ChartSeries, error)
}
