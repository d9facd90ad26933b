// Package scrapers declares the upstream sources the ingestion pipeline reads from.
package scrapers

import (
	"context"
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// CountryMappingFetcher retrieves which countries use which currency.
type CountryMappingFetcher interface {
	// FetchMapping returns currency display name -> countries, restricted to
	// knownCurrencyNames. Rows for other currencies are skipped.
	FetchMapping(ctx context.Context, knownCurrencyNames map[string]struct{}) (domain.CountriesByCurrency, error)
}

// CurrencyHistoryFetcher retrieves the value history of one currency.
type CurrencyHistoryFetcher interface {
	// FetchHistory returns the upstream series for code over [start, end] in
	// upstream order. A header-only table yields an empty slice and no error.
	FetchHistory(ctx context.Context, code int, start, end time.Time) ([]domain.RawPoint, error)
}
