package services

import (
	"context"
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all tracked currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencySeederSvc establishes the tracked currency set at process start.
type CurrencySeederSvc interface {
	// SeedCurrencies resolves each record's baseline as of baselineDate and upserts it.
	SeedCurrencies(ctx context.Context, records []domain.SeedRecord, baselineDate time.Time) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencySeederSvc
}
