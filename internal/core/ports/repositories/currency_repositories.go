package repositories

import (
	"context"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByEnName retrieves a currency by its English name.
	FindCurrencyByEnName(ctx context.Context, enName string) (*domain.Currency, error)


	// ListCurrencies retrieves all stored currencies ordered by id.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// UpsertCurrency inserts the currency or, when (ru_name, en_name) already exists,
	// updates code and baseline if either differs. It reports whether a row changed.
	UpsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, bool, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
