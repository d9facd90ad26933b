package repositories

import (
	"context"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// CountryReader defines read operations for country associations
type CountryReader interface {
	// ListCountries returns every known country name in storage order.
	ListCountries(ctx context.Context) ([]string, error)

	// FindCurrencyIDByCountry resolves the currency a country is bound to.
	FindCurrencyIDByCountry(ctx context.Context, country string) (int64, error)
}

// CountryWriter defines write operations for country associations
type CountryWriter interface {
	// UpsertCountries binds every listed country to the currency with the given
	// Russian display name. Unknown currency names fail with ErrUnknownCurrency
	// and leave storage untouched. Returns the number of rows inserted or updated.
	UpsertCountries(ctx context.Context, countries domain.CountriesByCurrency) (int64, error)
}

// CountryRepositoryFacade combines all country-related repository interfaces
type CountryRepositoryFacade interface {
	CountryReader
	CountryWriter
}

// CountryRepositoryWithTx extends CountryRepositoryFacade with transaction capabilities
type CountryRepositoryWithTx interface {
	CountryRepositoryFacade
	TransactionManager
}
