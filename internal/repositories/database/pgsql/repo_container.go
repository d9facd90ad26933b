package pgsql

import (
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates instances of all repositories.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(pool)
	countryRepo := newPgxCountryRepository(pool)
	valueRepo := newPgxValueRepository(pool, currencyRepo, countryRepo)

	return &portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		CountryRepo:  countryRepo,
		ValueRepo:    valueRepo,
	}
}
