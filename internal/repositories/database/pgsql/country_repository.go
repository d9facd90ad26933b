package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCountryRepository struct {
	BaseRepository
}

func newPgxCountryRepository(pool *pgxpool.Pool) *PgxCountryRepository {
	return &PgxCountryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CountryRepositoryWithTx = (*PgxCountryRepository)(nil)

// UpsertCountries resolves every currency name up front and writes all bindings in
// one transaction. A country listed under several currencies is bound to the one
// whose name sorts first, so repeated runs over the same mapping change nothing.
func (r *PgxCountryRepository) UpsertCountries(ctx context.Context, countries domain.CountriesByCurrency) (int64, error) {
	currencyNames := make([]string, 0, len(countries))
	for name := range countries {
		currencyNames = append(currencyNames, name)
	}
	sort.Strings(currencyNames)

	var changed int64
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		idByName := make(map[string]int64, len(currencyNames))
		for _, name := range currencyNames {
			var id int64
			err := tx.QueryRow(ctx,
				`SELECT currency_id FROM currencies WHERE ru_name = $1 ORDER BY currency_id LIMIT 1;`,
				name,
			).Scan(&id)
			if err != nil {
				if isNotFoundError(err) {
					return fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, name)
				}
				return apperrors.NewAppError(http.StatusInternalServerError, "failed to resolve currency "+name, err)
			}
			idByName[name] = id
		}

		bound := make(map[string]int64)
		order := make([]string, 0)
		for _, name := range currencyNames {
			for _, country := range countries[name] {
				if prev, ok := bound[country]; ok {
					if prev != idByName[name] {
						slog.Warn("Country listed under several currencies, keeping first",
							"country", country, "ignored_currency", name)
					}
					continue
				}
				bound[country] = idByName[name]
				order = append(order, country)
			}
		}

		query := `
			INSERT INTO countries (name, currency_id)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET
				currency_id = EXCLUDED.currency_id,
				last_updated_at = NOW()
			WHERE countries.currency_id IS DISTINCT FROM EXCLUDED.currency_id;
		`
		batch := &pgx.Batch{}
		for _, country := range order {
			batch.Queue(query, country, bound[country])
		}
		br := tx.SendBatch(ctx, batch)
		for _, country := range order {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert country "+country, err)
			}
			changed += tag.RowsAffected()
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// ListCountries returns every country name in insertion order.
func (r *PgxCountryRepository) ListCountries(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT name FROM countries ORDER BY country_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan countries: %w", err)
	}
	return names, nil
}

func (r *PgxCountryRepository) FindCurrencyIDByCountry(ctx context.Context, country string) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(ctx, `SELECT currency_id FROM countries WHERE name = $1;`, country).Scan(&id)
	if err != nil {
		if isNotFoundError(err) {
			return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownCountry, country)
		}
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to resolve country "+country, err)
	}
	return id, nil
}
