package pgsql

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/d0ggzi/currency-parser/internal/models"
	"github.com/d0ggzi/currency-parser/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxValueRepository struct {
	BaseRepository
	currencies *PgxCurrencyRepository
	countries  *PgxCountryRepository
}

func newPgxValueRepository(pool *pgxpool.Pool, currencies *PgxCurrencyRepository, countries *PgxCountryRepository) *PgxValueRepository {
	return &PgxValueRepository{
		BaseRepository: BaseRepository{Pool: pool},
		currencies:     currencies,
		countries:      countries,
	}
}

var _ portsrepo.ValueRepositoryWithTx = (*PgxValueRepository)(nil)

// UpsertValues resolves the currency by English name and writes the series as
// one batch inside a transaction. Rows whose values are unchanged are skipped.
func (r *PgxValueRepository) UpsertValues(ctx context.Context, currency domain.Currency, series []domain.ValuePoint) (int64, error) {
	stored, err := r.currencies.FindCurrencyByEnName(ctx, currency.EnName)
	if err != nil {
		return 0, err
	}
	if len(series) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO currency_values (currency_id, value_date, raw_value, relative_value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_id, value_date) DO UPDATE SET
			raw_value = EXCLUDED.raw_value,
			relative_value = EXCLUDED.relative_value,
			last_updated_at = NOW()
		WHERE currency_values.raw_value IS DISTINCT FROM EXCLUDED.raw_value
		   OR currency_values.relative_value IS DISTINCT FROM EXCLUDED.relative_value;
	`
	rows := mapping.ToModelCurrencyValues(stored.ID, series)

	var changed int64
	err = r.InTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, row := range rows {
			batch.Queue(query, row.CurrencyID, row.ValueDate, row.RawValue, row.RelativeValue)
		}
		br := tx.SendBatch(ctx, batch)
		for _, row := range rows {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return apperrors.NewAppError(http.StatusInternalServerError,
					fmt.Sprintf("failed to upsert value %s for %s", row.ValueDate.Format(domain.DateLayout), stored.EnName), err)
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

// QueryCountrySeries returns the bound currency id and its relative values in [start, end].
func (r *PgxValueRepository) QueryCountrySeries(ctx context.Context, country string, start, end time.Time) (int64, []domain.RelativePoint, error) {
	currencyID, err := r.countries.FindCurrencyIDByCountry(ctx, country)
	if err != nil {
		return 0, nil, err
	}

	query := `
		SELECT value_date, relative_value
		FROM currency_values
		WHERE currency_id = $1 AND value_date BETWEEN $2 AND $3
		ORDER BY value_date;
	`
	rows, err := r.Pool.Query(ctx, query, currencyID, domain.DateOnly(start), domain.DateOnly(end))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to query values for %q: %w", country, err)
	}
	modelValues, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RelativeValue])
	if err != nil {
		return 0, nil, fmt.Errorf("failed to scan values for %q: %w", country, err)
	}

	return currencyID, mapping.ToDomainRelativePoints(modelValues), nil
}
