package pgsql

import (
	"context"
	"fmt"
	"net/http"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/d0ggzi/currency-parser/internal/models"
	"github.com/d0ggzi/currency-parser/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, ru_name, en_name, cur_code, baseline_value, created_at, last_updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// UpsertCurrency inserts a currency or updates code and baseline of the row with
// the same (ru_name, en_name). Unchanged rows are left alone.
func (r *PgxCurrencyRepository) UpsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, bool, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (ru_name, en_name, cur_code, baseline_value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ru_name, en_name) DO UPDATE SET
			cur_code = EXCLUDED.cur_code,
			baseline_value = EXCLUDED.baseline_value,
			last_updated_at = NOW()
		WHERE currencies.cur_code IS DISTINCT FROM EXCLUDED.cur_code
		   OR currencies.baseline_value IS DISTINCT FROM EXCLUDED.baseline_value
		RETURNING ` + currencyColumns + `;
	`

	rows, err := r.Pool.Query(ctx, query,
		modelCurr.RuName,
		modelCurr.EnName,
		modelCurr.CurCode,
		modelCurr.BaselineValue,
	)
	if err != nil {
		return nil, false, apperrors.NewAppError(http.StatusInternalServerError, "failed to upsert currency "+modelCurr.EnName, err)
	}
	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err == nil {
		domainCurr := mapping.ToDomainCurrency(saved)
		return &domainCurr, true, nil
	}
	if !isNotFoundError(err) {
		return nil, false, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan upserted currency "+modelCurr.EnName, err)
	}

	// The conflict update was skipped because nothing differed; read the stored row.
	existing, err := r.findOne(ctx, `WHERE ru_name = $1 AND en_name = $2`, modelCurr.RuName, modelCurr.EnName)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindCurrencyByEnName retrieves a currency by its English name.
func (r *PgxCurrencyRepository) FindCurrencyByEnName(ctx context.Context, enName string) (*domain.Currency, error) {
	currency, err := r.findOne(ctx, `WHERE en_name = $1`, enName)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", enName, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}

	modelCurrencies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// findOne returns the lowest-id currency matching where, or ErrUnknownCurrency.
func (r *PgxCurrencyRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ` + where + ` ORDER BY currency_id LIMIT 1;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query currency", err)
	}
	modelCurr, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Currency])
	if err != nil {
		if isNotFoundError(err) {
			return nil, apperrors.ErrUnknownCurrency
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan currency", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}
