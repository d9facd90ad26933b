package repositories

import (
	"context"
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// ValueReader defines the read-only range scans used by the chart query path
type ValueReader interface {
	// QueryCountrySeries returns the currency id bound to country and the relative
	// values stored for it with dates in [start, end], ordered by date.
	QueryCountrySeries(ctx context.Context, country string, start, end time.Time) (int64, []domain.RelativePoint, error)
}

// ValueWriter defines write operations for currency value points
type ValueWriter interface {
	// UpsertValues stores the normalized series for the currency identified by its
	// English name, touching only rows whose values changed. Returns changed rows.
	UpsertValues(ctx context.Context, currency domain.Currency, series []domain.ValuePoint) (int64, error)
}

// ValueRepositoryFacade combines all value-related repository interfaces
type ValueRepositoryFacade interface {
	ValueReader
	ValueWriter
}

// ValueRepositoryWithTx extends ValueRepositoryFacade with transaction capabilities
type ValueRepositoryWithTx interface {
	ValueRepositoryFacade
	TransactionManager
}
