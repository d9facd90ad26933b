package services

import (
	"context"
	"fmt"
	"time"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/core/ports/scrapers"
)

// BaselineResolver looks up the value a currency had on the baseline date.
type BaselineResolver struct {
	history scrapers.CurrencyHistoryFetcher
}

func NewBaselineResolver(history scrapers.CurrencyHistoryFetcher) *BaselineResolver {
	return &BaselineResolver{history: history}
}

// ResolveBaseline requests one day of history starting at date and returns its
// first point. An empty answer fails with ErrNoBaselineData.
func (r *BaselineResolver) ResolveBaseline(ctx context.Context, code int, date time.Time) (float64, error) {
	day := domain.DateOnly(date)
	points, err := r.history.FetchHistory(ctx, code, day, day.AddDate(0, 0, 1))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch baseline for code %d: %w", code, err)
	}
	if len(points) == 0 {
		return 0, fmt.Errorf("%w: code %d on %s", apperrors.ErrNoBaselineData, code, day.Format(domain.DateLayout))
	}
	return points[0].Value, nil
}
