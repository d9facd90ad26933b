package services

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/shopspring/decimal"
)

// relativePrecision is the number of decimal places relative values are rounded to.
const relativePrecision = 4

// NormalizeSeries derives relative values against the currency baseline.
// Output has the same length and order as raw.
func NormalizeSeries(currency domain.Currency, raw []domain.RawPoint) []domain.ValuePoint {
	baseline := decimal.NewFromFloat(currency.BaselineValue)
	series := make([]domain.ValuePoint, len(raw))
	for i, p := range raw {
		relative, _ := decimal.NewFromFloat(p.Value).Sub(baseline).Round(relativePrecision).Float64()
		series[i] = domain.ValuePoint{
			Date:          p.Date,
			RawValue:      p.Value,
			RelativeValue: relative,
		}
	}
	return series
}
