package mapping

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/models"
)

// ToModelCurrencyValues binds a normalized series to a stored currency id.
func ToModelCurrencyValues(currencyID int64, series []domain.ValuePoint) []models.CurrencyValue {
	ms := make([]models.CurrencyValue, len(series))
	for i, p := range series {
		ms[i] = models.CurrencyValue{
			CurrencyID:    currencyID,
			ValueDate:     domain.DateOnly(p.Date),
			RawValue:      p.RawValue,
			RelativeValue: p.RelativeValue,
		}
	}
	return ms
}

// ToDomainRelativePoints converts range-scan rows into domain points.
func ToDomainRelativePoints(ms []models.RelativeValue) []domain.RelativePoint {
	ds := make([]domain.RelativePoint, len(ms))
	for i, m := range ms {
		ds[i] = domain.RelativePoint{
			Date:  domain.DateOnly(m.ValueDate),
			Value: m.RelativeValue,
		}
	}
	return ds
}
