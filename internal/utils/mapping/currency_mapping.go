package mapping

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID:    d.ID,
		RuName:        d.RuName,
		EnName:        d.EnName,
		CurCode:       d.Code,
		BaselineValue: d.BaselineValue,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		ID:            m.CurrencyID,
		RuName:        m.RuName,
		EnName:        m.EnName,
		Code:          m.CurCode,
		BaselineValue: m.BaselineValue,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
