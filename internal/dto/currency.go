package dto

import (
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// CurrencyResponse defines the data returned for a tracked currency.
type CurrencyResponse struct {
	ID            int64     `json:"id"`
	RuName        string    `json:"ruName"`
	EnName        string    `json:"enName"`
	Code          int       `json:"code"`
	BaselineValue float64   `json:"baselineValue"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:            curr.ID,
		RuName:        curr.RuName,
		EnName:        curr.EnName,
		Code:          curr.Code,
		BaselineValue: curr.BaselineValue,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
