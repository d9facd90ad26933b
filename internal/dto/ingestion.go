package dto

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// IngestRequest starts an ingestion run over [start_date, end_date].
type IngestRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02" example:"2023-01-01"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02" example:"2023-12-31"`
}

// CurrencyIngestResponse is one currency's share of an ingestion run.
type CurrencyIngestResponse struct {
	CurrencyID    int64  `json:"currencyId"`
	EnName        string `json:"enName"`
	PointsFetched int    `json:"pointsFetched"`
	RowsChanged   int64  `json:"rowsChanged"`
}

// IngestReportResponse summarizes a finished ingestion run.
type IngestReportResponse struct {
	RunID              string                   `json:"runId"`
	StartDate          string                   `json:"startDate"`
	EndDate            string                   `json:"endDate"`
	CountriesFetched   int                      `json:"countriesFetched"`
	CountryRowsChanged int64                    `json:"countryRowsChanged"`
	TotalRowsChanged   int64                    `json:"totalRowsChanged"`
	Currencies         []CurrencyIngestResponse `json:"currencies"`
}

// ToIngestReportResponse converts a domain.IngestReport to its response DTO
func ToIngestReportResponse(report *domain.IngestReport) IngestReportResponse {
	currencies := make([]CurrencyIngestResponse, len(report.Currencies))
	for i, c := range report.Currencies {
		currencies[i] = CurrencyIngestResponse{
			CurrencyID:    c.CurrencyID,
			EnName:        c.EnName,
			PointsFetched: c.PointsFetched,
			RowsChanged:   c.RowsChanged,
		}
	}
	return IngestReportResponse{
		RunID:              report.RunID,
		StartDate:          report.Start.Format(domain.DateLayout),
		EndDate:            report.End.Format(domain.DateLayout),
		CountriesFetched:   report.CountriesFetched,
		CountryRowsChanged: report.CountryRowsChanged,
		TotalRowsChanged:   report.TotalRowsChanged(),
		Currencies:         currencies,
	}
}
