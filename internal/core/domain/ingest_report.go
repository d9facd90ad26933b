package domain

import "time"

// CurrencyIngestStats describes what one currency contributed to an ingestion run.
type CurrencyIngestStats struct {
	CurrencyID    int64  `json:"currencyId"`
	EnName        string `json:"enName"`
	PointsFetched int    `json:"pointsFetched"`
	RowsChanged   int64  `json:"rowsChanged"`
}

// IngestReport summarizes a completed ingestion run. A run over unchanged
// upstream data reports zero changed rows everywhere.
type IngestReport struct {
	RunID              string                `json:"runId"`
	Start              time.Time             `json:"start"`
	End                time.Time             `json:"end"`
	CountriesFetched   int                   `json:"countriesFetched"`
	CountryRowsChanged int64                 `json:"countryRowsChanged"`
	Currencies         []CurrencyIngestStats `json:"currencies"`
}

// TotalRowsChanged sums country and value rows written by the run.
func (r *IngestReport) TotalRowsChanged() int64 {
	total := r.CountryRowsChanged
	for _, c := range r.Currencies {
		total += c.RowsChanged
	}
	return total
}
