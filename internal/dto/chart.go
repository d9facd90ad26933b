package dto

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// ChartRequest selects the countries and window to chart.
// An empty country list is rejected by the chart service.
type ChartRequest struct {
	Countries []string `json:"countries" binding:"dive,required" example:"США,Германия"`
	StartDate string   `json:"start_date" binding:"required,datetime=2006-01-02" example:"2023-01-01"`
	EndDate   string   `json:"end_date" binding:"required,datetime=2006-01-02" example:"2023-03-31"`
}

// ChartDatasetResponse is one Chart.js line. Null entries mark missing dates.
type ChartDatasetResponse struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	BorderColor string     `json:"borderColor"`
}

// ChartResponse is the Chart.js data object.
type ChartResponse struct {
	Labels   []string               `json:"labels"`
	Datasets []ChartDatasetResponse `json:"datasets"`
}

// ToChartResponse converts a domain.ChartSeries to ChartResponse DTO
func ToChartResponse(series *domain.ChartSeries) ChartResponse {
	datasets := make([]ChartDatasetResponse, len(series.Datasets))
	for i, ds := range series.Datasets {
		datasets[i] = ChartDatasetResponse{
			Label:       ds.Label,
			Data:        ds.Data,
			BorderColor: ds.BorderColor,
		}
	}
	labels := series.Labels
	if labels == nil {
		labels = []string{}
	}
	return ChartResponse{Labels: labels, Datasets: datasets}
}
