package domain

// ChartDataset is one country's line, aligned to ChartSeries.Labels.
// A nil entry in Data marks a label date the currency has no value for.
type ChartDataset struct {
	Label       string     `json:"label"`
	Data        []*float64 `json:"data"`
	BorderColor string     `json:"borderColor"`
}

// ChartSeries is the Chart.js-shaped result of a chart query.
type ChartSeries struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}
