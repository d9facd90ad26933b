package dto

// CountryListResponse lists every country that has been ingested.
type CountryListResponse struct {
	Countries []string `json:"countries"`
}
