package domain

// Currency is a tracked currency together with its baseline value.
// RuName and EnName form the stable identity; Code and BaselineValue
// are attributes that re-seeding may overwrite.
type Currency struct {
	ID            int64   `json:"id"`
	RuName        string  `json:"ruName"`
	EnName        string  `json:"enName"`
	Code          int     `json:"code"`
	BaselineValue float64 `json:"baselineValue"`
	AuditFields
}

// SeedRecord is one entry of the currency seed file.
type SeedRecord struct {
	RuName string `yaml:"ru_name" json:"ru_name"`
	EnName string `yaml:"en_name" json:"en_name"`
	Code   int    `yaml:"cur_code" json:"cur_code"`
}
