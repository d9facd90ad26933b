package models

import "time"

// CurrencyValue is a row of the currency_values table.
type CurrencyValue struct {
	CurrencyID    int64     `db:"currency_id"`
	ValueDate     time.Time `db:"value_date"`
	RawValue      float64   `db:"raw_value"`
	RelativeValue float64   `db:"relative_value"`
}

// RelativeValue is the projection read by the chart range scan.
type RelativeValue struct {
	ValueDate     time.Time `db:"value_date"`
	RelativeValue float64   `db:"relative_value"`
}
