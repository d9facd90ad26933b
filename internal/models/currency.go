package models

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID    int64   `db:"currency_id"`
	RuName        string  `db:"ru_name"`
	EnName        string  `db:"en_name"`
	CurCode       int     `db:"cur_code"`
	BaselineValue float64 `db:"baseline_value"`
	AuditFields
}
