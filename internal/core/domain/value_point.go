package domain

import "time"

// RawPoint is one upstream observation before normalization.
type RawPoint struct {
	Date  time.Time
	Value float64
}

// ValuePoint is a normalized observation ready to be persisted.
type ValuePoint struct {
	Date          time.Time `json:"date"`
	RawValue      float64   `json:"rawValue"`
	RelativeValue float64   `json:"relativeValue"`
}

// RelativePoint is what the query path reads back for charting.
type RelativePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
