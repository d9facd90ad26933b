package domain

import "time"

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// YearSpan is the difference between the calendar years of End and Start.
func (r DateRange) YearSpan() int {
	return r.End.Year() - r.Start.Year()
}
