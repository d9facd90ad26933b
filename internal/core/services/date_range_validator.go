package services

import (
	"fmt"
	"time"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
)

// Epoch is the earliest date the history source has data for.
var Epoch = time.Date(1992, time.July, 3, 0, 0, 0, 0, time.UTC)

// maxIngestionYearSpan bounds how many calendar years one ingestion run may cover.
const maxIngestionYearSpan = 2

// DateRangeValidator checks user supplied date windows before any I/O happens.
type DateRangeValidator struct {
	now func() time.Time
}

// ValidatorOption configures a DateRangeValidator.
type ValidatorOption func(*DateRangeValidator)

// WithClock replaces the wall clock used for the "not in the future" check.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *DateRangeValidator) {
		v.now = now
	}
}

func NewDateRangeValidator(opts ...ValidatorOption) *DateRangeValidator {
	v := &DateRangeValidator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate fails with ErrInvalidRange when end is after today, start precedes
// Epoch, or start is after end.
func (v *DateRangeValidator) Validate(r domain.DateRange) error {
	// Calendar days are compared in the clock's own zone so that "today" is
	// accepted from local midnight on.
	today := domain.DateOnly(v.now())
	switch {
	case domain.DateOnly(r.End).After(today):
		return fmt.Errorf("%w: end date %s is after today (%s)", apperrors.ErrInvalidRange,
			r.End.Format(domain.DateLayout), today.Format(domain.DateLayout))
	case r.Start.Before(Epoch):
		return fmt.Errorf("%w: start date must not be earlier than %s", apperrors.ErrInvalidRange, Epoch.Format(domain.DateLayout))
	case r.Start.After(r.End):
		return fmt.Errorf("%w: start date must be before end date", apperrors.ErrInvalidRange)
	}
	return nil
}

// ValidateIngestion applies Validate plus the year span limit for scraping runs.
func (v *DateRangeValidator) ValidateIngestion(r domain.DateRange) error {
	if err := v.Validate(r); err != nil {
		return err
	}
	if r.YearSpan() > maxIngestionYearSpan {
		return fmt.Errorf("%w: years may differ by at most %d", apperrors.ErrInvalidRange, maxIngestionYearSpan)
	}
	return nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a UTC DateRange.
func ParseDateRange(start, end string) (domain.DateRange, error) {
	s, err := time.Parse(domain.DateLayout, start)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: start date %q is not YYYY-MM-DD", apperrors.ErrInvalidRange, start)
	}
	e, err := time.Parse(domain.DateLayout, end)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: end date %q is not YYYY-MM-DD", apperrors.ErrInvalidRange, end)
	}
	return domain.DateRange{Start: s, End: e}, nil
}
