package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates a date window outside the accepted bounds or in the wrong order.
var ErrInvalidRange = fmt.Errorf("%w: invalid date range", ErrValidation)

// ErrEmptyCountrySelection is returned when a chart query names no countries.
var ErrEmptyCountrySelection = fmt.Errorf("%w: no countries selected", ErrValidation)

// ErrUnknownCurrency indicates a lookup for a currency that has not been seeded.
var ErrUnknownCurrency = fmt.Errorf("%w: unknown currency", ErrNotFound)

// ErrUnknownCountry indicates a lookup for a country that has never been ingested.
var ErrUnknownCountry = fmt.Errorf("%w: unknown country", ErrNotFound)

// ErrNoBaselineData is returned when upstream has no value for a currency on the baseline date.
var ErrNoBaselineData = errors.New("no baseline data")

// ErrFetch indicates the upstream source was unreachable or answered with a non-success status.
var ErrFetch = errors.New("upstream fetch failed")

// ErrParse indicates the upstream markup no longer has the expected shape.
var ErrParse = errors.New("upstream markup could not be parsed")

// AppError carries an HTTP status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// HTTPStatus maps an error from any layer onto the status code the API should answer with.
func HTTPStatus(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFetch), errors.Is(err, ErrParse):
		return http.StatusBadGateway
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
