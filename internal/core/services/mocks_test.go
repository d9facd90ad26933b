package services_test

import (
	"context"
	"time"

	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) UpsertCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, bool, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Currency), args.Bool(1), args.Error(2)
}

func (m *MockCurrencyRepository) FindCurrencyByEnName(ctx context.Context, enName string) (*domain.Currency, error) {
	args := m.Called(ctx, enName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock CountryRepository ---
type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) UpsertCountries(ctx context.Context, countries domain.CountriesByCurrency) (int64, error) {
	args := m.Called(ctx, countries)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountryRepository) ListCountries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCountryRepository) FindCurrencyIDByCountry(ctx context.Context, country string) (int64, error) {
	args := m.Called(ctx, country)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock ValueRepository ---
type MockValueRepository struct {
	mock.Mock
}

func (m *MockValueRepository) UpsertValues(ctx context.Context, currency domain.Currency, series []domain.ValuePoint) (int64, error) {
	args := m.Called(ctx, currency, series)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockValueRepository) QueryCountrySeries(ctx context.Context, country string, start, end time.Time) (int64, []domain.RelativePoint, error) {
	args := m.Called(ctx, country, start, end)
	if args.Get(1) == nil {
		return args.Get(0).(int64), nil, args.Error(2)
	}
	return args.Get(0).(int64), args.Get(1).([]domain.RelativePoint), args.Error(2)
}

// --- Mock scrapers ---
type MockCountryFetcher struct {
	mock.Mock
}

func (m *MockCountryFetcher) FetchMapping(ctx context.Context, known map[string]struct{}) (domain.CountriesByCurrency, error) {
	args := m.Called(ctx, known)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.CountriesByCurrency), args.Error(1)
}

type MockHistoryFetcher struct {
	mock.Mock
}

func (m *MockHistoryFetcher) FetchHistory(ctx context.Context, code int, start, end time.Time) ([]domain.RawPoint, error) {
	args := m.Called(ctx, code, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPoint), args.Error(1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixedNow is the wall clock every validator in these tests runs against.
var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
