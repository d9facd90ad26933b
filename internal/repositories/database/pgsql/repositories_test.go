package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

type RepositoriesTestSuite struct {
	suite.Suite
	pool    *pgxpool.Pool
	cleanup func()
	repos   *portsrepo.RepositoryProvider
	ctx     context.Context
}

func (s *RepositoriesTestSuite) SetupSuite() {
	s.pool, s.cleanup = setupTestDB(s.T())
	s.repos = NewRepositoryProvider(s.pool)
	s.ctx = context.Background()
}

func (s *RepositoriesTestSuite) TearDownSuite() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *RepositoriesTestSuite) SetupTest() {
	truncateAll(s.T(), s.pool)
}

func (s *RepositoriesTestSuite) seedCurrency(ru, en string, code int, baseline float64) domain.Currency {
	saved, _, err := s.repos.CurrencyRepo.UpsertCurrency(s.ctx, domain.Currency{
		RuName: ru, EnName: en, Code: code, BaselineValue: baseline,
	})
	s.Require().NoError(err)
	return *saved
}

func TestRepositoriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(RepositoriesTestSuite))
}

func (s *RepositoriesTestSuite) TestUpsertCurrency_InsertThenNoop() {
	first, changed, err := s.repos.CurrencyRepo.UpsertCurrency(s.ctx, domain.Currency{
		RuName: "Доллар США", EnName: "US Dollar", Code: 52148, BaselineValue: 61.9057,
	})
	s.Require().NoError(err)
	s.True(changed)
	s.NotZero(first.ID)

	second, changed, err := s.repos.CurrencyRepo.UpsertCurrency(s.ctx, domain.Currency{
		RuName: "Доллар США", EnName: "US Dollar", Code: 52148, BaselineValue: 61.9057,
	})
	s.Require().NoError(err)
	s.False(changed)
	s.Equal(first.ID, second.ID)
	s.Equal(61.9057, second.BaselineValue)
}

func (s *RepositoriesTestSuite) TestUpsertCurrency_CodeChangeKeepsIdentity() {
	first := s.seedCurrency("Евро", "Euro", 52170, 69.3406)

	updated, changed, err := s.repos.CurrencyRepo.UpsertCurrency(s.ctx, domain.Currency{
		RuName: "Евро", EnName: "Euro", Code: 52171, BaselineValue: 69.3406,
	})
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(first.ID, updated.ID)
	s.Equal(52171, updated.Code)

	all, err := s.repos.CurrencyRepo.ListCurrencies(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *RepositoriesTestSuite) TestFindCurrency_Unknown() {
	_, err := s.repos.CurrencyRepo.FindCurrencyByEnName(s.ctx, "Galactic Credit")
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositoriesTestSuite) TestUpsertCountries_Idempotent() {
	usd := s.seedCurrency("Доллар США", "US Dollar", 52148, 61.9057)
	mapping := domain.CountriesByCurrency{
		"Доллар США": {"США", "Эквадор"},
	}

	changed, err := s.repos.CountryRepo.UpsertCountries(s.ctx, mapping)
	s.Require().NoError(err)
	s.Equal(int64(2), changed)

	changed, err = s.repos.CountryRepo.UpsertCountries(s.ctx, mapping)
	s.Require().NoError(err)
	s.Zero(changed)

	names, err := s.repos.CountryRepo.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"США", "Эквадор"}, names)

	id, err := s.repos.CountryRepo.FindCurrencyIDByCountry(s.ctx, "Эквадор")
	s.Require().NoError(err)
	s.Equal(usd.ID, id)
}

func (s *RepositoriesTestSuite) TestUpsertCountries_UnknownCurrencyWritesNothing() {
	s.seedCurrency("Доллар США", "US Dollar", 52148, 61.9057)

	_, err := s.repos.CountryRepo.UpsertCountries(s.ctx, domain.CountriesByCurrency{
		"Доллар США":  {"США"},
		"Пиастр Марса": {"Марс"},
	})
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)

	names, err := s.repos.CountryRepo.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *RepositoriesTestSuite) TestUpsertCountries_SharedCountryIsStable() {
	s.seedCurrency("Доллар США", "US Dollar", 52148, 61.9057)
	rand := s.seedCurrency("Ранд", "South African Rand", 52192, 4.1522)
	mapping := domain.CountriesByCurrency{
		"Доллар США": {"Зимбабве"},
		"Ранд":       {"Зимбабве"},
	}

	changed, err := s.repos.CountryRepo.UpsertCountries(s.ctx, mapping)
	s.Require().NoError(err)
	s.Equal(int64(1), changed)

	changed, err = s.repos.CountryRepo.UpsertCountries(s.ctx, mapping)
	s.Require().NoError(err)
	s.Zero(changed)

	id, err := s.repos.CountryRepo.FindCurrencyIDByCountry(s.ctx, "Зимбабве")
	s.Require().NoError(err)
	s.NotEqual(rand.ID, id)
}

func (s *RepositoriesTestSuite) TestUpsertCountries_RebindsCountry() {
	s.seedCurrency("Доллар США", "US Dollar", 52148, 61.9057)
	rand := s.seedCurrency("Ранд", "South African Rand", 52192, 4.1522)

	changed, err := s.repos.CountryRepo.UpsertCountries(s.ctx, domain.CountriesByCurrency{"Доллар США": {"Зимбабве"}})
	s.Require().NoError(err)
	s.Equal(int64(1), changed)

	changed, err = s.repos.CountryRepo.UpsertCountries(s.ctx, domain.CountriesByCurrency{"Ранд": {"Зимбабве"}})
	s.Require().NoError(err)
	s.Equal(int64(1), changed)

	id, err := s.repos.CountryRepo.FindCurrencyIDByCountry(s.ctx, "Зимбабве")
	s.Require().NoError(err)
	s.Equal(rand.ID, id)

	names, err := s.repos.CountryRepo.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Зимбабве"}, names)
}

func (s *RepositoriesTestSuite) TestInTx_RollsBackOnError() {
	usd := s.seedCurrency("Доллар США", "US Dollar", 52148, 61.9057)
	countries := s.repos.CountryRepo.(portsrepo.CountryRepositoryWithTx)
	boom := errors.New("boom")

	err := countries.InTx(s.ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(s.ctx, `INSERT INTO countries (name, currency_id) VALUES ($1, $2);`, "США", usd.ID)
		s.Require().NoError(err)
		return boom
	})
	s.ErrorIs(err, boom)

	names, err := countries.ListCountries(s.ctx)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *RepositoriesTestSuite) TestUpsertValues_IdempotentAndQueryable() {
	usd := s.seedCurrency("Доллар США", "US Dollar", 52148, 70.0)
	_, err := s.repos.CountryRepo.UpsertCountries(s.ctx, domain.CountriesByCurrency{"Доллар США": {"США"}})
	s.Require().NoError(err)

	series := []domain.ValuePoint{
		{Date: date(2023, 1, 11), RawValue: 72.3456, RelativeValue: 2.3456},
		{Date: date(2023, 1, 10), RawValue: 69.5, RelativeValue: -0.5},
		{Date: date(2023, 1, 12), RawValue: 70.0, RelativeValue: 0},
	}

	changed, err := s.repos.ValueRepo.UpsertValues(s.ctx, usd, series)
	s.Require().NoError(err)
	s.Equal(int64(3), changed)

	changed, err = s.repos.ValueRepo.UpsertValues(s.ctx, usd, series)
	s.Require().NoError(err)
	s.Zero(changed)

	series[2].RawValue, series[2].RelativeValue = 71.0, 1.0
	changed, err = s.repos.ValueRepo.UpsertValues(s.ctx, usd, series)
	s.Require().NoError(err)
	s.Equal(int64(1), changed)

	id, points, err := s.repos.ValueRepo.QueryCountrySeries(s.ctx, "США", date(2023, 1, 10), date(2023, 1, 11))
	s.Require().NoError(err)
	s.Equal(usd.ID, id)
	s.Equal([]domain.RelativePoint{
		{Date: date(2023, 1, 10), Value: -0.5},
		{Date: date(2023, 1, 11), Value: 2.3456},
	}, points)
}

func (s *RepositoriesTestSuite) TestUpsertValues_UnknownCurrency() {
	_, err := s.repos.ValueRepo.UpsertValues(s.ctx, domain.Currency{EnName: "Galactic Credit"}, []domain.ValuePoint{
		{Date: date(2023, 1, 10), RawValue: 1, RelativeValue: 0},
	})
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (s *RepositoriesTestSuite) TestQueryCountrySeries_UnknownCountry() {
	_, _, err := s.repos.ValueRepo.QueryCountrySeries(s.ctx, "Атлантида", date(2023, 1, 1), date(2023, 2, 1))
	s.ErrorIs(err, apperrors.ErrUnknownCountry)
}

func (s *RepositoriesTestSuite) TestQueryCountrySeries_EmptyRange() {
	s.seedCurrency("Евро", "Euro", 52170, 69.3406)
	_, err := s.repos.CountryRepo.UpsertCountries(s.ctx, domain.CountriesByCurrency{"Евро": {"Германия"}})
	s.Require().NoError(err)

	_, points, err := s.repos.ValueRepo.QueryCountrySeries(s.ctx, "Германия", date(2023, 1, 1), date(2023, 2, 1))
	s.Require().NoError(err)
	s.Empty(points)
}
