package services_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
	"github.com/d0ggzi/currency-parser/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChartServiceTestSuite struct {
	suite.Suite
	countryRepo *MockCountryRepository
	valueRepo   *MockValueRepository
	service     portssvc.ChartSvc
	ctx         context.Context
}

func (suite *ChartServiceTestSuite) SetupTest() {
	suite.countryRepo = new(MockCountryRepository)
	suite.valueRepo = new(MockValueRepository)
	suite.service = services.NewChartService(suite.countryRepo, suite.valueRepo,
		services.WithChartValidator(services.NewDateRangeValidator(services.WithClock(fixedClock))),
	)
	suite.ctx = context.Background()
}

func TestChartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}

func ptr(v float64) *float64 { return &v }

func (suite *ChartServiceTestSuite) TestQueryChartData_SharedLabelsAndColours() {
	start, end := day(2023, 1, 10), day(2023, 1, 12)
	suite.valueRepo.On("QueryCountrySeries", suite.ctx, "США", start, end).Return(int64(1), []domain.RelativePoint{
		{Date: day(2023, 1, 10), Value: 1.5},
		{Date: day(2023, 1, 11), Value: 2.5},
	}, nil).Once()
	suite.valueRepo.On("QueryCountrySeries", suite.ctx, "Эквадор", start, end).Return(int64(1), []domain.RelativePoint{
		{Date: day(2023, 1, 10), Value: 1.5},
		{Date: day(2023, 1, 11), Value: 2.5},
	}, nil).Once()
	suite.valueRepo.On("QueryCountrySeries", suite.ctx, "Германия", start, end).Return(int64(2), []domain.RelativePoint{
		{Date: day(2023, 1, 11), Value: -0.5},
		{Date: day(2023, 1, 12), Value: -0.75},
	}, nil).Once()

	series, err := suite.service.QueryChartData(suite.ctx, []string{"США", "Эквадор", "Германия"}, "2023-01-10", "2023-01-12")

	suite.Require().NoError(err)
	suite.Equal([]string{"2023-01-10", "2023-01-11", "2023-01-12"}, series.Labels)
	suite.Require().Len(series.Datasets, 3)

	usa, ecuador, germany := series.Datasets[0], series.Datasets[1], series.Datasets[2]
	suite.Equal("США", usa.Label)
	suite.Equal([]*float64{ptr(1.5), ptr(2.5), nil}, usa.Data)
	suite.Equal([]*float64{nil, ptr(-0.5), ptr(-0.75)}, germany.Data)
	suite.Equal(usa.BorderColor, ecuador.BorderColor)
	suite.NotEqual(usa.BorderColor, germany.BorderColor)
	for _, ds := range series.Datasets {
		suite.Len(ds.Data, len(series.Labels))
		suite.Regexp(regexp.MustCompile(`^#[0-9A-F]{6}$`), ds.BorderColor)
	}
	suite.valueRepo.AssertExpectations(suite.T())
}

func (suite *ChartServiceTestSuite) TestQueryChartData_InjectedColour() {
	calls := 0
	svc := services.NewChartService(suite.countryRepo, suite.valueRepo,
		services.WithChartValidator(services.NewDateRangeValidator(services.WithClock(fixedClock))),
		services.WithColorFunc(func(id int64) string {
			calls++
			return "#000000"
		}),
	)
	suite.valueRepo.On("QueryCountrySeries", suite.ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(7), []domain.RelativePoint{}, nil).Twice()

	series, err := svc.QueryChartData(suite.ctx, []string{"США", "Эквадор"}, "2023-01-10", "2023-01-12")

	suite.Require().NoError(err)
	suite.Empty(series.Labels)
	suite.Equal("#000000", series.Datasets[1].BorderColor)
	suite.Equal(1, calls, "colour is computed once per currency")
}

func (suite *ChartServiceTestSuite) TestQueryChartData_EmptySelection() {
	_, err := suite.service.QueryChartData(suite.ctx, nil, "2023-01-10", "2023-01-12")

	suite.ErrorIs(err, apperrors.ErrEmptyCountrySelection)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ChartServiceTestSuite) TestQueryChartData_InvalidRange() {
	_, err := suite.service.QueryChartData(suite.ctx, []string{"США"}, "2023-01-12", "2023-01-10")

	suite.ErrorIs(err, apperrors.ErrInvalidRange)
	suite.valueRepo.AssertNotCalled(suite.T(), "QueryCountrySeries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChartServiceTestSuite) TestQueryChartData_UnknownCountry() {
	suite.valueRepo.On("QueryCountrySeries", suite.ctx, "Атлантида", mock.Anything, mock.Anything).
		Return(int64(0), nil, apperrors.ErrUnknownCountry).Once()

	_, err := suite.service.QueryChartData(suite.ctx, []string{"Атлантида"}, "2023-01-10", "2023-01-12")

	suite.ErrorIs(err, apperrors.ErrUnknownCountry)
}

func (suite *ChartServiceTestSuite) TestListCountries() {
	suite.countryRepo.On("ListCountries", suite.ctx).Return([]string{"США", "Германия"}, nil).Once()

	countries, err := suite.service.ListCountries(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"США", "Германия"}, countries)
}

func TestHashColor(t *testing.T) {
	assert.Equal(t, services.HashColor(42), services.HashColor(42))
	assert.NotEqual(t, services.HashColor(1), services.HashColor(2))
	assert.Regexp(t, `^#[0-9A-F]{6}$`, services.HashColor(12345))
}
