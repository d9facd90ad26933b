package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
)

// ColorFunc picks the line colour for a stored currency.
type ColorFunc func(currencyID int64) string

// HashColor derives a stable #RRGGBB colour from the currency id.
func HashColor(currencyID int64) string {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(currencyID))
	h := fnv.New32a()
	_, _ = h.Write(buf[:])
	return fmt.Sprintf("#%06X", h.Sum32()&0xFFFFFF)
}

type chartService struct {
	BaseService
	countryRepo portsrepo.CountryReader
	valueRepo   portsrepo.ValueReader
	validator   *DateRangeValidator
	color       ColorFunc
}

// ChartServiceOption configures the chart service.
type ChartServiceOption func(*chartService)

func WithColorFunc(fn ColorFunc) ChartServiceOption {
	return func(s *chartService) {
		s.color = fn
	}
}

func WithChartValidator(v *DateRangeValidator) ChartServiceOption {
	return func(s *chartService) {
		s.validator = v
	}
}

func NewChartService(countryRepo portsrepo.CountryReader, valueRepo portsrepo.ValueReader, opts ...ChartServiceOption) portssvc.ChartSvc {
	s := &chartService{
		countryRepo: countryRepo,
		valueRepo:   valueRepo,
		validator:   NewDateRangeValidator(),
		color:       HashColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *chartService) ListCountries(ctx context.Context) ([]string, error) {
	countries, err := s.countryRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries in service: %w", err)
	}
	if countries == nil {
		return []string{}, nil
	}
	return countries, nil
}

// QueryChartData builds one dataset per requested country. Labels are the sorted
// union of every dataset's dates and each data slice holds nil where a currency
// has no value for a label.
func (s *chartService) QueryChartData(ctx context.Context, countries []string, startDate, endDate string) (*domain.ChartSeries, error) {
	r, err := ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(r); err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, apperrors.ErrEmptyCountrySelection
	}

	type countrySeries struct {
		name       string
		currencyID int64
		values     map[string]float64
	}
	collected := make([]countrySeries, 0, len(countries))
	dates := make(map[string]struct{})
	for _, country := range countries {
		currencyID, points, err := s.valueRepo.QueryCountrySeries(ctx, country, r.Start, r.End)
		if err != nil {
			return nil, fmt.Errorf("failed to load series for %q: %w", country, err)
		}
		values := make(map[string]float64, len(points))
		for _, p := range points {
			label := p.Date.Format(domain.DateLayout)
			values[label] = p.Value
			dates[label] = struct{}{}
		}
		collected = append(collected, countrySeries{name: country, currencyID: currencyID, values: values})
	}

	labels := make([]string, 0, len(dates))
	for d := range dates {
		labels = append(labels, d)
	}
	sort.Strings(labels)

	colors := make(map[int64]string)
	datasets := make([]domain.ChartDataset, 0, len(collected))
	for _, cs := range collected {
		color, ok := colors[cs.currencyID]
		if !ok {
			color = s.color(cs.currencyID)
			colors[cs.currencyID] = color
		}
		data := make([]*float64, len(labels))
		for i, label := range labels {
			if v, ok := cs.values[label]; ok {
				data[i] = &v
			}
		}
		datasets = append(datasets, domain.ChartDataset{
			Label:       cs.name,
			Data:        data,
			BorderColor: color,
		})
	}

	s.LogDebug(ctx, "Chart data assembled",
		slog.Int("countries", len(countries)),
		slog.Int("labels", len(labels)))
	return &domain.ChartSeries{Labels: labels, Datasets: datasets}, nil
}
