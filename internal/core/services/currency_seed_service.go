package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/d0ggzi/currency-parser/internal/apperrors"
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	portsrepo "github.com/d0ggzi/currency-parser/internal/core/ports/repositories"
	portssvc "github.com/d0ggzi/currency-parser/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	baseline     *BaselineResolver
}

// NewCurrencyService creates the service that seeds and lists tracked currencies.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, baseline *BaselineResolver) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		baseline:     baseline,
	}
}

// SeedCurrencies resolves the baseline of every record and upserts it.
// The first record without baseline data aborts seeding with ErrNoBaselineData.
func (s *currencyService) SeedCurrencies(ctx context.Context, records []domain.SeedRecord, baselineDate time.Time) ([]domain.Currency, error) {
	seeded := make([]domain.Currency, 0, len(records))
	var changedCount int
	for i, rec := range records {
		if rec.RuName == "" || rec.EnName == "" || rec.Code <= 0 {
			return nil, fmt.Errorf("%w: seed record %d needs ru_name, en_name and a positive cur_code",
				apperrors.ErrValidation, i)
		}

		value, err := s.baseline.ResolveBaseline(ctx, rec.Code, baselineDate)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve baseline", slog.String("currency", rec.EnName), slog.Int("code", rec.Code))
			return nil, fmt.Errorf("seed %s: %w", rec.EnName, err)
		}

		saved, changed, err := s.currencyRepo.UpsertCurrency(ctx, domain.Currency{
			RuName:        rec.RuName,
			EnName:        rec.EnName,
			Code:          rec.Code,
			BaselineValue: value,
		})
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", rec.EnName, err)
		}
		if changed {
			changedCount++
		}
		s.LogDebug(ctx, "Currency seeded",
			slog.String("currency", saved.EnName),
			slog.Float64("baseline", saved.BaselineValue),
			slog.Bool("changed", changed))
		seeded = append(seeded, *saved)
	}

	s.LogInfo(ctx, "Currency seeding finished",
		slog.Int("currencies", len(seeded)),
		slog.Int("changed", changedCount),
		slog.String("baseline_date", baselineDate.Format(domain.DateLayout)))
	return seeded, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
