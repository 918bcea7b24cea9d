package analyticsservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/balancerepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/eventrepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/currency"
)

// reportKeys maps provider display names to their dashboard JSON keys.
// Providers outside the table fall back to their lowercased name.
var reportKeys = map[string]string{
	"Airtel":     "airtel",
	"MTN":        "mtn",
	"Glo":        "glo",
	"9mobile":    "mobile9",
	"Spectranet": "spectra",
}

type analyticsService struct {
	eventRepo   eventrepo.IEventRepository
	balanceRepo balancerepo.IBalanceRepository
	providers   []string
	currency    *currency.CurrencyUtils
	logger      zerolog.Logger
}

func New(
	eventRepo eventrepo.IEventRepository,
	balanceRepo balancerepo.IBalanceRepository,
	cfg config.AnalyticsConfig,
	logger zerolog.Logger,
) IAnalyticsService {
	return &analyticsService{
		eventRepo:   eventRepo,
		balanceRepo: balanceRepo,
		providers:   cfg.Providers,
		currency:    currency.NewCurrencyUtils(),
		logger:      logger,
	}
}

func (s *analyticsService) Summary(ctx context.Context) (*domain.SummaryReport, error) {
	report := &domain.SummaryReport{}

	counts := []struct {
		kind domain.EventKind
		dst  *int64
	}{
		{domain.EventKindView, &report.Views},
		{domain.EventKindStream, &report.Streams},
		{domain.EventKindDownload, &report.Downloads},
	}
	for _, c := range counts {
		n, err := s.eventRepo.CountByKind(ctx, c.kind)
		if err != nil {
			return nil, fmt.Errorf("failed to build summary: %v", err)
		}
		*c.dst = n
	}

	// Total earnings come from the ledger, so the summary reconciles with the
	// per-provider balance endpoint by construction.
	balances, err := s.balanceRepo.ListBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %v", err)
	}
	for _, b := range balances {
		report.Earnings += b.Earnings
	}

	return report, nil
}

func (s *analyticsService) ProviderBreakdown(ctx context.Context) (map[string]*domain.ProviderReport, error) {
	breakdown := make(map[string]*domain.ProviderReport, len(s.providers))

	for _, provider := range s.providers {
		streams, err := s.eventRepo.StreamStatsByProvider(ctx, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate provider %s: %v", provider, err)
		}
		downloads, err := s.eventRepo.DownloadStatsByProvider(ctx, provider)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate provider %s: %v", provider, err)
		}

		breakdown[reportKey(provider)] = &domain.ProviderReport{
			Users:     streams.Users,
			Hours:     s.currency.SecondsToHours(streams.Seconds),
			DataMB:    streams.DataUsedMB,
			Downloads: downloads.Count,
			Earnings:  streams.Earnings + downloads.Earnings,
		}
	}

	return breakdown, nil
}

func (s *analyticsService) ProviderBalance(ctx context.Context, provider string) (float64, error) {
	return s.balanceRepo.GetBalance(ctx, provider)
}

func reportKey(provider string) string {
	if key, ok := reportKeys[provider]; ok {
		return key
	}
	return strings.ToLower(provider)
}
