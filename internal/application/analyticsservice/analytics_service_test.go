package analyticsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

type fakeEventRepo struct {
	counts    map[domain.EventKind]int64
	streams   map[string]*domain.StreamStats
	downloads map[string]*domain.DownloadStats
	err       error
}

func (f *fakeEventRepo) Create(ctx context.Context, event *domain.Event) error { return nil }

func (f *fakeEventRepo) CountByKind(ctx context.Context, kind domain.EventKind) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.counts[kind], nil
}

func (f *fakeEventRepo) StreamStatsByProvider(ctx context.Context, provider string) (*domain.StreamStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if stats, ok := f.streams[provider]; ok {
		return stats, nil
	}
	return &domain.StreamStats{}, nil
}

func (f *fakeEventRepo) DownloadStatsByProvider(ctx context.Context, provider string) (*domain.DownloadStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	if stats, ok := f.downloads[provider]; ok {
		return stats, nil
	}
	return &domain.DownloadStats{}, nil
}

type fakeBalanceRepo struct {
	balances map[string]float64
}

func (f *fakeBalanceRepo) IncrementEarnings(ctx context.Context, provider string, amount float64) error {
	f.balances[provider] += amount
	return nil
}

func (f *fakeBalanceRepo) GetBalance(ctx context.Context, provider string) (float64, error) {
	return f.balances[provider], nil
}

func (f *fakeBalanceRepo) ListBalances(ctx context.Context) ([]domain.ProviderBalance, error) {
	out := make([]domain.ProviderBalance, 0, len(f.balances))
	for provider, earnings := range f.balances {
		out = append(out, domain.ProviderBalance{Provider: provider, Earnings: earnings})
	}
	return out, nil
}

func newTestService(events *fakeEventRepo, balances *fakeBalanceRepo, providers ...string) IAnalyticsService {
	if len(providers) == 0 {
		providers = []string{"MTN", "Airtel", "Glo", "9mobile", "Spectranet"}
	}
	return New(events, balances, config.AnalyticsConfig{Providers: providers}, zerolog.Nop())
}

func TestSummary(t *testing.T) {
	events := &fakeEventRepo{counts: map[domain.EventKind]int64{
		domain.EventKindView:     120,
		domain.EventKindStream:   45,
		domain.EventKindDownload: 7,
	}}
	balances := &fakeBalanceRepo{balances: map[string]float64{
		"MTN":    150.50,
		"Airtel": 49.50,
	}}

	report, err := newTestService(events, balances).Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(120), report.Views)
	require.Equal(t, int64(45), report.Streams)
	require.Equal(t, int64(7), report.Downloads)
	require.InDelta(t, 200.0, report.Earnings, 1e-9)
}

func TestSummaryRepoError(t *testing.T) {
	events := &fakeEventRepo{err: errors.New("connection reset")}
	balances := &fakeBalanceRepo{balances: map[string]float64{}}

	_, err := newTestService(events, balances).Summary(context.Background())
	require.Error(t, err)
}

func TestProviderBreakdownKeys(t *testing.T) {
	events := &fakeEventRepo{
		streams:   map[string]*domain.StreamStats{},
		downloads: map[string]*domain.DownloadStats{},
	}
	balances := &fakeBalanceRepo{balances: map[string]float64{}}

	breakdown, err := newTestService(events, balances).ProviderBreakdown(context.Background())
	require.NoError(t, err)

	// The shipped provider list maps to the dashboard's historical keys.
	for _, key := range []string{"mtn", "airtel", "glo", "mobile9", "spectra"} {
		require.Contains(t, breakdown, key)
	}
	require.Len(t, breakdown, 5)
}

func TestProviderBreakdownAggregates(t *testing.T) {
	events := &fakeEventRepo{
		streams: map[string]*domain.StreamStats{
			"MTN": {Users: 12, Seconds: 7200, DataUsedMB: 340.5, Earnings: 12960},
		},
		downloads: map[string]*domain.DownloadStats{
			"MTN": {Count: 4, Earnings: 200},
		},
	}
	balances := &fakeBalanceRepo{balances: map[string]float64{}}

	breakdown, err := newTestService(events, balances, "MTN").ProviderBreakdown(context.Background())
	require.NoError(t, err)

	mtn := breakdown["mtn"]
	require.NotNil(t, mtn)
	require.Equal(t, int64(12), mtn.Users)
	require.InDelta(t, 2.0, mtn.Hours, 1e-9)
	require.InDelta(t, 340.5, mtn.DataMB, 1e-9)
	require.Equal(t, int64(4), mtn.Downloads)
	require.InDelta(t, 13160.0, mtn.Earnings, 1e-9)
}

func TestProviderBreakdownUnknownProviderFallsBackToLowercase(t *testing.T) {
	events := &fakeEventRepo{
		streams:   map[string]*domain.StreamStats{},
		downloads: map[string]*domain.DownloadStats{},
	}
	balances := &fakeBalanceRepo{balances: map[string]float64{}}

	breakdown, err := newTestService(events, balances, "Starlink").ProviderBreakdown(context.Background())
	require.NoError(t, err)
	require.Contains(t, breakdown, "starlink")
}

func TestProviderBalanceUnknownProviderIsZero(t *testing.T) {
	events := &fakeEventRepo{}
	balances := &fakeBalanceRepo{balances: map[string]float64{"MTN": 99.0}}
	svc := newTestService(events, balances)

	balance, err := svc.ProviderBalance(context.Background(), "Glo")
	require.NoError(t, err)
	require.Zero(t, balance)

	balance, err = svc.ProviderBalance(context.Background(), "MTN")
	require.NoError(t, err)
	require.InDelta(t, 99.0, balance, 1e-9)
}
