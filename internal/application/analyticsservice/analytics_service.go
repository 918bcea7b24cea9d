package analyticsservice

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IAnalyticsService interface {
	// Summary returns global event counts plus total earnings summed from the
	// materialized provider balances.
	Summary(ctx context.Context) (*domain.SummaryReport, error)

	// ProviderBreakdown re-aggregates raw events for every configured
	// provider. Keys follow the dashboard contract (lowercased provider
	// nicknames for the shipped defaults).
	ProviderBreakdown(ctx context.Context) (map[string]*domain.ProviderReport, error)

	// ProviderBalance returns the ledger balance for one provider, 0 when the
	// provider has never earned.
	ProviderBalance(ctx context.Context, provider string) (float64, error)
}
