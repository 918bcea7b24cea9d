package balancerepo

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IBalanceRepository interface {
	// IncrementEarnings adds amount to the provider's cumulative earnings in a
	// single atomic upsert, creating a zero-baseline row on first use. There
	// is intentionally no decrement or reset counterpart.
	IncrementEarnings(ctx context.Context, provider string, amount float64) error

	// GetBalance returns the provider's cumulative earnings, 0 for an unknown
	// provider. It never returns a not-found error.
	GetBalance(ctx context.Context, provider string) (float64, error)

	// ListBalances returns every provider balance row.
	ListBalances(ctx context.Context) ([]domain.ProviderBalance, error)
}
