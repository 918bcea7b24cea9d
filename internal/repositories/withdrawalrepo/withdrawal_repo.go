package withdrawalrepo

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IWithdrawalRepository interface {
	// Create persists the audit record of a dispatched withdrawal request.
	Create(ctx context.Context, withdrawal *domain.Withdrawal) error
}
