package withdrawalservice

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IWithdrawalService interface {
	// SendVerificationCode stores a one-time code for the identifier and
	// emails it. A re-issue replaces any outstanding code. The stored code is
	// kept even when delivery fails.
	SendVerificationCode(ctx context.Context, identifier, code string) error

	// RequestWithdrawal consumes the identifier's code (atomically, so the
	// same code can never dispatch two notifications) and emails the
	// withdrawal request to the company inbox.
	RequestWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) error
}
