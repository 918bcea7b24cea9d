package withdrawalrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type WithdrawalRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *sql.DB, logger zerolog.Logger) IWithdrawalRepository {
	return &WithdrawalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *WithdrawalRepository) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	if withdrawal.ID == "" {
		withdrawal.ID = uuid.New().String()
	}
	if withdrawal.CreatedAt.IsZero() {
		withdrawal.CreatedAt = time.Now().UTC()
	}

	payload := pqtype.NullRawMessage{
		RawMessage: withdrawal.Payload,
		Valid:      len(withdrawal.Payload) > 0,
	}

	const query = `
		INSERT INTO withdrawal_requests (
			id, provider, account_name, account_number, bank_name,
			phone, email, amount, current_balance, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		withdrawal.ID,
		withdrawal.Provider,
		withdrawal.AccountName,
		withdrawal.AccountNumber,
		withdrawal.BankName,
		withdrawal.Phone,
		withdrawal.Email,
		withdrawal.Amount,
		withdrawal.CurrentBalance,
		payload,
		withdrawal.CreatedAt,
	)
	if err != nil {
		r.logger.Err(err).Str("provider", withdrawal.Provider).Msg("Failed to insert withdrawal request")
		return fmt.Errorf("failed to insert withdrawal request: %v", err)
	}
	return nil
}
