package balancerepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type BalanceRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *sql.DB, logger zerolog.Logger) IBalanceRepository {
	return &BalanceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BalanceRepository) IncrementEarnings(ctx context.Context, provider string, amount float64) error {
	// The increment happens inside the store so concurrent requests for the
	// same provider never race a read-modify-write in the client.
	const query = `
		INSERT INTO provider_balances (provider, earnings, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider)
		DO UPDATE SET
			earnings = provider_balances.earnings + EXCLUDED.earnings,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, provider, amount, time.Now().UTC())
	if err != nil {
		r.logger.Err(err).Str("provider", provider).Float64("amount", amount).Msg("Failed to increment provider earnings")
		return fmt.Errorf("failed to increment earnings for %s: %v", provider, err)
	}
	return nil
}

func (r *BalanceRepository) GetBalance(ctx context.Context, provider string) (float64, error) {
	var earnings float64
	err := r.db.QueryRowContext(ctx,
		`SELECT earnings FROM provider_balances WHERE provider = $1`, provider,
	).Scan(&earnings)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %s: %v", provider, err)
	}
	return earnings, nil
}

func (r *BalanceRepository) ListBalances(ctx context.Context) ([]domain.ProviderBalance, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT provider, earnings, updated_at FROM provider_balances`)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider balances: %v", err)
	}
	defer rows.Close()

	var balances []domain.ProviderBalance
	for rows.Next() {
		var b domain.ProviderBalance
		if err := rows.Scan(&b.Provider, &b.Earnings, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan provider balance: %v", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read provider balances: %v", err)
	}
	return balances, nil
}
