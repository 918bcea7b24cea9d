package domain

import (
	"time"
)

// ProviderBalance is the cumulative earnings ledger entry for one provider.
// The row is created on the first increment and only ever grows; there is no
// decrement, reset or delete operation anywhere in the system.
type ProviderBalance struct {
	Provider  string    `json:"provider" db:"provider"`
	Earnings  float64   `json:"earnings" db:"earnings"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
