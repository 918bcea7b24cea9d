package domain

import (
	"encoding/json"
	"time"
)

// WithdrawalRequest is the wire body for POST /withdrawals. NotifyTarget
// overrides the configured company inbox when present.
type WithdrawalRequest struct {
	Identifier     string  `json:"identifier"`
	Code           string  `json:"code"`
	Provider       string  `json:"provider"`
	AccountName    string  `json:"accountName"`
	AccountNumber  string  `json:"accountNumber"`
	BankName       string  `json:"bankName"`
	Phone          string  `json:"phone"`
	Amount         float64 `json:"amount"`
	CurrentBalance float64 `json:"currentBalance"`
	NotifyTarget   string  `json:"notifyTarget"`
}

// Withdrawal is the audit record persisted after a withdrawal request email
// has been dispatched. Payload keeps the raw request body for reconciliation.
type Withdrawal struct {
	ID             string          `json:"id" db:"id"`
	Provider       string          `json:"provider" db:"provider"`
	AccountName    string          `json:"accountName" db:"account_name"`
	AccountNumber  string          `json:"accountNumber" db:"account_number"`
	BankName       string          `json:"bankName" db:"bank_name"`
	Phone          string          `json:"phone" db:"phone"`
	Email          string          `json:"email" db:"email"`
	Amount         float64         `json:"amount" db:"amount"`
	CurrentBalance float64         `json:"currentBalance" db:"current_balance"`
	Payload        json.RawMessage `json:"payload,omitempty" db:"payload"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
