package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsKind is the direction of a savings entry.
type SavingsKind string

// Savings entry kinds.
const (
	SavingsDeposit  SavingsKind = "DEPOSIT"
	SavingsWithdraw SavingsKind = "WITHDRAW"
)

// SavingsEntry is an immutable record of a deposit or a withdrawal.
type SavingsEntry struct {
	ID        int64           `json:"id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"` // always positive
	Kind      SavingsKind     `json:"kind"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateSavingsEntryParams holds data needed to append a savings entry.
type CreateSavingsEntryParams struct {
	AccountID int64
	Amount    decimal.Decimal
	Kind      SavingsKind
	Reference string
}

// SavingsParams is the input data for a deposit or a withdrawal.
type SavingsParams struct {
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// SavingsResult is the result of a deposit or a withdrawal.
type SavingsResult struct {
	Entry    SavingsEntry `json:"entry"`
	Account  Account      `json:"account"`
	Replayed bool         `json:"replayed"`
	Message  string       `json:"message"`
}

// ListSavingsParams is the input data to list savings entries. Zero AccountID matches every account.
type ListSavingsParams struct {
	AccountID int64
	Limit     int32
	Offset    int32
}

// SavingsStats aggregates account savings entries per kind.
type SavingsStats struct {
	DepositCount     int64           `json:"deposit_count"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	WithdrawalCount  int64           `json:"withdrawal_count"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
}
