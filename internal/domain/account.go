// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrOwnerAlreadyExists indicates that the owner already holds an account.
	ErrOwnerAlreadyExists = errors.New("owner already has an account")
	// ErrAccountInactive indicates that the account is deactivated.
	ErrAccountInactive = errors.New("account is inactive")
	// ErrAccountOwnerMismatch indicates that the account belongs to another user.
	ErrAccountOwnerMismatch = errors.New("account doesn't belong to the authenticated user")
	// ErrInvalidAmount indicates a non-positive amount.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account holds member savings and the derived loan capacity.
type Account struct {
	ID               int64           `json:"id"`
	Owner            string          `json:"owner"`
	Balance          decimal.Decimal `json:"balance"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	LoanCapacity     decimal.Decimal `json:"loan_capacity"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// UpdateAccountFundsParams holds the account aggregates written by a savings entry.
type UpdateAccountFundsParams struct {
	ID               int64
	Balance          decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	LoanCapacity     decimal.Decimal
}

// ListAccountsParams is the input data to page through active accounts.
type ListAccountsParams struct {
	AfterID int64
	Limit   int32
}

// CapacityChange is the outcome of recomputing an account's loan capacity.
type CapacityChange struct {
	Account  Account
	Previous decimal.Decimal
	// Clamped is set when committed principal exceeds the savings-derived capacity.
	Clamped bool
}

// Changed reports whether the stored capacity was overwritten.
func (c CapacityChange) Changed() bool {
	return !c.Previous.Equal(c.Account.LoanCapacity)
}
