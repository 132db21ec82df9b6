package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrLoanNotFound indicates that the loan is not found.
	ErrLoanNotFound = errors.New("loan not found")
	// ErrInvalidLoanState indicates that the operation is not allowed in the loan's current status.
	ErrInvalidLoanState = errors.New("operation not allowed in current loan status")
	// ErrLoanOwnerMismatch indicates that the loan belongs to another account.
	ErrLoanOwnerMismatch = errors.New("loan doesn't belong to the account")
	// ErrCapacityExceeded indicates that the principal exceeds the available loan capacity.
	ErrCapacityExceeded = errors.New("loan capacity exceeded")
	// ErrBelowMinimum indicates that the principal is below the configured floor.
	ErrBelowMinimum = errors.New("principal below minimum")
	// ErrBalanceBelowMinimum indicates that the account balance is below the lending floor.
	ErrBalanceBelowMinimum = errors.New("balance below minimum required for a loan")
	// ErrInvalidDuration indicates a duration shorter than one month.
	ErrInvalidDuration = errors.New("duration must be at least one month")
	// ErrInvalidRate indicates a non-positive interest rate.
	ErrInvalidRate = errors.New("interest rate must be positive")
	// ErrNotOverdue indicates that the loan is still within its grace period.
	ErrNotOverdue = errors.New("loan is not past its grace period")
	// ErrInvalidLoanStatus indicates an unknown loan status filter.
	ErrInvalidLoanStatus = errors.New("unknown loan status")
	// ErrAmountExceedsBalance indicates a payment larger than the remaining balance.
	ErrAmountExceedsBalance = errors.New("payment exceeds remaining balance")
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

// Loan statuses.
const (
	LoanPending   LoanStatus = "PENDING"
	LoanActive    LoanStatus = "ACTIVE"
	LoanCompleted LoanStatus = "COMPLETED"
	LoanRejected  LoanStatus = "REJECTED"
	LoanDefaulted LoanStatus = "DEFAULTED"
)

// Valid reports whether s is a known status.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanActive, LoanCompleted, LoanRejected, LoanDefaulted:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible from s.
func (s LoanStatus) Terminal() bool {
	return s == LoanCompleted || s == LoanRejected || s == LoanDefaulted
}

// Loan holds a member loan and its repayment state.
type Loan struct {
	ID               int64           `json:"id"`
	AccountID        int64           `json:"account_id"`
	Reference        string          `json:"reference"`
	Principal        decimal.Decimal `json:"principal"`
	InterestRate     decimal.Decimal `json:"interest_rate"` // percent per year
	DurationMonths   int32           `json:"duration_months"`
	MonthlyPayment   decimal.Decimal `json:"monthly_payment"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	Purpose          string          `json:"purpose"`
	Status           LoanStatus      `json:"status"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	ApprovalDate     *time.Time      `json:"approval_date,omitempty"`
	DisbursementDate *time.Time      `json:"disbursement_date,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	NextPaymentDate  *time.Time      `json:"next_payment_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ApplyLoanParams is the input data for a loan application.
type ApplyLoanParams struct {
	AccountID      int64           `json:"account_id"`
	Principal      decimal.Decimal `json:"principal"`
	DurationMonths int32           `json:"duration_months"`
	Purpose        string          `json:"purpose"`
	Reference      string          `json:"reference"`
}

// CreateLoanParams holds data needed to insert a PENDING loan.
type CreateLoanParams struct {
	AccountID      int64
	Reference      string
	Principal      decimal.Decimal
	InterestRate   decimal.Decimal
	DurationMonths int32
	MonthlyPayment decimal.Decimal
	TotalAmount    decimal.Decimal
	Purpose        string
}

// ApplicationResult is the result of a loan application.
type ApplicationResult struct {
	Loan     Loan `json:"loan"`
	Replayed bool `json:"replayed"`
}

// ApproveLoanParams is the input data for a loan approval.
type ApproveLoanParams struct {
	LoanID       int64            `json:"loan_id"`
	InterestRate *decimal.Decimal `json:"interest_rate,omitempty"`
}

// ApprovalResult is the result of a loan approval.
type ApprovalResult struct {
	Loan    Loan    `json:"loan"`
	Account Account `json:"account"`
}

// ListLoansParams filters loans. Zero AccountID and empty Status match everything.
type ListLoansParams struct {
	AccountID int64
	Status    LoanStatus
	Limit     int32
	Offset    int32
}

// OverdueLoansParams pages through ACTIVE loans with a payment date before Before.
type OverdueLoansParams struct {
	Before  time.Time
	AfterID int64
	Limit   int32
}

// Eligibility describes how much an account may currently borrow.
type Eligibility struct {
	Eligible             bool            `json:"eligible"`
	Capacity             decimal.Decimal `json:"capacity"`
	OutstandingPrincipal decimal.Decimal `json:"outstanding_principal"`
	Available            decimal.Decimal `json:"available"`
	CurrentBalance       decimal.Decimal `json:"current_balance"`
	TotalDeposits        decimal.Decimal `json:"total_deposits"`
	TotalWithdrawals     decimal.Decimal `json:"total_withdrawals"`
	MinBalanceRequired   decimal.Decimal `json:"min_balance_required"`
	Reason               string          `json:"reason,omitempty"`
}

// LoanStats summarizes an account's borrowing history.
type LoanStats struct {
	ActiveLoans    int64           `json:"active_loans"`
	CompletedLoans int64           `json:"completed_loans"`
	TotalBorrowed  decimal.Decimal `json:"total_borrowed"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
}
