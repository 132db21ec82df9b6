package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrPaymentNotFound indicates that the payment is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentStatus is the outcome of a payment.
type PaymentStatus string

// PaymentCompleted is the only status the engine records.
const PaymentCompleted PaymentStatus = "COMPLETED"

// Payment is an immutable record of a loan repayment.
type Payment struct {
	ID        int64           `json:"id"`
	LoanID    int64           `json:"loan_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreatePaymentParams holds data needed to insert a payment.
type CreatePaymentParams struct {
	LoanID    int64
	AccountID int64
	Amount    decimal.Decimal
	Status    PaymentStatus
	Reference string
}

// ListPaymentsParams filters payments. Zero AccountID matches every account.
type ListPaymentsParams struct {
	AccountID int64
	Limit     int32
	Offset    int32
}

// PayParams is the input data for a loan repayment.
type PayParams struct {
	LoanID    int64           `json:"loan_id"`
	AccountID int64           `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference"`
}

// PaymentResult is the result of a loan repayment.
type PaymentResult struct {
	Payment  Payment         `json:"payment"`
	Loan     Loan            `json:"loan"`
	Account  Account         `json:"account"`
	Restored decimal.Decimal `json:"restored_capacity"`
	Replayed bool            `json:"replayed"`
	Message  string          `json:"message"`
}
