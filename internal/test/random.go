package test

import (
	"time"

	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// RandomAccount returns an active account with the given lifetime deposits and
// the capacity they yield at the default ratio.
func RandomAccount(deposits decimal.Decimal) domain.Account {
	return domain.Account{
		ID:               randompkg.IntBetween(1, 1000),
		Owner:            randompkg.Owner(),
		Balance:          deposits,
		TotalDeposits:    deposits,
		TotalWithdrawals: decimal.Zero,
		LoanCapacity:     capacity.Compute(deposits, decimal.Zero, capacity.DefaultRatio),
		Active:           true,
		CreatedAt:        time.Now().Truncate(time.Second).UTC(),
		UpdatedAt:        time.Now().Truncate(time.Second).UTC(),
	}
}

// ActiveLoan returns an ACTIVE loan of the account approved at approvedAt.
func ActiveLoan(accountID int64, principal, rate decimal.Decimal, months int32, approvedAt time.Time) domain.Loan {
	total := capacity.Round(principal.Mul(decimal.NewFromInt(1).Add(
		rate.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(12)))))
	due := approvedAt.AddDate(0, int(months), 0)
	next := approvedAt.AddDate(0, 1, 0)

	return domain.Loan{
		ID:               randompkg.IntBetween(1, 1000),
		AccountID:        accountID,
		Reference:        randompkg.Reference(),
		Principal:        principal,
		InterestRate:     rate,
		DurationMonths:   months,
		MonthlyPayment:   capacity.Round(total.Div(decimal.NewFromInt(int64(months)))),
		TotalAmount:      total,
		RemainingBalance: total,
		AmountPaid:       decimal.Zero,
		Purpose:          randompkg.Purpose(),
		Status:           domain.LoanActive,
		ApprovalDate:     &approvedAt,
		DisbursementDate: &approvedAt,
		DueDate:          &due,
		NextPaymentDate:  &next,
		CreatedAt:        approvedAt,
		UpdatedAt:        approvedAt,
	}
}
