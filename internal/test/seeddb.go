// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"

	"github.com/go-petr/pet-loans/internal/accountrepo"
	"github.com/go-petr/pet-loans/internal/capacity"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/loanrepo"
	"github.com/go-petr/pet-loans/internal/savingsrepo"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/go-petr/pet-loans/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedAccount creates an empty account with a random owner inside a test transaction.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface) domain.Account {
	t.Helper()

	owner := randompkg.Owner() + randompkg.String(6)

	account, err := accountrepo.NewRepoPGS(tx).CreateAccount(context.Background(), owner)
	if err != nil {
		t.Fatalf("accountRepo.CreateAccount(context.Background(), %v) returned error: %v", owner, err)
	}

	return account
}

// SeedDeposit records a deposit and the resulting account aggregates inside a test transaction.
func SeedDeposit(t *testing.T, tx dbpkg.SQLInterface, account domain.Account, amount decimal.Decimal) (domain.SavingsEntry, domain.Account) {
	t.Helper()

	ctx := context.Background()

	arg := domain.CreateSavingsEntryParams{
		AccountID: account.ID,
		Amount:    amount,
		Kind:      domain.SavingsDeposit,
		Reference: randompkg.Reference(),
	}

	entry, err := savingsrepo.NewRepoPGS(tx).CreateSavingsEntry(ctx, arg)
	if err != nil {
		t.Fatalf("savingsRepo.CreateSavingsEntry(ctx, %+v) returned error: %v", arg, err)
	}

	deposits := account.TotalDeposits.Add(amount)

	updated, err := accountrepo.NewRepoPGS(tx).UpdateAccountFunds(ctx, domain.UpdateAccountFundsParams{
		ID:               account.ID,
		Balance:          account.Balance.Add(amount),
		TotalDeposits:    deposits,
		TotalWithdrawals: account.TotalWithdrawals,
		LoanCapacity:     capacity.Compute(deposits, account.TotalWithdrawals, capacity.DefaultRatio),
	})
	if err != nil {
		t.Fatalf("accountRepo.UpdateAccountFunds returned error: %v", err)
	}

	return entry, updated
}

// SeedLoan creates a PENDING loan of the account inside a test transaction.
func SeedLoan(t *testing.T, tx dbpkg.SQLInterface, accountID int64, principal decimal.Decimal) domain.Loan {
	t.Helper()

	total := capacity.Round(principal.Mul(decimal.RequireFromString("1.06")))

	arg := domain.CreateLoanParams{
		AccountID:      accountID,
		Reference:      randompkg.Reference(),
		Principal:      principal,
		InterestRate:   decimal.NewFromInt(12),
		DurationMonths: 6,
		MonthlyPayment: capacity.Round(total.Div(decimal.NewFromInt(6))),
		TotalAmount:    total,
		Purpose:        randompkg.Purpose(),
	}

	loan, err := loanrepo.NewRepoPGS(tx).CreateLoan(context.Background(), arg)
	if err != nil {
		t.Fatalf("loanRepo.CreateLoan(context.Background(), %+v) returned error: %v", arg, err)
	}

	return loan
}
