package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/shopspring/decimal"
)

// bounded runs fn with ctx limited to timeout. A deadline hit while fn runs
// is reported as an unavailable store whatever fn returned.
func bounded[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	v, err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return v, dbpkg.MapError(ctx.Err())
	}

	return v, err
}

type lookup[T any] struct {
	v     T
	found bool
}

// Queries made on SQLStore outside ExecTx are bounded by the store timeout too.

// CreateAccount implements Querier.
func (s *SQLStore) CreateAccount(ctx context.Context, owner string) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.CreateAccount(ctx, owner)
	})
}

// GetAccount implements Querier.
func (s *SQLStore) GetAccount(ctx context.Context, id int64) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.GetAccount(ctx, id)
	})
}

// GetAccountByOwner implements Querier.
func (s *SQLStore) GetAccountByOwner(ctx context.Context, owner string) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.GetAccountByOwner(ctx, owner)
	})
}

// LockAccount implements Querier. Outside ExecTx the lock is released as soon as the row is read.
func (s *SQLStore) LockAccount(ctx context.Context, id int64) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.LockAccount(ctx, id)
	})
}

// UpdateAccountFunds implements Querier.
func (s *SQLStore) UpdateAccountFunds(ctx context.Context, arg domain.UpdateAccountFundsParams) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.UpdateAccountFunds(ctx, arg)
	})
}

// SetAccountCapacity implements Querier.
func (s *SQLStore) SetAccountCapacity(ctx context.Context, id int64, capacity decimal.Decimal) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.SetAccountCapacity(ctx, id, capacity)
	})
}

// SetAccountActive implements Querier.
func (s *SQLStore) SetAccountActive(ctx context.Context, id int64, active bool) (domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Account, error) {
		return s.queries.SetAccountActive(ctx, id, active)
	})
}

// ListActiveAccounts implements Querier.
func (s *SQLStore) ListActiveAccounts(ctx context.Context, arg domain.ListAccountsParams) ([]domain.Account, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Account, error) {
		return s.queries.ListActiveAccounts(ctx, arg)
	})
}

// CreateSavingsEntry implements Querier.
func (s *SQLStore) CreateSavingsEntry(ctx context.Context, arg domain.CreateSavingsEntryParams) (domain.SavingsEntry, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.SavingsEntry, error) {
		return s.queries.CreateSavingsEntry(ctx, arg)
	})
}

// GetSavingsEntryByReference implements Querier.
func (s *SQLStore) GetSavingsEntryByReference(ctx context.Context, reference string) (domain.SavingsEntry, bool, error) {
	r, err := bounded(ctx, s.timeout, func(ctx context.Context) (lookup[domain.SavingsEntry], error) {
		e, found, err := s.queries.GetSavingsEntryByReference(ctx, reference)
		return lookup[domain.SavingsEntry]{e, found}, err
	})

	return r.v, r.found, err
}

// ListSavingsEntries implements Querier.
func (s *SQLStore) ListSavingsEntries(ctx context.Context, arg domain.ListSavingsParams) ([]domain.SavingsEntry, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.SavingsEntry, error) {
		return s.queries.ListSavingsEntries(ctx, arg)
	})
}

// SavingsStats implements Querier.
func (s *SQLStore) SavingsStats(ctx context.Context, accountID int64) (domain.SavingsStats, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.SavingsStats, error) {
		return s.queries.SavingsStats(ctx, accountID)
	})
}

// CreateLoan implements Querier.
func (s *SQLStore) CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Loan, error) {
		return s.queries.CreateLoan(ctx, arg)
	})
}

// GetLoan implements Querier.
func (s *SQLStore) GetLoan(ctx context.Context, id int64) (domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Loan, error) {
		return s.queries.GetLoan(ctx, id)
	})
}

// LockLoan implements Querier. Outside ExecTx the lock is released as soon as the row is read.
func (s *SQLStore) LockLoan(ctx context.Context, id int64) (domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Loan, error) {
		return s.queries.LockLoan(ctx, id)
	})
}

// GetLoanByReference implements Querier.
func (s *SQLStore) GetLoanByReference(ctx context.Context, reference string) (domain.Loan, bool, error) {
	r, err := bounded(ctx, s.timeout, func(ctx context.Context) (lookup[domain.Loan], error) {
		l, found, err := s.queries.GetLoanByReference(ctx, reference)
		return lookup[domain.Loan]{l, found}, err
	})

	return r.v, r.found, err
}

// UpdateLoan implements Querier.
func (s *SQLStore) UpdateLoan(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Loan, error) {
		return s.queries.UpdateLoan(ctx, loan)
	})
}

// ListLoans implements Querier.
func (s *SQLStore) ListLoans(ctx context.Context, arg domain.ListLoansParams) ([]domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Loan, error) {
		return s.queries.ListLoans(ctx, arg)
	})
}

// ListAccountLoans implements Querier.
func (s *SQLStore) ListAccountLoans(ctx context.Context, accountID int64, statuses ...domain.LoanStatus) ([]domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Loan, error) {
		return s.queries.ListAccountLoans(ctx, accountID, statuses...)
	})
}

// ListOverdueLoans implements Querier.
func (s *SQLStore) ListOverdueLoans(ctx context.Context, arg domain.OverdueLoansParams) ([]domain.Loan, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Loan, error) {
		return s.queries.ListOverdueLoans(ctx, arg)
	})
}

// LoanStats implements Querier.
func (s *SQLStore) LoanStats(ctx context.Context, accountID int64) (domain.LoanStats, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.LoanStats, error) {
		return s.queries.LoanStats(ctx, accountID)
	})
}

// CreatePayment implements Querier.
func (s *SQLStore) CreatePayment(ctx context.Context, arg domain.CreatePaymentParams) (domain.Payment, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Payment, error) {
		return s.queries.CreatePayment(ctx, arg)
	})
}

// GetPayment implements Querier.
func (s *SQLStore) GetPayment(ctx context.Context, id int64) (domain.Payment, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) (domain.Payment, error) {
		return s.queries.GetPayment(ctx, id)
	})
}

// GetPaymentByReference implements Querier.
func (s *SQLStore) GetPaymentByReference(ctx context.Context, reference string) (domain.Payment, bool, error) {
	r, err := bounded(ctx, s.timeout, func(ctx context.Context) (lookup[domain.Payment], error) {
		p, found, err := s.queries.GetPaymentByReference(ctx, reference)
		return lookup[domain.Payment]{p, found}, err
	})

	return r.v, r.found, err
}

// ListLoanPayments implements Querier.
func (s *SQLStore) ListLoanPayments(ctx context.Context, loanID int64, limit, offset int32) ([]domain.Payment, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Payment, error) {
		return s.queries.ListLoanPayments(ctx, loanID, limit, offset)
	})
}

// ListPayments implements Querier.
func (s *SQLStore) ListPayments(ctx context.Context, arg domain.ListPaymentsParams) ([]domain.Payment, error) {
	return bounded(ctx, s.timeout, func(ctx context.Context) ([]domain.Payment, error) {
		return s.queries.ListPayments(ctx, arg)
	})
}
