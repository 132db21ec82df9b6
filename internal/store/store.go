// Package store provides the ledger store: every repository behind one
// Querier and atomic multi-record units of work.
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/pet-loans/internal/accountrepo"
	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/internal/loanrepo"
	"github.com/go-petr/pet-loans/internal/paymentrepo"
	"github.com/go-petr/pet-loans/internal/savingsrepo"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds a unit of work when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Querier provides every ledger read and write.
//
//go:generate mockgen -source store.go -destination store_mock.go -package store
type Querier interface {
	CreateAccount(ctx context.Context, owner string) (domain.Account, error)
	GetAccount(ctx context.Context, id int64) (domain.Account, error)
	GetAccountByOwner(ctx context.Context, owner string) (domain.Account, error)
	LockAccount(ctx context.Context, id int64) (domain.Account, error)
	UpdateAccountFunds(ctx context.Context, arg domain.UpdateAccountFundsParams) (domain.Account, error)
	SetAccountCapacity(ctx context.Context, id int64, capacity decimal.Decimal) (domain.Account, error)
	SetAccountActive(ctx context.Context, id int64, active bool) (domain.Account, error)
	ListActiveAccounts(ctx context.Context, arg domain.ListAccountsParams) ([]domain.Account, error)

	CreateSavingsEntry(ctx context.Context, arg domain.CreateSavingsEntryParams) (domain.SavingsEntry, error)
	GetSavingsEntryByReference(ctx context.Context, reference string) (domain.SavingsEntry, bool, error)
	ListSavingsEntries(ctx context.Context, arg domain.ListSavingsParams) ([]domain.SavingsEntry, error)
	SavingsStats(ctx context.Context, accountID int64) (domain.SavingsStats, error)

	CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error)
	GetLoan(ctx context.Context, id int64) (domain.Loan, error)
	LockLoan(ctx context.Context, id int64) (domain.Loan, error)
	GetLoanByReference(ctx context.Context, reference string) (domain.Loan, bool, error)
	UpdateLoan(ctx context.Context, loan domain.Loan) (domain.Loan, error)
	ListLoans(ctx context.Context, arg domain.ListLoansParams) ([]domain.Loan, error)
	ListAccountLoans(ctx context.Context, accountID int64, statuses ...domain.LoanStatus) ([]domain.Loan, error)
	ListOverdueLoans(ctx context.Context, arg domain.OverdueLoansParams) ([]domain.Loan, error)
	LoanStats(ctx context.Context, accountID int64) (domain.LoanStats, error)

	CreatePayment(ctx context.Context, arg domain.CreatePaymentParams) (domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (domain.Payment, error)
	GetPaymentByReference(ctx context.Context, reference string) (domain.Payment, bool, error)
	ListLoanPayments(ctx context.Context, loanID int64, limit, offset int32) ([]domain.Payment, error)
	ListPayments(ctx context.Context, arg domain.ListPaymentsParams) ([]domain.Payment, error)
}

// Store provides ledger queries and transactions.
type Store interface {
	Querier
	// ExecTx runs fn inside one transaction. All writes made through the
	// Querier passed to fn become visible together or not at all.
	ExecTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error
}

type (
	accountRepo = accountrepo.RepoPGS
	savingsRepo = savingsrepo.RepoPGS
	loanRepo    = loanrepo.RepoPGS
	paymentRepo = paymentrepo.RepoPGS
)

type queries struct {
	*accountRepo
	*savingsRepo
	*loanRepo
	*paymentRepo
}

func newQueries(db dbpkg.SQLInterface) *queries {
	return &queries{
		accountrepo.NewRepoPGS(db),
		savingsrepo.NewRepoPGS(db),
		loanrepo.NewRepoPGS(db),
		paymentrepo.NewRepoPGS(db),
	}
}

// SQLStore is the Postgres backed Store.
type SQLStore struct {
	*queries
	conn    *sql.DB
	timeout time.Duration
}

// New returns SQLStore. A non-positive timeout falls back to DefaultTimeout.
func New(conn *sql.DB, timeout time.Duration) *SQLStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &SQLStore{
		queries: newQueries(conn),
		conn:    conn,
		timeout: timeout,
	}
}

// ExecTx executes fn within a database transaction bounded by the store timeout.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(ctx context.Context, q Querier) error) error {
	l := zerolog.Ctx(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return dbpkg.MapError(err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	if err := fn(ctx, newQueries(tx)); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return dbpkg.MapError(ctx.Err())
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return dbpkg.MapError(err)
	}

	return nil
}
