// Package loanrepo manages repository layer of loans.
package loanrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/pet-loans/internal/domain"
	"github.com/go-petr/pet-loans/pkg/dbpkg"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates loan repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns loan RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const loanColumns = `id, account_id, reference, principal, interest_rate, duration_months,
	monthly_payment, total_amount, remaining_balance, amount_paid, purpose, status,
	rejection_reason, approval_date, disbursement_date, due_date, next_payment_date,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanLoan(row scanner) (domain.Loan, error) {
	var (
		loan                                     domain.Loan
		approval, disbursement, due, nextPayment sql.NullTime
	)

	err := row.Scan(
		&loan.ID,
		&loan.AccountID,
		&loan.Reference,
		&loan.Principal,
		&loan.InterestRate,
		&loan.DurationMonths,
		&loan.MonthlyPayment,
		&loan.TotalAmount,
		&loan.RemainingBalance,
		&loan.AmountPaid,
		&loan.Purpose,
		&loan.Status,
		&loan.RejectionReason,
		&approval,
		&disbursement,
		&due,
		&nextPayment,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err != nil {
		return loan, err
	}

	loan.ApprovalDate = timePtr(approval)
	loan.DisbursementDate = timePtr(disbursement)
	loan.DueDate = timePtr(due)
	loan.NextPaymentDate = timePtr(nextPayment)

	return loan, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time

	return &v
}

func scanLoans(ctx context.Context, rows *sql.Rows) ([]domain.Loan, error) {
	l := zerolog.Ctx(ctx)
	defer rows.Close()

	items := []domain.Loan{}

	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, dbpkg.MapError(err)
		}

		items = append(items, loan)
	}

	if err := rows.Close(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, dbpkg.MapError(err)
	}

	return items, nil
}

// mapError converts loan query errors into domain or store errors.
func mapError(ctx context.Context, err error) error {
	l := zerolog.Ctx(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		l.Info().Err(err).Send()
		return domain.ErrLoanNotFound
	}

	l.Error().Err(err).Send()

	if dbpkg.IsUniqueViolation(err, "loans_reference_key") {
		return domain.ErrDuplicateReference
	}

	if pqErr, ok := dbpkg.PQError(err); ok && pqErr.Code == dbpkg.CodeForeignKeyViolation {
		return domain.ErrAccountNotFound
	}

	return dbpkg.MapError(err)
}

const createQuery = `
INSERT INTO loans (
	account_id, reference, principal, interest_rate, duration_months,
	monthly_payment, total_amount, remaining_balance, purpose, status
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $7, $8, 'PENDING'
)
RETURNING ` + loanColumns

// CreateLoan inserts a PENDING loan owing its full total and then returns it.
func (r *RepoPGS) CreateLoan(ctx context.Context, arg domain.CreateLoanParams) (domain.Loan, error) {
	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountID,
		arg.Reference,
		arg.Principal,
		arg.InterestRate,
		arg.DurationMonths,
		arg.MonthlyPayment,
		arg.TotalAmount,
		arg.Purpose,
	)

	loan, err := scanLoan(row)
	if err != nil {
		return loan, mapError(ctx, err)
	}

	return loan, nil
}

const getQuery = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

// GetLoan returns the loan with the given id.
func (r *RepoPGS) GetLoan(ctx context.Context, id int64) (domain.Loan, error) {
	loan, err := scanLoan(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		return loan, mapError(ctx, err)
	}

	return loan, nil
}

const lockQuery = `SELECT ` + loanColumns + ` FROM loans WHERE id = $1 FOR UPDATE`

// LockLoan returns the loan with the given id and holds its row lock
// until the surrounding transaction ends.
func (r *RepoPGS) LockLoan(ctx context.Context, id int64) (domain.Loan, error) {
	loan, err := scanLoan(r.db.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		return loan, mapError(ctx, err)
	}

	return loan, nil
}

const getByReferenceQuery = `SELECT ` + loanColumns + ` FROM loans WHERE reference = $1`

// GetLoanByReference returns the loan created under the given reference.
// The boolean result is false when no such loan exists.
func (r *RepoPGS) GetLoanByReference(ctx context.Context, reference string) (domain.Loan, bool, error) {
	loan, err := scanLoan(r.db.QueryRowContext(ctx, getByReferenceQuery, reference))
	if errors.Is(err, sql.ErrNoRows) {
		return loan, false, nil
	}

	if err != nil {
		return loan, false, mapError(ctx, err)
	}

	return loan, true, nil
}

const updateQuery = `
UPDATE loans
SET
	interest_rate = $2,
	monthly_payment = $3,
	total_amount = $4,
	remaining_balance = $5,
	amount_paid = $6,
	status = $7,
	rejection_reason = $8,
	approval_date = $9,
	disbursement_date = $10,
	due_date = $11,
	next_payment_date = $12,
	updated_at = now()
WHERE id = $1
RETURNING ` + loanColumns

// UpdateLoan writes the mutable state of the loan and then returns it.
func (r *RepoPGS) UpdateLoan(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	row := r.db.QueryRowContext(ctx, updateQuery,
		loan.ID,
		loan.InterestRate,
		loan.MonthlyPayment,
		loan.TotalAmount,
		loan.RemainingBalance,
		loan.AmountPaid,
		loan.Status,
		loan.RejectionReason,
		loan.ApprovalDate,
		loan.DisbursementDate,
		loan.DueDate,
		loan.NextPaymentDate,
	)

	updated, err := scanLoan(row)
	if err != nil {
		return updated, mapError(ctx, err)
	}

	return updated, nil
}

const listQuery = `
SELECT ` + loanColumns + ` FROM loans
WHERE ($1::bigint = 0 OR account_id = $1)
	AND ($2::varchar = '' OR status = $2)
ORDER BY created_at DESC, id DESC
LIMIT $3 OFFSET $4
`

// ListLoans returns loans matching the filter, newest first.
func (r *RepoPGS) ListLoans(ctx context.Context, arg domain.ListLoansParams) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, listQuery, arg.AccountID, string(arg.Status), arg.Limit, arg.Offset)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return scanLoans(ctx, rows)
}

const listAccountQuery = `
SELECT ` + loanColumns + ` FROM loans
WHERE account_id = $1 AND status = ANY($2)
ORDER BY id
`

// ListAccountLoans returns every account loan in one of the given statuses.
func (r *RepoPGS) ListAccountLoans(ctx context.Context, accountID int64, statuses ...domain.LoanStatus) ([]domain.Loan, error) {
	s := make([]string, len(statuses))
	for i := range statuses {
		s[i] = string(statuses[i])
	}

	rows, err := r.db.QueryContext(ctx, listAccountQuery, accountID, pq.Array(s))
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return scanLoans(ctx, rows)
}

const listOverdueQuery = `
SELECT ` + loanColumns + ` FROM loans
WHERE status = 'ACTIVE' AND next_payment_date < $1 AND id > $2
ORDER BY id
LIMIT $3
`

// ListOverdueLoans pages through ACTIVE loans whose next payment date is before arg.Before.
func (r *RepoPGS) ListOverdueLoans(ctx context.Context, arg domain.OverdueLoansParams) ([]domain.Loan, error) {
	rows, err := r.db.QueryContext(ctx, listOverdueQuery, arg.Before, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, mapError(ctx, err)
	}

	return scanLoans(ctx, rows)
}

const statsQuery = `
SELECT
	count(*) FILTER (WHERE status = 'ACTIVE'),
	count(*) FILTER (WHERE status = 'COMPLETED'),
	coalesce(sum(principal) FILTER (WHERE status IN ('ACTIVE', 'COMPLETED', 'DEFAULTED')), 0),
	coalesce(sum(amount_paid), 0)
FROM loans
WHERE account_id = $1
`

// LoanStats summarizes the account borrowing history.
func (r *RepoPGS) LoanStats(ctx context.Context, accountID int64) (domain.LoanStats, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, statsQuery, accountID)

	var s domain.LoanStats

	err := row.Scan(
		&s.ActiveLoans,
		&s.CompletedLoans,
		&s.TotalBorrowed,
		&s.TotalPaid,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return s, dbpkg.MapError(err)
	}

	return s, nil
}
